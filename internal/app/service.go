package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jaminalder/codex-klondike/internal/domain"
)

// Errors exposed by the service layer.
var (
	ErrNotFound = errors.New("game not found")
)

// Status is the lifecycle state of a session.
type Status uint8

const (
	InProgress Status = iota
	Won
)

// Session is the caller-facing copy of one game's state. Board is a deep
// snapshot; mutating it never touches the live game.
type Session struct {
	ID      string
	Board   domain.Snapshot
	Moves   int
	Status  Status
	Created time.Time
	Updated time.Time
}

// session is the live, service-owned state.
type session struct {
	id      string
	game    *domain.Game
	moves   int
	status  Status
	created time.Time
	updated time.Time
}

func (s *session) view() Session {
	return Session{
		ID:      s.id,
		Board:   s.game.Snapshot(),
		Moves:   s.moves,
		Status:  s.status,
		Created: s.created,
		Updated: s.updated,
	}
}

type subscriber struct {
	ch        chan []byte
	closeOnce sync.Once
}

func (s *subscriber) close() { s.closeOnce.Do(func() { close(s.ch) }) }

// Service manages solitaire sessions and subscribers.
type Service struct {
	mu      sync.Mutex
	games   map[string]*session
	subs    map[string]map[*subscriber]struct{}
	render  func(Session) []byte
	log     *zap.Logger
	maxRank int
	seed    func() int64
}

// NewService creates a service with a default renderer (encodes nothing useful).
func NewService(log *zap.Logger) *Service {
	return NewServiceWithRenderer(log, func(Session) []byte { return nil })
}

// NewServiceWithRenderer allows injecting a renderer for broadcast payloads.
func NewServiceWithRenderer(log *zap.Logger, renderer func(Session) []byte) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if renderer == nil {
		renderer = func(Session) []byte { return nil }
	}
	return &Service{
		games:   make(map[string]*session),
		subs:    make(map[string]map[*subscriber]struct{}),
		render:  renderer,
		log:     log,
		maxRank: domain.DefaultMaxRank,
		seed:    func() int64 { return time.Now().UnixNano() },
	}
}

// SetRenderer replaces the broadcast renderer function.
func (s *Service) SetRenderer(renderer func(Session) []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if renderer == nil {
		s.render = func(Session) []byte { return nil }
		return
	}
	s.render = renderer
}

// SetDeal configures the maximum rank and seed source used for new deals.
func (s *Service) SetDeal(maxRank int, seed func() int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if maxRank >= 1 {
		s.maxRank = maxRank
	}
	if seed != nil {
		s.seed = seed
	}
}

// CreateGame deals and registers a new game.
func (s *Service) CreateGame() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	now := time.Now()
	ss := &session{
		id:      id,
		game:    domain.NewGame(s.maxRank, s.seed()),
		created: now,
		updated: now,
	}
	s.games[id] = ss
	s.log.Info("game created", zap.String("id", id), zap.Int("maxRank", s.maxRank))
	cp := ss.view()
	return &cp, nil
}

// Get returns a copy of the session state if present.
func (s *Service) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ss, ok := s.games[id]
	if !ok {
		return nil, false
	}
	cp := ss.view()
	return &cp, true
}

// Reset replaces the session's game with a fresh deal, keeping the ID.
func (s *Service) Reset(id string) (*Session, error) {
	return s.apply(id, func(ss *session) error {
		ss.game = domain.NewGame(s.maxRank, s.seed())
		ss.moves = 0
		ss.status = InProgress
		s.log.Info("game reset", zap.String("id", ss.id))
		return nil
	})
}

// Draw draws from the stock (or recycles the waste) and broadcasts.
func (s *Service) Draw(id string) (*Session, error) {
	return s.apply(id, func(ss *session) error {
		ss.game.Draw()
		return nil
	})
}

// Undo reverses the most recent action, if any, and broadcasts.
func (s *Service) Undo(id string) (*Session, error) {
	return s.apply(id, func(ss *session) error {
		ss.game.Undo()
		return nil
	})
}

// Transfer attempts a pile-to-pile move. The returned Session reflects the
// state after the attempt; accepted mirrors the engine's verdict.
func (s *Service) Transfer(id string, src, dst domain.PileRef, count int) (*Session, bool, error) {
	var accepted bool
	ses, err := s.apply(id, func(ss *session) error {
		ok, err := ss.game.Transfer(src, dst, count)
		accepted = ok
		return err
	})
	return ses, accepted, err
}

// ToFoundation attempts to move the top card of src onto its foundation.
func (s *Service) ToFoundation(id string, src domain.PileRef) (*Session, bool, error) {
	var accepted bool
	ses, err := s.apply(id, func(ss *session) error {
		ok, err := ss.game.MoveToFoundation(src)
		accepted = ok
		return err
	})
	return ses, accepted, err
}

// apply runs one action against a session under the lock, bumps the move
// counter when the history length changed, runs win finalization, and fans
// the rendered state out to subscribers.
func (s *Service) apply(id string, action func(*session) error) (*Session, error) {
	var payload []byte
	var cp Session
	var toDrop []*subscriber

	s.mu.Lock()
	ss, ok := s.games[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	before := ss.game.HistoryLen()
	if err := action(ss); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if ss.game.HistoryLen() != before {
		ss.moves++
	}
	s.finalizeLocked(ss)
	ss.updated = time.Now()

	// Snapshot state and subscribers
	cp = ss.view()
	subs := s.copySubsLocked(id)
	payload = s.render(cp)
	s.mu.Unlock()

	// Fan-out; drop slow subscribers by closing and marking for deletion
	for sub := range subs {
		select {
		case sub.ch <- payload:
		default:
			// drop slow subscriber
			sub.close()
			toDrop = append(toDrop, sub)
		}
	}
	if len(toDrop) > 0 {
		s.mu.Lock()
		for _, sub := range toDrop {
			if set, ok := s.subs[id]; ok {
				delete(set, sub)
			}
		}
		s.mu.Unlock()
	}
	return &cp, nil
}

// finalizeLocked runs the win sweep once the board is complete: every
// non-empty tableau column is sent to the foundations in reverse column
// order until the tableau is empty. Sweep moves do not bump the move
// counter. The sweep stops, leaving the session in progress, if a pass
// makes no progress.
func (s *Service) finalizeLocked(ss *session) {
	if ss.status != InProgress || !ss.game.IsComplete() {
		return
	}
	for {
		moved := false
		for col := ss.game.NumColumns() - 1; col >= 0; col-- {
			if ok, _ := ss.game.MoveToFoundation(domain.Tableau(col)); ok {
				moved = true
			}
		}
		if !moved {
			break
		}
	}
	for col := 0; col < ss.game.NumColumns(); col++ {
		if n, _ := ss.game.PileLen(domain.Tableau(col)); n > 0 {
			return
		}
	}
	ss.status = Won
	s.log.Info("game won", zap.String("id", ss.id), zap.Int("moves", ss.moves))
}

// Subscribe registers a subscriber for a game. Returns a channel and an unsubscribe func.
func (s *Service) Subscribe(ctx context.Context, id string) (<-chan []byte, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		// create lazily to allow subscriptions before CreateGame in some flows
		now := time.Now()
		s.games[id] = &session{
			id:      id,
			game:    domain.NewGame(s.maxRank, s.seed()),
			created: now,
			updated: now,
		}
	}
	set := s.subs[id]
	if set == nil {
		set = make(map[*subscriber]struct{})
		s.subs[id] = set
	}
	sub := &subscriber{ch: make(chan []byte, 1)}
	set[sub] = struct{}{}

	unsubOnce := &sync.Once{}
	unsub := func() {
		unsubOnce.Do(func() {
			s.mu.Lock()
			if set, ok := s.subs[id]; ok {
				delete(set, sub)
			}
			s.mu.Unlock()
			sub.close()
		})
	}
	go func() {
		<-ctx.Done()
		unsub()
	}()
	return sub.ch, unsub
}

func (s *Service) copySubsLocked(id string) map[*subscriber]struct{} {
	out := make(map[*subscriber]struct{})
	if set, ok := s.subs[id]; ok {
		for k := range set {
			out[k] = struct{}{}
		}
	}
	return out
}
