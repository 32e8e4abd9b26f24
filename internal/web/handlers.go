package web

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jaminalder/codex-klondike/internal/app"
	"github.com/jaminalder/codex-klondike/internal/domain"
)

type handlers struct {
	svc *app.Service
	tpl *templates
}

var errBadToken = errors.New("bad pile token")

// parseRef resolves a form token to a pile handle: "s" stock, "w" waste,
// "f<suit>" foundation, "t<col>" tableau column. Range checking is left to
// the engine.
func parseRef(tok string) (domain.PileRef, error) {
	switch {
	case tok == "s":
		return domain.Stock(), nil
	case tok == "w":
		return domain.Waste(), nil
	case strings.HasPrefix(tok, "f"):
		i, err := strconv.Atoi(tok[1:])
		if err != nil {
			return domain.PileRef{}, errBadToken
		}
		return domain.PileRef{Kind: domain.FoundationPile, Index: i}, nil
	case strings.HasPrefix(tok, "t"):
		i, err := strconv.Atoi(tok[1:])
		if err != nil {
			return domain.PileRef{}, errBadToken
		}
		return domain.Tableau(i), nil
	}
	return domain.PileRef{}, errBadToken
}

func (h *handlers) renderBoard(ses app.Session, errMsg string) []byte {
	return renderTemplate(h.tpl.board, "", makeBoardView(ses, errMsg))
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(renderTemplate(h.tpl.index, "", nil))
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	ses, err := h.svc.CreateGame()
	if err != nil {
		http.Error(w, "failed to create", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/game/"+ses.ID, http.StatusSeeOther)
}

func (h *handlers) view(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ses, ok := h.svc.Get(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	data := struct {
		ID    string
		Board boardView
	}{ID: ses.ID, Board: makeBoardView(*ses, "")}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(renderTemplate(h.tpl.game, "", data))
}

// writeFragment renders the post-action board fragment, mapping the outcome
// onto the error banner the way the play loop used to report it.
func (h *handlers) writeFragment(w http.ResponseWriter, r *http.Request, ses *app.Session, accepted bool, err error) {
	id := chi.URLParam(r, "id")
	var errMsg string
	switch {
	case errors.Is(err, app.ErrNotFound):
		http.NotFound(w, r)
		return
	case errors.Is(err, domain.ErrBadPile), errors.Is(err, domain.ErrBadCount), errors.Is(err, errBadToken):
		errMsg = "Improper input"
	case err != nil:
		errMsg = "Improper input"
	case !accepted:
		errMsg = "Illegal move"
	}
	if ses == nil {
		if got, ok := h.svc.Get(id); ok {
			ses = got
		} else {
			http.NotFound(w, r)
			return
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(h.renderBoard(*ses, errMsg))
}

func (h *handlers) draw(w http.ResponseWriter, r *http.Request) {
	ses, err := h.svc.Draw(chi.URLParam(r, "id"))
	h.writeFragment(w, r, ses, true, err)
}

func (h *handlers) undo(w http.ResponseWriter, r *http.Request) {
	ses, err := h.svc.Undo(chi.URLParam(r, "id"))
	h.writeFragment(w, r, ses, true, err)
}

func (h *handlers) move(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	_ = r.ParseForm()
	src, srcErr := parseRef(r.Form.Get("src"))
	dst, dstErr := parseRef(r.Form.Get("dst"))
	count, cntErr := strconv.Atoi(r.Form.Get("count"))
	if srcErr != nil || dstErr != nil || cntErr != nil {
		h.writeFragment(w, r, nil, false, errBadToken)
		return
	}
	ses, accepted, err := h.svc.Transfer(id, src, dst, count)
	h.writeFragment(w, r, ses, accepted, err)
}

func (h *handlers) foundation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	_ = r.ParseForm()
	src, srcErr := parseRef(r.Form.Get("src"))
	if srcErr != nil {
		h.writeFragment(w, r, nil, false, errBadToken)
		return
	}
	ses, accepted, err := h.svc.ToFoundation(id, src)
	h.writeFragment(w, r, ses, accepted, err)
}

func (h *handlers) reset(w http.ResponseWriter, r *http.Request) {
	ses, err := h.svc.Reset(chi.URLParam(r, "id"))
	h.writeFragment(w, r, ses, true, err)
}

var heartbeatInterval = 15 * time.Second

func (h *handlers) events(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")
	// In tests or non-EventSource requests, just acknowledge headers and return
	if r.Header.Get("Accept") != "text/event-stream" {
		w.WriteHeader(http.StatusOK)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		w.WriteHeader(http.StatusOK)
		return
	}
	ctx := r.Context()
	ch, _ := h.svc.Subscribe(ctx, id)
	// heartbeat ticker
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()
	// Initial flush of headers
	flusher.Flush()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = io.WriteString(w, ": ping\n\n")
			flusher.Flush()
		case b, ok := <-ch:
			if !ok {
				return
			}
			// Emit board event
			_, _ = fmt.Fprintf(w, "event: board\n")
			_, _ = fmt.Fprintf(w, "data: %s\n\n", b)
			flusher.Flush()
		}
	}
}
