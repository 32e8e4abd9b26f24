package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jaminalder/codex-klondike/internal/domain"
)

// actionKind classifies parsed player commands.
type actionKind uint8

const (
	actDraw actionKind = iota
	actUndo
	actHelp
	actReset
	actQuit
	actTransfer
	actFoundation
)

// command is one structured move request.
type command struct {
	kind  actionKind
	src   domain.PileRef
	dst   domain.PileRef
	count int
}

var errImproperInput = errors.New("improper input")

// parseCommand parses one line of the move language:
//
//	d              draw from the stock
//	u, z           undo the last move
//	i              show the instructions
//	reset, quit    end the current game
//	<src> <dst>    move one card; a pile token is a column number,
//	               'w' for the waste, 'f' for the foundation as a
//	               destination, or 'f<n>' as a source
//	m<k> <src> <dst>  move the top k cards between columns
//
// Column and foundation numbers are 1-based, as shown on the board.
func parseCommand(line string, numCols int) (command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return command{}, errImproperInput
	}

	if len(fields) == 1 {
		switch fields[0] {
		case "d":
			return command{kind: actDraw}, nil
		case "u", "z":
			return command{kind: actUndo}, nil
		case "i":
			return command{kind: actHelp}, nil
		case "reset":
			return command{kind: actReset}, nil
		case "quit", "q":
			return command{kind: actQuit}, nil
		}
		return command{}, errImproperInput
	}

	if strings.HasPrefix(fields[0], "m") {
		if len(fields) != 3 {
			return command{}, errImproperInput
		}
		count, err := strconv.Atoi(fields[0][1:])
		if err != nil || count < 1 {
			return command{}, errImproperInput
		}
		src, err := parseColumn(fields[1], numCols)
		if err != nil {
			return command{}, err
		}
		dst, err := parseColumn(fields[2], numCols)
		if err != nil {
			return command{}, err
		}
		return command{kind: actTransfer, src: src, dst: dst, count: count}, nil
	}

	if len(fields) != 2 {
		return command{}, errImproperInput
	}
	srcTok, dstTok := fields[0], fields[1]

	if dstTok == "f" {
		// column or waste to the matching foundation
		if srcTok == "w" {
			return command{kind: actFoundation, src: domain.Waste()}, nil
		}
		src, err := parseColumn(srcTok, numCols)
		if err != nil {
			return command{}, err
		}
		return command{kind: actFoundation, src: src}, nil
	}

	dst, err := parseColumn(dstTok, numCols)
	if err != nil {
		return command{}, err
	}
	switch {
	case srcTok == "w":
		return command{kind: actTransfer, src: domain.Waste(), dst: dst, count: 1}, nil
	case strings.HasPrefix(srcTok, "f"):
		n, err := strconv.Atoi(srcTok[1:])
		if err != nil || n < 1 || n > domain.NumSuits {
			return command{}, errImproperInput
		}
		src := domain.Foundation(domain.Suit(n - 1))
		return command{kind: actTransfer, src: src, dst: dst, count: 1}, nil
	default:
		src, err := parseColumn(srcTok, numCols)
		if err != nil {
			return command{}, err
		}
		return command{kind: actTransfer, src: src, dst: dst, count: 1}, nil
	}
}

// parseColumn maps a 1-based column number to its tableau handle.
func parseColumn(tok string, numCols int) (domain.PileRef, error) {
	n, err := strconv.Atoi(tok)
	if err != nil || n < 1 || n > numCols {
		return domain.PileRef{}, errImproperInput
	}
	return domain.Tableau(n - 1), nil
}
