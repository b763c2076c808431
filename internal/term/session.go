// Package term plays a chain reaction game on a terminal: it prints the board,
// reads "row col" lines for the current player and resolves cascades.
package term

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"chain-reaction/internal/core"
	"chain-reaction/pkg/chain"

	"github.com/google/uuid"
)

// Options tunes a Session.
type Options struct {
	// Plain prints the board in the |pn| text format without colours.
	Plain bool
	// WaveDelay pauses between explosion waves and prints each one. Zero
	// resolves cascades at once.
	WaveDelay time.Duration
	Logger    *slog.Logger
}

// Session is one game played over a reader and a writer.
type Session struct {
	board  *chain.Board
	in     io.Reader
	out    io.Writer
	pacer  *core.WavePacer
	styles styles
	opts   Options
	log    *slog.Logger
}

// NewSession prepares a game on board reading moves from in and printing to out.
func NewSession(board *chain.Board, in io.Reader, out io.Writer, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		board:  board,
		in:     in,
		out:    out,
		pacer:  core.NewWavePacer(opts.WaveDelay),
		styles: newStyles(out, board.Players()),
		opts:   opts,
		log:    logger.With("game", uuid.NewString()[:8]),
	}
}

// Run plays until a player wins, input runs out or ctx ends. It returns the
// winner.
func (s *Session) Run(ctx context.Context) (chain.Player, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := readLines(ctx, s.in)

	s.log.Info("game started", "rows", s.board.Rows(), "cols", s.board.Cols(),
		"players", s.board.Players(), "elimination", s.board.Elimination())
	animate := s.opts.WaveDelay > 0
	for {
		switch ph := s.board.Phase().(type) {
		case chain.GameOver:
			s.printBoard()
			fmt.Fprintln(s.out, s.styles.player(ph.Winner).UnsetWidth().Render(fmt.Sprintf("Player %d won", ph.Winner)))
			s.log.Info("game over", "winner", ph.Winner, "moves", s.board.Moves())
			return ph.Winner, nil
		case chain.Waiting:
			s.printBoard()
			if err := s.turn(ctx, lines); err != nil {
				return chain.NoPlayer, err
			}
		case chain.Exploding, chain.CheckingWin:
			if !animate {
				waves, err := core.Settle(s.board, 0)
				if err != nil {
					return chain.NoPlayer, err
				}
				s.log.Debug("cascade settled", "waves", waves)
				continue
			}
			s.printBoard()
			if err := s.pacer.Wait(ctx); err != nil {
				return chain.NoPlayer, err
			}
			if !s.board.Step() {
				s.log.Debug("cascade settled", "waves", s.board.Waves())
			}
		default:
			panic(fmt.Sprintf("term: unknown phase %T", ph))
		}
	}
}

func (s *Session) turn(ctx context.Context, lines *lineReader) error {
	player := s.board.CurrentPlayer()
	fmt.Fprintln(s.out, s.styles.player(player).UnsetWidth().Render(fmt.Sprintf("Player %d input:", player)))

	line, err := lines.next(ctx)
	if err != nil {
		return err
	}
	row, col, err := ParseMove(line)
	if err != nil {
		fmt.Fprintln(s.out, s.styles.err.Render(fmt.Sprintf("parsing failed %q: %v", line, err)))
		return nil
	}
	if err := s.board.Move(player, row, col); err != nil {
		fmt.Fprintln(s.out, s.styles.err.Render(err.Error()))
		s.log.Debug("move rejected", "player", player, "row", row, "col", col, "err", err)
		return nil
	}
	s.log.Debug("move", "player", player, "row", row, "col", col)
	return nil
}

func (s *Session) printBoard() {
	if s.opts.Plain {
		fmt.Fprint(s.out, s.board.String())
	} else {
		fmt.Fprint(s.out, s.styles.board(s.board.Snapshot()))
	}
	fmt.Fprintln(s.out, core.Status(s.board))
}
