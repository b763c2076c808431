//go:build ebiten

package app

import (
	"image/color"
	"log/slog"
	"time"

	"chain-reaction/internal/core"
	"chain-reaction/internal/render"
	"chain-reaction/internal/ui"
	"chain-reaction/pkg/chain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a chain reaction board to the ebiten.Game interface.
type Game struct {
	board   *chain.Board
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pacer   *core.WavePacer
	palette []color.RGBA
	log     *slog.Logger

	scale int
}

// New constructs a Game for the provided board.
func New(board *chain.Board, scale int, waveDelay time.Duration, logger *slog.Logger) *Game {
	palette := render.Palette(board.Players())
	return &Game{
		board:   board,
		painter: render.NewGridPainter(board.Rows(), board.Cols()),
		overlay: ui.NewOverlay(scale),
		hud:     ui.NewHUD(board.Cols()*scale, palette),
		pacer:   core.NewWavePacer(waveDelay),
		palette: palette,
		log:     logger,
		scale:   scale,
	}
}

// Reset starts a new game on the same board.
func (g *Game) Reset() {
	g.board.Reset()
	g.log.Info("new game", "rows", g.board.Rows(), "cols", g.board.Cols(), "players", g.board.Players())
}

// Update handles per-frame logic: input while waiting, one wave per pacer tick
// while a cascade runs.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}

	switch {
	case core.Busy(g.board):
		if g.pacer.Ready(time.Now()) {
			g.step()
		}
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		x, y := ebiten.CursorPosition()
		g.click(x, y)
	}

	g.hud.Update(g.board)
	return nil
}

func (g *Game) click(x, y int) {
	pos, ok := cellAt(x, y, g.scale, g.board.Rows(), g.board.Cols())
	if !ok {
		return
	}
	row, col := pos.Row, pos.Col
	player := g.board.CurrentPlayer()
	if err := g.board.Move(player, row, col); err != nil {
		g.log.Debug("move rejected", "player", player, "row", row, "col", col, "err", err)
		return
	}
	if core.Busy(g.board) {
		g.pacer.Arm(time.Now())
	}
}

func (g *Game) step() {
	if g.board.Step() {
		return
	}
	if winner, ok := g.board.Winner(); ok {
		g.log.Info("game over", "winner", winner, "moves", g.board.Moves())
		return
	}
	g.log.Debug("cascade settled", "waves", g.board.Waves(), "next", g.board.CurrentPlayer())
}

// Draw renders the board, the atoms on it and the status bar.
func (g *Game) Draw(screen *ebiten.Image) {
	cells := g.board.Snapshot()
	g.painter.Blit(screen, cells, g.palette, g.scale, 0, 0)
	g.overlay.Draw(screen, cells)
	g.hud.Draw(screen, g.board.Rows()*g.scale)
}

// Layout returns the logical screen size: the board with the status bar below.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.board.Cols() * g.scale, g.board.Rows()*g.scale + ui.HUDHeight
}
