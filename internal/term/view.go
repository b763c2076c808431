package term

import (
	"fmt"
	"io"
	"strings"

	"chain-reaction/internal/render"
	"chain-reaction/pkg/chain"

	"github.com/charmbracelet/lipgloss"
)

// styles holds the lipgloss styles for one output stream.
type styles struct {
	players   []lipgloss.Style
	empty     lipgloss.Style
	exploding lipgloss.Style
	header    lipgloss.Style
	err       lipgloss.Style
}

func newStyles(out io.Writer, players int) styles {
	r := lipgloss.NewRenderer(out)
	cell := r.NewStyle().Width(3).Align(lipgloss.Center)
	s := styles{
		empty:     cell.Foreground(lipgloss.Color(render.Hex(render.EmptyColor))).Faint(true),
		exploding: cell.Bold(true).Foreground(lipgloss.Color("#141414")).Background(lipgloss.Color(render.Hex(render.ExplosionColor))),
		header:    cell.Foreground(lipgloss.Color("#6c6c78")),
		err:       r.NewStyle().Foreground(lipgloss.Color("#E74C3C")),
	}
	for _, c := range render.Palette(players) {
		s.players = append(s.players, cell.Bold(true).Foreground(lipgloss.Color(render.Hex(c))))
	}
	return s
}

func (s styles) player(p chain.Player) lipgloss.Style {
	if p >= 0 && int(p) < len(s.players) {
		return s.players[p]
	}
	return s.empty
}

// board draws the snapshot with row and column numbers around it.
func (s styles) board(cells [][]chain.CellState) string {
	var sb strings.Builder
	sb.WriteString(s.header.Render(""))
	if len(cells) > 0 {
		for c := range cells[0] {
			sb.WriteString(s.header.Render(fmt.Sprint(c)))
		}
	}
	sb.WriteByte('\n')
	for r, row := range cells {
		sb.WriteString(s.header.Render(fmt.Sprint(r)))
		for _, cell := range row {
			switch cell.Kind {
			case chain.CellExploding:
				sb.WriteString(s.exploding.Render(fmt.Sprintf("+%d", cell.Atoms)))
			case chain.CellOwned:
				sb.WriteString(s.player(cell.Owner).Render(fmt.Sprint(cell.Atoms)))
			default:
				sb.WriteString(s.empty.Render("."))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
