package viz

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/anim"
)

// Scene is a surface whose slots carry display labels.
type Scene interface {
	anim.Surface
	Label(id anim.SlotID) string
}

type cell struct {
	r     rune
	style string
}

// grid is a character canvas with a style key per cell.
type grid struct {
	w, h  int
	cells [][]cell
}

func newGrid(w, h int) *grid {
	g := &grid{w: w, h: h, cells: make([][]cell, h)}
	for y := range g.cells {
		g.cells[y] = make([]cell, w)
		for x := range g.cells[y] {
			g.cells[y][x] = cell{r: ' '}
		}
	}
	return g
}

func (g *grid) text(x, y int, s string, style string) {
	if y < 0 || y >= g.h {
		return
	}
	for _, r := range s {
		if x >= 0 && x < g.w {
			g.cells[y][x] = cell{r: r, style: style}
		}
		x++
	}
}

// Board draws a scene onto a character grid. One surface unit is one
// terminal cell.
type Board struct {
	CellWidth int
	Theme     Theme
	// Plain disables colors.
	Plain bool
}

// Render draws every slot of sc. Rows above the highest slot are trimmed.
func (b Board) Render(sc Scene) string {
	ids := sc.Slots()
	if len(ids) == 0 {
		return ""
	}

	minY, maxX, maxY := math.MaxInt, 0, 0
	for _, id := range ids {
		p := sc.Position(id)
		x, y := round(p.X), round(p.Y)
		minY = min(minY, y)
		maxX = max(maxX, x+b.CellWidth+2)
		maxY = max(maxY, y)
	}
	if minY > 0 {
		minY = 0
	}

	g := newGrid(maxX+1, maxY-minY+1)
	styles := map[string]lipgloss.Style{}

	for _, id := range ids {
		p := sc.Position(id)
		x, y := round(p.X), round(p.Y)-minY
		label := sc.Label(id)
		switch sc.Kind(id) {
		case anim.SlotElement:
			key, style := b.elementStyle(sc.Highlight(id))
			styles[key] = style
			g.text(x, y, center(label, b.CellWidth), key)
		case anim.SlotIndex:
			styles["index"] = lipgloss.NewStyle().Foreground(b.Theme.Index)
			g.text(x, y, center(label, b.CellWidth), "index")
		case anim.SlotPointer:
			styles["pointer"] = lipgloss.NewStyle().Foreground(b.Theme.Pointer).Bold(true)
			g.text(x, y, center("↑"+label, b.CellWidth), "pointer")
		}
	}

	return b.flush(g, styles)
}

// elementStyle quantizes the highlight so consecutive frames share styles.
func (b Board) elementStyle(level float64) (string, lipgloss.Style) {
	step := int(math.Round(level * 4))
	bg := Blend(b.Theme.Element, b.Theme.Selected, float64(step)/4)
	key := "element" + string(rune('0'+step))
	return key, lipgloss.NewStyle().Background(bg).Foreground(b.Theme.Text).Bold(step == 4)
}

func (b Board) flush(g *grid, styles map[string]lipgloss.Style) string {
	var out strings.Builder
	for y, row := range g.cells {
		end := len(row)
		for end > 0 && row[end-1].r == ' ' && row[end-1].style == "" {
			end--
		}
		x := 0
		for x < end {
			start := x
			key := row[x].style
			for x < end && row[x].style == key {
				x++
			}
			var seg strings.Builder
			for _, c := range row[start:x] {
				seg.WriteRune(c.r)
			}
			if key == "" || b.Plain {
				out.WriteString(seg.String())
			} else {
				out.WriteString(styles[key].Render(seg.String()))
			}
		}
		if y < len(g.cells)-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// center pads s to width w, truncating if it does not fit.
func center(s string, w int) string {
	r := []rune(s)
	if len(r) >= w {
		return string(r[:w])
	}
	left := (w - len(r)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-len(r)-left)
}

func round(f float64) int {
	return int(math.Round(f))
}

// RenderSource renders a listing with line numbers; active is 1-based and
// out-of-range values mark nothing.
func RenderSource(lines []string, active int, theme Theme, plain bool) string {
	normal := lipgloss.NewStyle().Foreground(theme.Source)
	hl := lipgloss.NewStyle().Foreground(theme.Active).Bold(true)
	num := lipgloss.NewStyle().Foreground(theme.Muted)

	var out strings.Builder
	for i, line := range lines {
		n := i + 1
		marker := "  "
		if n == active {
			marker = "▸ "
		}
		prefix := marker + padLeft(strconv.Itoa(n), 2) + " "
		switch {
		case plain:
			out.WriteString(prefix + line)
		case n == active:
			out.WriteString(hl.Render(prefix + line))
		default:
			out.WriteString(num.Render(prefix) + normal.Render(line))
		}
		if i < len(lines)-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func padLeft(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return strings.Repeat(" ", w-len(s)) + s
}
