// Package render draws a game.World as text, optionally overlaid with a
// solver's tree walls, cost field and planned path.
package render

import (
	"fmt"
	"strings"

	"github.com/arduano/snake-solver/game"
)

// Glyph identifies what a rendered character stands for, so callers can
// colour it.
type Glyph uint8

const (
	GlyphEmpty Glyph = iota
	GlyphFood
	GlyphHead
	GlyphBody
	GlyphPath
	GlyphWall
)

var glyphText = [...]string{
	GlyphEmpty: ".",
	GlyphFood:  "F",
	GlyphHead:  "H",
	GlyphBody:  "o",
	GlyphPath:  "*",
	GlyphWall:  "#",
}

type Options struct {
	// Walls is a per-board-cell edge graph; true edges are drawn between cells.
	Walls *game.EdgeGraph[bool]
	// Path is drawn from the head when set.
	Path *game.Path
	// Style, when set, wraps every glyph, for example with terminal colours.
	Style func(g Glyph, text string) string
}

func (o Options) style(g Glyph, text string) string {
	if o.Style == nil {
		return text
	}
	return o.Style(g, text)
}

// Text is the character drawn for g.
func (g Glyph) Text() string {
	if int(g) < len(glyphText) {
		return glyphText[g]
	}
	return "?"
}

// Glyphs classifies every cell of w. Cells along path, walked from the
// head, are marked GlyphPath unless something else is drawn there.
func Glyphs(w *game.World, path *game.Path) *game.Grid[Glyph] {
	out := game.NewGrid(w.Size(), GlyphEmpty)
	if path != nil {
		head := w.HeadCoord()
		for off := range path.Offsets() {
			if !off.IsZero() {
				out.Set(head.Add(off), GlyphPath)
			}
		}
	}
	for c := range out.Coords() {
		cell, _ := w.Cell(c)
		switch {
		case c == w.HeadCoord() && cell.IsSnake():
			out.Set(c, GlyphHead)
		case cell.IsSnake():
			out.Set(c, GlyphBody)
		case cell.IsFood():
			out.Set(c, GlyphFood)
		}
	}
	return out
}

// Board renders w one row per line. Each cell is followed by a column for
// a vertical wall and each row by a line for horizontal walls.
func Board(w *game.World, opts Options) string {
	size := w.Size()
	glyphs := Glyphs(w, opts.Path)

	var sb strings.Builder
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := game.Coord{X: x, Y: y}
			g := glyphs.At(c)
			sb.WriteString(opts.style(g, g.Text()))
			if x < size-1 {
				sb.WriteString(wallText(opts, c, game.Right, "|"))
			}
		}
		sb.WriteByte('\n')
		if y == size-1 || opts.Walls == nil {
			continue
		}
		for x := 0; x < size; x++ {
			sb.WriteString(wallText(opts, game.Coord{X: x, Y: y}, game.Down, "-"))
			if x < size-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func wallText(opts Options, c game.Coord, d game.Direction, text string) string {
	if opts.Walls == nil {
		return " "
	}
	if wall, _ := opts.Walls.Edge(c, d); wall {
		return opts.style(GlyphWall, text)
	}
	return " "
}

// Costs renders a cost field as right-aligned numbers, with unreached cells
// shown as dots.
func Costs(g *game.Grid[uint32]) string {
	if g == nil {
		return ""
	}
	width := len(fmt.Sprint(g.Len() + 1))
	var sb strings.Builder
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			v := g.At(game.Coord{X: x, Y: y})
			if v == 0 {
				fmt.Fprintf(&sb, "%*s", width, ".")
				continue
			}
			fmt.Fprintf(&sb, "%*d", width, v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary is a one-line status for w.
func Summary(w *game.World) string {
	return fmt.Sprintf("turn=%d length=%d food=%d size=%d", w.Turn, w.SnakeLen(), w.FoodEaten, w.Size())
}
