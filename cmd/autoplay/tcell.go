package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/arduano/snake-solver/autoplay"
	"github.com/arduano/snake-solver/game"
	"github.com/arduano/snake-solver/render"
	"github.com/arduano/snake-solver/solver"
)

// boardTop is the first screen row of the board; the rows above hold status text.
const boardTop = 2

var tcellStyles = map[render.Glyph]tcell.Style{
	render.GlyphEmpty: tcell.StyleDefault.Foreground(tcell.ColorGray),
	render.GlyphFood:  tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	render.GlyphHead:  tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true),
	render.GlyphBody:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
	render.GlyphPath:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
	render.GlyphWall:  tcell.StyleDefault.Foreground(tcell.ColorBlue),
}

type tcellViewer struct {
	screen  tcell.Screen
	newGame gameFactory
	player  *autoplay.Player
	speed   time.Duration
	paused  bool
	walls   bool
	err     error
}

func runTcell(newGame gameFactory, speed time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	p, err := newGame()
	if err != nil {
		return err
	}
	v := &tcellViewer{screen: screen, newGame: newGame, player: p, speed: speed, walls: true}
	v.run()
	return v.err
}

func (v *tcellViewer) run() {
	ticker := time.NewTicker(v.speed)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				// Screen finalized.
				return
			}
			events <- ev
		}
	}()

	v.draw()
	for {
		select {
		case ev := <-events:
			if !v.handleInput(ev) {
				return
			}
			ticker.Reset(v.speed)
			v.draw()
		case <-ticker.C:
			if !v.paused {
				v.step()
			}
			v.draw()
		}
	}
}

func (v *tcellViewer) step() {
	if v.player.State() != autoplay.Playing || v.err != nil {
		return
	}
	_, v.err = v.player.Step()
}

func (v *tcellViewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			v.paused = !v.paused
		case 'w':
			v.walls = !v.walls
		case '+', '=':
			v.speed = max(v.speed/2, time.Millisecond)
		case '-':
			v.speed = min(v.speed*2, 2*time.Second)
		case 'r':
			p, err := v.newGame()
			if err != nil {
				v.err = err
				return false
			}
			v.player = p
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *tcellViewer) draw() {
	v.screen.Clear()
	w := v.player.World()
	status := fmt.Sprintf("%s  %s  plans=%d", v.player.State(), render.Summary(w), v.player.Plans())
	if v.paused {
		status += "  [paused]"
	}
	drawText(v.screen, 0, 0, tcell.StyleDefault.Bold(true), status)

	var walls *game.EdgeGraph[bool]
	if insp, ok := v.player.Solver().(solver.Inspector); ok && v.walls {
		walls = insp.WallGrid()
	}
	path := v.player.Path()
	drawBoard(v.screen, w, &path, walls)
	v.screen.Show()
}

// drawBoard puts cell (x, y) at column 2x and row boardTop+2y, leaving the
// odd columns and rows for walls.
func drawBoard(screen tcell.Screen, w *game.World, path *game.Path, walls *game.EdgeGraph[bool]) {
	glyphs := render.Glyphs(w, path)
	wallStyle := tcellStyles[render.GlyphWall]
	for c := range glyphs.Coords() {
		g := glyphs.At(c)
		sx, sy := 2*c.X, boardTop+2*c.Y
		screen.SetContent(sx, sy, []rune(g.Text())[0], nil, tcellStyles[g])
		if walls == nil {
			continue
		}
		if wall, _ := walls.Edge(c, game.Right); wall && c.X < w.Size()-1 {
			screen.SetContent(sx+1, sy, '│', nil, wallStyle)
		}
		if wall, _ := walls.Edge(c, game.Down); wall && c.Y < w.Size()-1 {
			screen.SetContent(sx, sy+1, '─', nil, wallStyle)
		}
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
