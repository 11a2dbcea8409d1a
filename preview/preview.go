// Package preview draws a generated cave's occupancy grid in a terminal.
package preview

import (
	"github.com/gdamore/tcell/v2"

	"ebiten-caves/generation"
)

// Glyphs used for the grid
const (
	WallRune    = '#'
	FloorRune   = '.'
	PassageRune = '+'
)

var (
	wallStyle     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 110, 100))
	floorStyle    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(70, 70, 80))
	mainRoomStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(218, 165, 32))
	passageStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 210, 0)).Bold(true)
	statusStyle   = tcell.StyleDefault.Reverse(true)
)

// Action is what the preview loop should do after a key press
type Action int

const (
	ActionNone Action = iota
	ActionRegenerate
	ActionQuit
)

// ActionForKey maps a key event to an Action
func ActionForKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return ActionQuit
		case 'r', 'R', ' ':
			return ActionRegenerate
		}
	}
	return ActionNone
}

// Draw renders the cave with y = 0 on the bottom row, so north is up as in
// the mesh view. The last screen row is a status line. Cells beyond the
// screen are clipped.
func Draw(screen tcell.Screen, cave *generation.Cave, status string) {
	screen.Clear()
	width, height := screen.Size()
	mapRows := height - 1

	mainRoom := make(map[generation.Coord]bool, cave.MainRoom().Size)
	for _, c := range cave.MainRoom().Tiles {
		mainRoom[c] = true
	}
	passageEnds := make(map[generation.Coord]bool, len(cave.Passages)*2)
	for _, p := range cave.Passages {
		passageEnds[p.From] = true
		passageEnds[p.To] = true
	}

	grid := cave.Grid
	for y := 0; y < grid.Height; y++ {
		row := grid.Height - 1 - y
		if row >= mapRows {
			continue
		}
		for x := 0; x < grid.Width && x < width; x++ {
			c := generation.Coord{X: x, Y: y}
			r, style := FloorRune, floorStyle
			switch {
			case grid.IsWall(x, y):
				r, style = WallRune, wallStyle
			case passageEnds[c]:
				r, style = PassageRune, passageStyle
			case mainRoom[c]:
				style = mainRoomStyle
			}
			screen.SetContent(x, row, r, nil, style)
		}
	}

	drawStatus(screen, status, width, height-1)
	screen.Show()
}

func drawStatus(screen tcell.Screen, status string, width, row int) {
	x := 0
	for _, r := range status {
		if x >= width {
			break
		}
		screen.SetContent(x, row, r, nil, statusStyle)
		x++
	}
	for ; x < width; x++ {
		screen.SetContent(x, row, ' ', nil, statusStyle)
	}
}
