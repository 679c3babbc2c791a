package mazechase

import (
	"fmt"

	"github.com/vovakirdan/tui-mazechase/internal/core"
	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase/maze"
)

const (
	glyphWall    = '█'
	glyphPellet  = '·'
	glyphCoin    = '●'
	glyphAgent   = '●'
	glyphPursuer = '▲'
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.round == nil {
		g.renderOverlay(dst, "Cannot start", "Check the maze configuration")
		return
	}

	snap := g.round.Snapshot()
	g.renderHUD(dst, snap)

	if g.tooSmall {
		mazeW, mazeH := g.mazeSize()
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", mazeW, mazeH+hudHeight))
		return
	}

	g.renderMaze(dst, snap)

	switch {
	case snap.State == StateGameOver:
		g.renderOverlay(dst, "Caught!", fmt.Sprintf("Score: %d  Level: %d  (R to restart)", snap.Agent.Score, snap.Level))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" %s — Score: %d  Level: %d  Pellets: %d",
		g.Title(), snap.Agent.Score, snap.Level, len(snap.Pellets))
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderMaze draws walls, pellets, the coin and the actors, centered below the HUD.
func (g *Game) renderMaze(dst *core.Screen, snap Snapshot) {
	cw := g.cfg.Grid.CellWidth
	mazeW, _ := g.mazeSize()
	offX := (dst.Width() - mazeW) / 2
	offY := hudHeight

	put := func(p maze.Position, r rune, c core.Color) {
		dst.SetColored(offX+p.Col*cw, offY+p.Row, r, c)
	}

	grid := snap.Grid
	for row := range grid.Rows() {
		for col := range grid.Cols() {
			if grid.Passable(maze.Position{Col: col, Row: row}) {
				continue
			}
			for i := range cw {
				dst.SetColored(offX+col*cw+i, offY+row, glyphWall, core.ColorWhite)
			}
		}
	}

	for _, p := range snap.Pellets {
		put(p, glyphPellet, core.ColorOrange)
	}
	put(snap.Coin, glyphCoin, core.ColorGreen)
	put(snap.Agent.Pos, glyphAgent, core.ColorYellow)
	for _, p := range snap.Pursuers {
		put(p, glyphPursuer, core.ColorRed)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := dst.Bounds().Centered(boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
