package chomp

import (
	"fmt"

	"github.com/mazeworks/chomp/internal/core"
)

// ghostColors maps each ghost to its display color.
var ghostColors = [numGhosts]core.Color{
	GhostRed:    core.ColorBrightRed,
	GhostPink:   core.ColorPink,
	GhostCyan:   core.ColorBrightCyan,
	GhostOrange: core.ColorOrange,
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if dst.Width() < MazeWidth+2 || dst.Height() < MazeHeight+hudHeight+1 {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMaze(dst)
	g.renderGhosts(dst)
	g.renderPlayer(dst)

	switch {
	case g.stage == stageAttract:
		g.renderOverlay(dst, "CHOMP", "Press any key to start")
	case g.stage == stageStarting:
		dst.DrawTextColored(g.mapOffsetX()+11, g.mapOffsetY()+17, "READY!", core.ColorBrightYellow)
	case g.stage == stageLevelClear:
		g.renderOverlay(dst, fmt.Sprintf("Level %d cleared!", g.levelIndex+1), "")
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

const hudHeight = 2

func (g *Game) mapOffsetX() int { return (g.screenW - MazeWidth) / 2 }
func (g *Game) mapOffsetY() int { return hudHeight }

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Chomp  Score: %d  Level: %d  Lives: %d", g.score, g.levelIndex+1, g.lives)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderMaze draws walls, the pen door and the remaining pellets.
func (g *Game) renderMaze(dst *core.Screen) {
	ox, oy := g.mapOffsetX(), g.mapOffsetY()
	for y := 0; y < MazeHeight; y++ {
		for x := 0; x < MazeWidth; x++ {
			switch g.maze.TileAt(x, y) {
			case TileWall:
				dst.SetColored(ox+x, oy+y, '█', core.ColorBlue)
			case TileDoor:
				dst.SetColored(ox+x, oy+y, '─', core.ColorGray)
			case TilePellet:
				dst.SetColored(ox+x, oy+y, '·', core.ColorWhite)
			case TilePower:
				dst.SetColored(ox+x, oy+y, '●', core.ColorBrightWhite)
			}
		}
	}
}

// renderGhosts draws each ghost: its own color normally, blue while
// frightened, bare eyes while returning to the pen.
func (g *Game) renderGhosts(dst *core.Screen) {
	ox, oy := g.mapOffsetX(), g.mapOffsetY()
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		ch, color := 'M', ghostColors[gh.ID]
		switch gh.Mode {
		case ModeFrightened:
			color = core.ColorBrightBlue
			// Flash white as the fright runs out.
			if g.frightTicks < 120 && (g.frightTicks/15)%2 == 1 {
				color = core.ColorBrightWhite
			}
		case ModeEaten:
			ch, color = '"', core.ColorGray
		}
		dst.SetColored(ox+gh.Pos.X, oy+gh.Pos.Y, ch, color)
	}
}

// renderPlayer draws the player with a mouth facing the heading.
func (g *Game) renderPlayer(dst *core.Screen) {
	if g.stage == stageAttract {
		return
	}
	ch := 'C'
	if g.stage == stageDying {
		ch = 'x'
	}
	dst.SetColored(g.mapOffsetX()+g.player.Pos.X, g.mapOffsetY()+g.player.Pos.Y, ch, core.ColorBrightYellow)
}

// renderOverlay draws a centered boxed message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w, h := dst.Width(), dst.Height()

	maxLen := len([]rune(line1))
	if n := len([]rune(line2)); n > maxLen {
		maxLen = n
	}
	boxW := maxLen + 4
	boxH := 5
	box := core.Rect{X: (w - boxW) / 2, Y: (h - boxH) / 2, W: boxW, H: boxH}

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	if line2 != "" {
		dst.DrawTextCentered(box.Y+3, line2)
	}
}
