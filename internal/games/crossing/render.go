package crossing

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/roadcross/internal/core"
	"github.com/vovakirdan/roadcross/internal/games/crossing/sim"
)

// Visual characters for rendering
const (
	HedgeChar    = '▒'
	SidewalkChar = '░'
	LaneMarkChar = '─'
	CarChar      = '█'
	SemiChar     = '▓'
	ActorChar    = '█'
	ActorEyeChar = 'o'
	ClaimedChar  = '◆'
	HeartChar    = '♥'
)

// Lane colors, bottom lane first.
var laneColors = []core.Color{
	core.ColorRed,
	core.ColorYellow,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorOrange,
}

// Death animation glyphs indexed by sim.DeathStage.
var deathGlyphs = [sim.DeathStageCount]struct {
	char  rune
	color core.Color
}{
	{'*', core.ColorBrightRed},
	{'≈', core.ColorRed},
	{'●', core.ColorRed},
	{'✝', core.ColorWhite},
}

// The drawn playfield starts BottomLaneOffset units down, so every 50-unit
// row boundary lands on a cell boundary.
const renderTop = sim.BottomLaneOffset

// layout is the placement of the playfield on a particular screen.
type layout struct {
	vp     core.Viewport
	field  core.CellRect // playfield cells
	hudY   int
	footer int
}

// fieldSize returns the playfield size in cells for the configured scale.
func (g *Game) fieldSize() (cols, rows int) {
	vp := core.Viewport{UnitsPerCol: g.cfg.Render.UnitsPerCol, UnitsPerRow: g.cfg.Render.UnitsPerRow}
	return vp.Cells(PlayfieldWidth, PlayfieldHeight-renderTop-sim.BottomLaneOffset)
}

// MinScreenSize returns the smallest terminal that fits the playfield,
// its border, the HUD and the footer.
func (g *Game) MinScreenSize() (w, h int) {
	cols, rows := g.fieldSize()
	return cols + 2, rows + 4
}

func (g *Game) layoutFor(dst *core.Screen) (layout, bool) {
	cols, rows := g.fieldSize()
	minW, minH := g.MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		return layout{}, false
	}

	top := (dst.Height() - minH) / 2
	left := (dst.Width() - cols) / 2
	field := core.NewCellRect(left, top+2, cols, rows)
	return layout{
		vp: core.Viewport{
			OriginX:     field.X,
			OriginY:     field.Y,
			UnitsPerCol: g.cfg.Render.UnitsPerCol,
			UnitsPerRow: g.cfg.Render.UnitsPerRow,
		},
		field:  field,
		hudY:   top,
		footer: field.Bottom() + 1,
	}, true
}

// project maps a playfield rectangle to the cells it covers, clipped to the
// playfield.
func (l layout) project(r core.Rect) core.CellRect {
	return l.vp.Project(r.Translate(0, -renderTop)).Intersect(l.field)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2, "Could not start game: "+g.err.Error())
		return
	}
	if g.sim == nil {
		return
	}

	l, ok := g.layoutFor(dst)
	if !ok {
		w, h := g.MinScreenSize()
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	dst.DrawBox(core.NewCellRect(l.field.X-1, l.field.Y-1, l.field.W+2, l.field.H+2))
	g.renderScenery(dst, l)
	g.renderGoals(dst, l)
	g.renderObstacles(dst, l)
	g.renderActor(dst, l)
	g.renderHUD(dst, l)
	g.renderFooter(dst, l)
	g.renderOverlay(dst)
}

// renderScenery draws the hedge, sidewalk and lane markings.
func (g *Game) renderScenery(dst *core.Screen, l layout) {
	hedge := core.NewRect(0, 0, PlayfieldWidth, sim.TopRow+sim.ActorSize)
	dst.DrawRect(l.project(hedge), HedgeChar, core.ColorGreen)

	_, spawnY := g.sim.Spawn()
	sidewalk := core.NewRect(0, spawnY, PlayfieldWidth, sim.ActorSize)
	dst.DrawRect(l.project(sidewalk), SidewalkChar, core.ColorGray)

	// Dashed line along the top of every lane but the highest.
	for i, lane := range g.sim.Roadway().Lanes() {
		if i == g.sim.Roadway().Len()-1 {
			break
		}
		row := l.project(core.NewRect(0, lane.Offset(), PlayfieldWidth, sim.LaneHeight))
		for x := row.X; x < row.Right(); x += 6 {
			dst.DrawHLine(x, row.Y, min(3, row.Right()-x), LaneMarkChar, core.ColorGray)
		}
	}
}

func (g *Game) renderGoals(dst *core.Screen, l layout) {
	for slot := range g.sim.Goals().Slots() {
		r := l.project(slot.Bounds)
		if slot.State == sim.Claimed {
			dst.DrawRect(r, ClaimedChar, core.ColorBrightGreen)
		} else {
			dst.DrawRect(r, ' ', core.ColorDefault)
		}
	}
}

func (g *Game) renderObstacles(dst *core.Screen, l layout) {
	for i, lane := range g.sim.Roadway().Lanes() {
		color := laneColors[i%len(laneColors)]
		for o := range lane.Obstacles() {
			if !o.Visible() {
				continue
			}
			r := l.project(o.Bounds())
			if r.Empty() {
				continue
			}
			glyph := CarChar
			if o.Kind == sim.Semi {
				glyph = SemiChar
			}
			dst.DrawRect(r, glyph, color)

			// Headlight on the leading edge.
			front, light := r.X, '◀'
			if o.Direction == sim.Right {
				front, light = r.Right()-1, '▶'
			}
			if front >= l.field.X && front < l.field.Right() {
				dst.SetColored(front, r.Y, light, core.ColorBrightYellow)
			}
		}
	}
}

func (g *Game) renderActor(dst *core.Screen, l layout) {
	a := g.sim.Actor()
	r := l.project(a.Bounds())
	if r.Empty() {
		return
	}

	stage, dying := g.sim.Death()
	if !dying && g.sim.Phase() == sim.Lost {
		stage, dying = sim.StageCross, true
	}
	if dying {
		d := deathGlyphs[stage]
		dst.DrawRect(r, d.char, d.color)
		return
	}

	dst.DrawRect(r, ActorChar, core.ColorBrightGreen)
	if r.W >= 3 {
		dst.SetColored(r.X+1, r.Y, ActorEyeChar, core.ColorWhite)
		dst.SetColored(r.Right()-2, r.Y, ActorEyeChar, core.ColorWhite)
	}
}

// renderHUD draws the score, lives and remaining time.
func (g *Game) renderHUD(dst *core.Screen, l layout) {
	left := l.field.X - 1
	right := l.field.Right() + 1

	dst.DrawText(left, l.hudY, fmt.Sprintf("Score: %d", g.sim.Score()))

	lives := "Lives: " + strings.Repeat(string(HeartChar), g.sim.Lives())
	dst.DrawTextColored((dst.Width()-utf8.RuneCountInString(lives))/2, l.hudY, lives, core.ColorBrightRed)

	remaining := g.sim.TimeRemaining()
	timeText := fmt.Sprintf("Time: %2d", remaining)
	timeColor := core.ColorDefault
	if remaining <= 5 {
		timeColor = core.ColorBrightRed
	}
	dst.DrawTextColored(right-len(timeText), l.hudY, timeText, timeColor)
}

func (g *Game) renderFooter(dst *core.Screen, l layout) {
	if g.banner != "" && g.tickCount < g.bannerUntil {
		dst.DrawTextCentered(l.footer, g.banner)
		return
	}
	dst.DrawTextCentered(l.footer, "←↑↓→ move  P pause  Q quit")
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.sim.Phase() == sim.Won:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.sim.Score())
		g.drawCenteredBox(dst, "ALL HOME!", subtitle)
	case g.sim.Phase() == sim.Lost:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.sim.Score())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	box := core.NewCellRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	// Draw box background
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	// Draw text
	dst.DrawText(box.X+(boxW-utf8.RuneCountInString(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-utf8.RuneCountInString(subtitle))/2, box.Y+3, subtitle)
}
