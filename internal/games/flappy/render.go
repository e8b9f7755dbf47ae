package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/skyhop/internal/core"
)

// Visual characters for terminal rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	GroundChar    = '▒'
	GrassChar     = '▲'
	GrassGapChar  = '═'
	CloudChar     = '░'
	BirdBodyChar  = '█'
	BirdEyeChar   = '●'
	WingUpChar    = '▀'
	WingDownChar  = '▄'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// cellMapper converts world coordinates to screen cells.
type cellMapper struct {
	sx, sy float64
}

func newCellMapper(dst *core.Screen, vp core.Viewport) cellMapper {
	m := cellMapper{sx: 1, sy: 1}
	if vp.W > 0 {
		m.sx = float64(dst.Width()) / vp.W
	}
	if vp.H > 0 {
		m.sy = float64(dst.Height()) / vp.H
	}
	return m
}

func (m cellMapper) col(x float64) int { return int(math.Floor(x * m.sx)) }
func (m cellMapper) row(y float64) int { return int(math.Floor(y * m.sy)) }

// RenderSnapshot draws a snapshot into a terminal screen buffer.
// It only reads the snapshot, so it can run on any frame after the fact.
func RenderSnapshot(dst *core.Screen, s Snapshot) {
	dst.Clear()
	m := newCellMapper(dst, s.Viewport)

	drawClouds(dst, m, s)
	for _, p := range s.Pipes {
		drawPipe(dst, m, s, p)
	}
	drawGround(dst, m, s)
	drawBird(dst, m, s.Bird)
	drawHUD(dst, s)

	switch s.Mode {
	case core.ModeIdle:
		drawCenteredMessage(dst, []string{
			"S K Y H O P",
			"",
			"Space / click to flap",
			fmt.Sprintf("Best: %d", s.Best),
		})
	case core.ModeTerminal:
		lines := []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d   Best: %d", s.Score, s.Best),
		}
		if s.NewBest {
			lines = append(lines, "New best!")
		}
		lines = append(lines, "", "R / Enter to restart")
		drawCenteredMessage(dst, lines)
	}
}

func drawClouds(dst *core.Screen, m cellMapper, s Snapshot) {
	for _, c := range s.Clouds() {
		left := m.col(c.X - c.W/2)
		right := m.col(c.X + c.W/2)
		y := m.row(c.Y)
		for x := left; x <= right; x++ {
			dst.SetColored(x, y, CloudChar, core.ColorBrightWhite)
		}
	}
}

// drawPipe renders a single pipe, caps facing the gap.
func drawPipe(dst *core.Screen, m cellMapper, s Snapshot, p Pipe) {
	left := m.col(p.X)
	right := m.col(p.Right(s.PipeWidth))
	gapTop := m.row(p.TopHeight)
	gapBottom := m.row(p.GapBottom(s.PipeGap))
	ground := m.row(s.GroundLine())

	for x := left; x < right; x++ {
		for y := 0; y < gapTop; y++ {
			dst.SetColored(x, y, PipeChar, core.ColorGreen)
		}
		for y := gapBottom; y < ground; y++ {
			dst.SetColored(x, y, PipeChar, core.ColorGreen)
		}
	}

	// Lips are one cell wider on each side
	for x := left - 1; x <= right; x++ {
		if gapTop > 0 {
			dst.SetColored(x, gapTop-1, PipeCapTop, core.ColorBrightGreen)
		}
		if gapBottom < ground {
			dst.SetColored(x, gapBottom, PipeCapBottom, core.ColorBrightGreen)
		}
	}
}

// drawGround fills the ground band and scrolls the grass edge.
func drawGround(dst *core.Screen, m cellMapper, s Snapshot) {
	top := m.row(s.GroundLine())
	for y := top + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundChar, core.ColorSand)
	}

	period := s.ScrollPeriod
	for x := 0; x < dst.Width(); x++ {
		worldX := float64(x)/m.sx + s.Scroll
		ch := GrassGapChar
		if period > 0 && math.Mod(worldX, period) < period/2 {
			ch = GrassChar
		}
		dst.SetColored(x, top, ch, core.ColorBrightGreen)
	}
}

// drawBird renders the bird's hitbox with an eye, a beak showing the tilt,
// and a wing that is up while the impulse pose lasts.
func drawBird(dst *core.Screen, m cellMapper, b Bird) {
	box := b.Box()
	left, right := m.col(box.Left), m.col(box.Right)
	top, bottom := m.row(box.Top), m.row(box.Bottom)
	if right <= left {
		right = left + 1
	}
	if bottom <= top {
		bottom = top + 1
	}

	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			dst.SetColored(x, y, BirdBodyChar, core.ColorBrightYellow)
		}
	}

	dst.SetColored(right-1, top, BirdEyeChar, core.ColorBrightWhite)

	wing := WingDownChar
	if b.FlapFrames > 0 {
		wing = WingUpChar
	}
	dst.SetColored(left, top+(bottom-top)/2, wing, core.ColorOrange)

	dst.SetColored(right, top+(bottom-top)/2, beakChar(b.Rotation), core.ColorRed)
}

// beakChar picks a beak glyph from the bird's tilt in degrees.
func beakChar(rotation float64) rune {
	switch {
	case rotation <= -15:
		return '╱'
	case rotation >= 35:
		return '╲'
	default:
		return '▶'
	}
}

func drawHUD(dst *core.Screen, s Snapshot) {
	if s.Mode == core.ModeIdle {
		return
	}
	dst.DrawTextCentered(0, fmt.Sprintf(" %d ", s.Score), core.ColorBrightWhite)
	best := fmt.Sprintf(" Best: %d ", s.Best)
	dst.DrawText(dst.Width()-len(best)-1, 0, best, core.ColorGray)
}

// drawCenteredMessage draws a boxed block of lines in the center of the screen.
func drawCenteredMessage(dst *core.Screen, lines []string) {
	w := dst.Width()
	h := dst.Height()

	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawText(x, boxY+1+i, l, core.ColorBrightWhite)
	}
}
