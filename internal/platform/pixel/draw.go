package pixel

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/games/flappy"
)

// Palette
var (
	skyColor       = color.RGBA{0x70, 0xc5, 0xce, 0xff}
	cloudColor     = color.RGBA{0xf4, 0xfa, 0xfb, 0xff}
	pipeColor      = color.RGBA{0x5a, 0xb8, 0x3c, 0xff}
	pipeLipColor   = color.RGBA{0x4a, 0x9a, 0x30, 0xff}
	groundColor    = color.RGBA{0xde, 0xd8, 0x95, 0xff}
	grassColor     = color.RGBA{0x8b, 0xd0, 0x4a, 0xff}
	grassDarkColor = color.RGBA{0x6f, 0xb0, 0x36, 0xff}
	birdColor      = color.RGBA{0xf8, 0xd3, 0x2f, 0xff}
	wingColor      = color.RGBA{0xf0, 0xa8, 0x20, 0xff}
	beakColor      = color.RGBA{0xf0, 0x6a, 0x20, 0xff}
	eyeColor       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	pupilColor     = color.RGBA{0x20, 0x20, 0x20, 0xff}
	panelColor     = color.RGBA{0x00, 0x00, 0x00, 0xa0}
	buttonColor    = color.RGBA{0xf0, 0x6a, 0x20, 0xff}
)

const (
	pipeLipHeight = 24
	pipeLipReach  = 4 // How far the lip sticks out past the pipe body
	grassHeight   = 12
	// ebitenutil's debug font is 6x16
	glyphW = 6
	glyphH = 16
)

// sprites holds the pre-rendered bird frames.
type sprites struct {
	wingDown *ebiten.Image
	wingUp   *ebiten.Image
}

func newSprites(p config.FlappyPlayer) sprites {
	return sprites{
		wingDown: drawBirdSprite(p, false),
		wingUp:   drawBirdSprite(p, true),
	}
}

// drawBirdSprite paints the bird at rest, facing right, in a w x h image.
func drawBirdSprite(p config.FlappyPlayer, wingUp bool) *ebiten.Image {
	w, h := float32(p.Width), float32(p.Height)
	img := ebiten.NewImage(int(math.Ceil(p.Width)), int(math.Ceil(p.Height)))

	r := h / 2
	vector.DrawFilledCircle(img, r, r, r, birdColor, true)
	vector.DrawFilledCircle(img, w-r-4, r, r, birdColor, true)
	vector.DrawFilledRect(img, r, 0, w-2*r-4, h, birdColor, true)

	vector.DrawFilledRect(img, w-8, h/2-2, 8, 6, beakColor, true)

	vector.DrawFilledCircle(img, w-12, h/3, 5, eyeColor, true)
	vector.DrawFilledCircle(img, w-10, h/3, 2, pupilColor, true)

	wingY := h/2 + 2
	if wingUp {
		wingY = h/2 - 8
	}
	vector.DrawFilledRect(img, 6, wingY, 14, 7, wingColor, true)

	return img
}

// drawSnapshot renders one frame.
func drawSnapshot(screen *ebiten.Image, s flappy.Snapshot, sp sprites) {
	screen.Fill(skyColor)

	for _, c := range s.Clouds() {
		drawCloud(screen, c)
	}
	for _, p := range s.Pipes {
		drawPipe(screen, s, p)
	}
	drawGround(screen, s)
	drawBird(screen, s.Bird, sp)

	switch s.Mode {
	case core.ModeIdle:
		drawPanel(screen, s.Viewport, []string{
			"SKYHOP",
			"",
			"Click, tap or press Space",
			fmt.Sprintf("Best: %d", s.Best),
		}, false)
	case core.ModePlaying:
		printCentered(screen, fmt.Sprintf("%d", s.Score), s.Viewport.W/2, 24)
	case core.ModeTerminal:
		lines := []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d", s.Score),
			fmt.Sprintf("Best: %d", s.Best),
		}
		if s.NewBest {
			lines = append(lines, "New best!")
		}
		drawPanel(screen, s.Viewport, lines, true)
	}
}

func drawCloud(screen *ebiten.Image, c flappy.Cloud) {
	x, y := float32(c.X), float32(c.Y)
	r := float32(c.H / 2)
	vector.DrawFilledCircle(screen, x-r, y, r*0.8, cloudColor, true)
	vector.DrawFilledCircle(screen, x, y-r*0.3, r, cloudColor, true)
	vector.DrawFilledCircle(screen, x+r, y, r*0.8, cloudColor, true)
}

func drawPipe(screen *ebiten.Image, s flappy.Snapshot, p flappy.Pipe) {
	x, w := float32(p.X), float32(s.PipeWidth)
	top := float32(p.TopHeight)
	bottom := float32(p.GapBottom(s.PipeGap))
	ground := float32(s.GroundLine())

	vector.DrawFilledRect(screen, x, 0, w, top, pipeColor, false)
	vector.DrawFilledRect(screen, x, bottom, w, ground-bottom, pipeColor, false)

	vector.DrawFilledRect(screen, x-pipeLipReach, top-pipeLipHeight, w+2*pipeLipReach, pipeLipHeight, pipeLipColor, false)
	vector.DrawFilledRect(screen, x-pipeLipReach, bottom, w+2*pipeLipReach, pipeLipHeight, pipeLipColor, false)
}

// drawGround fills the ground band; the grass stripes scroll with the world.
func drawGround(screen *ebiten.Image, s flappy.Snapshot) {
	top := float32(s.GroundLine())
	w := float32(s.Viewport.W)

	vector.DrawFilledRect(screen, 0, top, w, float32(s.GroundHeight), groundColor, false)
	vector.DrawFilledRect(screen, 0, top, w, grassHeight, grassColor, false)

	period := float32(s.ScrollPeriod)
	if period <= 0 {
		return
	}
	for x := -float32(s.Scroll); x < w; x += period {
		vector.DrawFilledRect(screen, x, top, period/2, grassHeight, grassDarkColor, false)
	}
}

// drawBird draws the sprite rotated about its center by the bird's tilt.
func drawBird(screen *ebiten.Image, b flappy.Bird, sp sprites) {
	img := sp.wingDown
	if b.FlapFrames > 0 {
		img = sp.wingUp
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-b.Width/2, -b.Height/2)
	op.GeoM.Rotate(b.Rotation * math.Pi / 180)
	op.GeoM.Translate(b.X, b.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// drawPanel draws a translucent box of centered lines, and the restart
// button under it when withButton is set.
func drawPanel(screen *ebiten.Image, vp core.Viewport, lines []string, withButton bool) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len(l))
	}
	boxW := float64(width*glyphW + 40)
	boxH := float64(len(lines)*glyphH + 24)
	box := core.BoxAround(vp.W/2, vp.H/2-boxH/2, boxW, boxH)

	vector.DrawFilledRect(screen, float32(box.Left), float32(box.Top), float32(boxW), float32(boxH), panelColor, false)
	for i, l := range lines {
		printCentered(screen, l, vp.W/2, box.Top+12+float64(i*glyphH))
	}

	if !withButton {
		return
	}
	btn := restartButton(vp)
	vector.DrawFilledRect(screen, float32(btn.Left), float32(btn.Top),
		float32(btn.Right-btn.Left), float32(btn.Bottom-btn.Top), buttonColor, false)
	printCentered(screen, "RESTART", vp.W/2, (btn.Top+btn.Bottom)/2-glyphH/2)
}

// printCentered prints text horizontally centered on cx with its top at y.
func printCentered(screen *ebiten.Image, text string, cx, y float64) {
	x := int(cx) - len(text)*glyphW/2
	ebitenutil.DebugPrintAt(screen, text, x, int(y))
}
