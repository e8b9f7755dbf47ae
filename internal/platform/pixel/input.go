package pixel

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/skyhop/internal/core"
)

var (
	flapKeys    = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
	restartKeys = []ebiten.Key{ebiten.KeyR, ebiten.KeyEnter}
)

// pollInput collects the input edges of this frame.
func (a *App) pollInput() core.InputFrame {
	in := core.NewInputFrame()

	for _, k := range flapKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.Set(core.ActionJump)
		}
	}
	for _, k := range restartKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.Set(core.ActionRestart)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Set(core.ActionQuit)
	}

	mode := a.game.State().Mode
	vp := a.game.Viewport()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		setPointer(&in, mode, vp, x, y)
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		setPointer(&in, mode, vp, x, y)
	}

	return in
}

func setPointer(in *core.InputFrame, mode core.Mode, vp core.Viewport, x, y int) {
	if a := pointerAction(mode, vp, float64(x), float64(y)); a != core.ActionNone {
		in.Set(a)
	}
}

// pointerAction maps a click or tap to an action. On the game-over screen
// only the restart button reacts; everywhere else a press is a flap.
func pointerAction(mode core.Mode, vp core.Viewport, x, y float64) core.Action {
	if mode != core.ModeTerminal {
		return core.ActionJump
	}
	if restartButton(vp).Contains(x, y) {
		return core.ActionRestart
	}
	return core.ActionNone
}

// restartButton is the clickable area on the game-over panel.
func restartButton(vp core.Viewport) core.Box {
	const w, h = 140, 36
	return core.BoxAround(vp.W/2, vp.H/2+56, w, h)
}
