// Package tui runs the game in a terminal with Bubble Tea, locally or over SSH.
// It owns the frame loop, key and mouse mapping, and run history recording.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyhop/internal/core"
)

// TickMsg is sent to trigger a game frame.
type TickMsg time.Time

// tickCmd schedules the next frame message one frame interval from now.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(cfg.FrameInterval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
