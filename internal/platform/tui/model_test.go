package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyhop/internal/core"
)

// fakeGame records what the model asks of it and replays scripted events.
type fakeGame struct {
	resets  []core.RuntimeConfig
	resizes []core.RuntimeConfig
	inputs  []core.InputFrame
	next    []core.Event
	state   core.GameState
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig)  { g.resets = append(g.resets, cfg) }
func (g *fakeGame) Resize(cfg core.RuntimeConfig) { g.resizes = append(g.resizes, cfg) }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	cp := core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			cp.Set(a)
		}
	}
	g.inputs = append(g.inputs, cp)
	events := g.next
	g.next = nil
	return core.StepResult{State: g.state, Events: events}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake", core.ColorWhite)
}

func (g *fakeGame) State() core.GameState { return g.state }

type savedRun struct {
	gameID string
	score  int
	cause  string
}

type fakeHistory struct {
	runs []savedRun
	err  error
}

func (h *fakeHistory) SaveScore(gameID string, score int, cause string) (int64, error) {
	if h.err != nil {
		return 0, h.err
	}
	h.runs = append(h.runs, savedRun{gameID, score, cause})
	return int64(len(h.runs)), nil
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func newTestModel(g *fakeGame, opts Options) Model {
	return NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 7}, opts)
}

func TestModelReservesHelpLine(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})
	m.Init()

	if len(g.resets) != 1 {
		t.Fatalf("Reset called %d times, want 1", len(g.resets))
	}
	if g.resets[0].ScreenH != 19 || g.resets[0].ScreenW != 40 {
		t.Errorf("playfield = %dx%d, want 40x19", g.resets[0].ScreenW, g.resets[0].ScreenH)
	}
	if g.resets[0].Seed != 7 {
		t.Errorf("seed = %d, want 7", g.resets[0].Seed)
	}
}

func TestModelLatchesInputUntilTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	if len(g.inputs) != 2 {
		t.Fatalf("Step called %d times, want 2", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionJump) || !g.inputs[0].Has(core.ActionRestart) {
		t.Error("first frame should carry both latched actions")
	}
	if g.inputs[1].Has(core.ActionJump) {
		t.Error("input was not cleared after the frame")
	}
}

func TestModelMouseFlaps(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})

	m = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	update(t, m, TickMsg{})

	if !g.inputs[0].Has(core.ActionJump) {
		t.Error("mouse press should flap")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if len(g.resets) != 0 {
		t.Error("resize should not reset the game")
	}
	if len(g.resizes) != 1 || g.resizes[0].ScreenW != 100 || g.resizes[0].ScreenH != 29 {
		t.Errorf("resizes = %+v", g.resizes)
	}
}

func TestModelRecordsFinishedRuns(t *testing.T) {
	g := &fakeGame{}
	hist := &fakeHistory{}
	m := newTestModel(g, Options{History: hist})

	g.next = []core.Event{{Kind: core.EventGameOver, Score: 4, Best: 4, NewBest: true, Cause: "pipe"}}
	m = update(t, m, TickMsg{})

	g.next = []core.Event{{Kind: core.EventGameOver, Score: 0, Best: 4, Cause: "ground"}}
	update(t, m, TickMsg{})

	if len(hist.runs) != 1 {
		t.Fatalf("recorded %d runs, want 1 (zero scores are skipped)", len(hist.runs))
	}
	if hist.runs[0] != (savedRun{"fake", 4, "pipe"}) {
		t.Errorf("run = %+v", hist.runs[0])
	}
}

func TestModelHistoryFailureKeepsPlaying(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{History: &fakeHistory{err: errors.New("locked")}})

	g.next = []core.Event{{Kind: core.EventGameOver, Score: 2}}
	_, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Error("frame loop stopped after a history error")
	}
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelHelpToggle(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})

	if !strings.Contains(m.View(), "flap") {
		t.Error("help line should be visible by default")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if strings.Contains(m.View(), "flap") {
		t.Error("help line should be hidden after toggling")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	g := &fakeGame{}
	m := newTestModel(g, Options{ScreenshotDir: dir})

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(dir, "fake_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("screenshots = %v, err %v", files, err)
	}
	data, _ := os.ReadFile(files[0])
	if !strings.HasPrefix(string(data), "fake") {
		t.Errorf("screenshot content = %q", string(data[:min(len(data), 20)]))
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.DrawText(0, 0, "abc", core.ColorDefault)
	s.DrawText(0, 1, "xyz", core.ColorDefault)

	if got := RenderScreen(s); got != "abc\nxyz" {
		t.Errorf("RenderScreen = %q", got)
	}
}
