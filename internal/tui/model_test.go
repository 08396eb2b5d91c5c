package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cainthebest/fibext/internal/config"
	apperrors "github.com/cainthebest/fibext/internal/errors"
)

func newTestModel(t *testing.T, cfg config.AppConfig) Model {
	t.Helper()
	if cfg.Width == "" {
		cfg.Width = config.Width64
	}
	return NewModel(context.Background(), cfg, "test")
}

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_TickAdvancesStream(t *testing.T) {
	m := newTestModel(t, config.AppConfig{Count: 5})

	var model tea.Model = m
	for i := 0; i < 3; i++ {
		model, _ = model.(Model).Update(TickMsg(time.Now()))
	}

	got := model.(Model)
	if got.emitted != 3 {
		t.Errorf("emitted = %d after 3 ticks, want 3", got.emitted)
	}
	if got.done {
		t.Error("model should not be done after 3 of 5 terms")
	}
}

func TestModel_CountBoundsStream(t *testing.T) {
	m := newTestModel(t, config.AppConfig{Count: 2})

	var model tea.Model = m
	for i := 0; i < 5; i++ {
		model, _ = model.(Model).Update(TickMsg(time.Now()))
	}

	got := model.(Model)
	if got.emitted != 2 {
		t.Errorf("emitted = %d, want 2", got.emitted)
	}
	if !got.done {
		t.Error("model should be done once the count is reached")
	}
}

func TestModel_CheckedExhaustionFinishes(t *testing.T) {
	m := newTestModel(t, config.AppConfig{Width: config.Width8, Checked: true})

	var model tea.Model = m
	for i := 0; i < 20; i++ {
		model, _ = model.(Model).Update(TickMsg(time.Now()))
	}

	got := model.(Model)
	if got.emitted != 12 {
		t.Errorf("emitted = %d, want 12", got.emitted)
	}
	if !got.done {
		t.Error("model should be done after exhaustion")
	}
}

func TestModel_PauseStopsAdvancing(t *testing.T) {
	m := newTestModel(t, config.AppConfig{Count: 100})

	var model tea.Model = m
	model, _ = model.(Model).Update(keyMsg(" "))
	model, _ = model.(Model).Update(TickMsg(time.Now()))
	model, _ = model.(Model).Update(TickMsg(time.Now()))

	got := model.(Model)
	if !got.paused {
		t.Error("space should pause the stream")
	}
	if got.emitted != 0 {
		t.Errorf("emitted = %d while paused, want 0", got.emitted)
	}
}

func TestModel_StepAdvancesOneTermWhilePaused(t *testing.T) {
	m := newTestModel(t, config.AppConfig{Count: 100})

	var model tea.Model = m
	model, _ = model.(Model).Update(keyMsg("s"))
	model, _ = model.(Model).Update(keyMsg("s"))

	got := model.(Model)
	if !got.paused {
		t.Error("step should leave the stream paused")
	}
	if got.emitted != 2 {
		t.Errorf("emitted = %d after two steps, want 2", got.emitted)
	}
}

func TestModel_RestartResetsStream(t *testing.T) {
	m := newTestModel(t, config.AppConfig{Count: 100})

	var model tea.Model = m
	for i := 0; i < 5; i++ {
		model, _ = model.(Model).Update(TickMsg(time.Now()))
	}
	model, _ = model.(Model).Update(keyMsg("r"))

	got := model.(Model)
	if got.emitted != 0 {
		t.Errorf("emitted = %d after restart, want 0", got.emitted)
	}
	if got.done || got.paused {
		t.Error("restart should clear done and paused")
	}

	// The stream restarts from the seed pair.
	model, _ = got.Update(TickMsg(time.Now()))
	restarted := model.(Model)
	if len(restarted.terms) != 1 || !strings.Contains(restarted.terms[0], "= 0") {
		t.Errorf("first term after restart = %v, want F(0) = 0", restarted.terms)
	}
}

func TestModel_SpeedAdjustmentClamps(t *testing.T) {
	m := newTestModel(t, config.AppConfig{Count: 10})

	var model tea.Model = m
	for i := 0; i < 20; i++ {
		model, _ = model.(Model).Update(keyMsg("+"))
	}
	if got := model.(Model); got.interval != minTickInterval {
		t.Errorf("interval = %v after repeated speed-up, want %v", got.interval, minTickInterval)
	}

	for i := 0; i < 20; i++ {
		model, _ = model.(Model).Update(keyMsg("-"))
	}
	if got := model.(Model); got.interval != maxTickInterval {
		t.Errorf("interval = %v after repeated slow-down, want %v", got.interval, maxTickInterval)
	}
}

func TestModel_ContextCancellationQuits(t *testing.T) {
	m := newTestModel(t, config.AppConfig{Count: 10})

	model, cmd := m.Update(ContextCancelledMsg{Err: context.Canceled})

	got := model.(Model)
	if !got.done {
		t.Error("cancellation should mark the model done")
	}
	if got.exitCode != apperrors.ExitErrorCanceled {
		t.Errorf("exitCode = %d, want %d", got.exitCode, apperrors.ExitErrorCanceled)
	}
	if cmd == nil {
		t.Error("cancellation should return tea.Quit")
	}
}

func TestModel_ViewContainsStatus(t *testing.T) {
	m := newTestModel(t, config.AppConfig{Count: 10})
	m.width = 80
	m.height = 24

	var model tea.Model = m
	model, _ = model.(Model).Update(TickMsg(time.Now()))

	view := model.(Model).View()
	if !strings.Contains(view, "RUNNING") {
		t.Error("view should show the RUNNING status")
	}
	if !strings.Contains(view, "width=64") {
		t.Error("view should show the configured width")
	}
}

func TestModel_ViewBeforeResize(t *testing.T) {
	m := newTestModel(t, config.AppConfig{Count: 10})

	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() before sizing = %q", got)
	}
}
