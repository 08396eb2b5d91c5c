// Package tui implements the interactive sequence viewer: a bubbletea
// program that streams terms one tick at a time with play, pause and
// single-step controls.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cainthebest/fibext/internal/cli"
	"github.com/cainthebest/fibext/internal/config"
	apperrors "github.com/cainthebest/fibext/internal/errors"
	"github.com/cainthebest/fibext/internal/format"
	"github.com/cainthebest/fibext/internal/metrics"
	"github.com/cainthebest/fibext/internal/sysmon"
)

const (
	// visibleTerms caps how many recent terms the viewer keeps on screen.
	visibleTerms = 256

	defaultTickInterval = 250 * time.Millisecond
	minTickInterval     = 25 * time.Millisecond
	maxTickInterval     = 2 * time.Second

	sysSampleInterval = 2 * time.Second
)

// TickMsg advances the stream by one term.
type TickMsg time.Time

// SysStatsMsg carries a system monitor sample for the footer.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
	Goroutines int
	Heap       metrics.MemorySnapshot
}

// ContextCancelledMsg signals that the parent context was canceled.
type ContextCancelledMsg struct {
	Err error
}

// Model is the root bubbletea model for the sequence viewer.
type Model struct {
	source   termSource
	terms    []string
	emitted  uint64
	done     bool
	paused   bool
	interval time.Duration

	keymap    KeyMap
	config    config.AppConfig
	version   string
	startTime time.Time
	endTime   time.Time
	sys       SysStatsMsg

	ctx      context.Context
	exitCode int

	width  int
	height int
}

// NewModel creates a viewer model for the configured width and policy.
func NewModel(ctx context.Context, cfg config.AppConfig, version string) Model {
	return Model{
		source:    newTermSource(cfg),
		interval:  defaultTickInterval,
		keymap:    DefaultKeyMap(),
		config:    cfg,
		version:   version,
		startTime: time.Now(),
		ctx:       ctx,
		exitCode:  apperrors.ExitSuccess,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.interval),
		sampleSysStatsCmd(),
		watchContextCmd(m.ctx),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		if !m.paused && !m.done {
			m.advance()
		}
		if m.done {
			return m, nil
		}
		return m, tickCmd(m.interval)

	case SysStatsMsg:
		m.sys = msg
		if m.done {
			return m, nil
		}
		return m, tea.Tick(sysSampleInterval, func(time.Time) tea.Msg {
			return sampleSysStats()
		})

	case ContextCancelledMsg:
		m.finish()
		m.exitCode = apperrors.ExitErrorCanceled
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Pause):
		m.paused = !m.paused
		return m, nil

	case key.Matches(msg, m.keymap.Step):
		if !m.done {
			m.paused = true
			m.advance()
		}
		return m, nil

	case key.Matches(msg, m.keymap.Restart):
		m.source = newTermSource(m.config)
		m.terms = nil
		m.emitted = 0
		m.done = false
		m.paused = false
		m.startTime = time.Now()
		m.endTime = time.Time{}
		return m, tickCmd(m.interval)

	case key.Matches(msg, m.keymap.Faster):
		m.interval /= 2
		if m.interval < minTickInterval {
			m.interval = minTickInterval
		}
		return m, nil

	case key.Matches(msg, m.keymap.Slower):
		m.interval *= 2
		if m.interval > maxTickInterval {
			m.interval = maxTickInterval
		}
		return m, nil
	}

	return m, nil
}

// advance pulls one term from the source and appends it to the window.
func (m *Model) advance() {
	if m.config.Count > 0 && m.emitted >= m.config.Count {
		m.finish()
		return
	}
	term, ok := m.source.Next()
	if !ok {
		m.finish()
		return
	}
	m.terms = append(m.terms, fmt.Sprintf("%s = %s",
		indexStyle.Render("F("+format.FormatTermCount(m.emitted)+")"),
		termStyle.Render(cli.FormatTerm(term))))
	if len(m.terms) > visibleTerms {
		m.terms = m.terms[len(m.terms)-visibleTerms:]
	}
	m.emitted++
}

func (m *Model) finish() {
	if !m.done {
		m.done = true
		m.endTime = time.Now()
	}
}

// View renders the viewer.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer) - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	visible := m.terms
	if len(visible) > bodyHeight {
		visible = visible[len(visible)-bodyHeight:]
	}
	body := panelStyle.
		Width(m.width - 2).
		Height(bodyHeight).
		Render(strings.Join(visible, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("fibext viewer")
	if m.version != "" && m.version != "dev" {
		title += footerDescStyle.Render(" " + m.version)
	}

	var duration time.Duration
	if !m.endTime.IsZero() {
		duration = m.endTime.Sub(m.startTime)
	} else {
		duration = time.Since(m.startTime)
	}

	parts := []string{
		title,
		fmt.Sprintf("width=%s", m.config.Width),
		fmt.Sprintf("policy=%s", policyLabel(m.config.Checked)),
		fmt.Sprintf("terms=%s", format.FormatTermCount(m.emitted)),
		elapsedStyle.Render(format.FormatExecutionDuration(duration)),
		m.statusLabel(),
	}
	return strings.Join(parts, footerDescStyle.Render(" | "))
}

func (m Model) statusLabel() string {
	switch {
	case m.done:
		return statusDoneStyle.Render("DONE")
	case m.paused:
		return statusPausedStyle.Render("PAUSED")
	default:
		return statusRunningStyle.Render("RUNNING")
	}
}

func (m Model) renderFooter() string {
	var help []string
	for _, b := range m.keymap.helpEntries() {
		h := b.Help()
		help = append(help, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}

	sys := sysStyle.Render(fmt.Sprintf("cpu %.0f%%  mem %.0f%%  heap %.1fMB  goroutines %d",
		m.sys.CPUPercent, m.sys.MemPercent, m.sys.Heap.HeapAllocMB(), m.sys.Goroutines))

	return strings.Join(help, "  ") + "  " + sys
}

func policyLabel(checked bool) string {
	if checked {
		return "checked"
	}
	return "wrapping"
}

// Run is the public entry point for the TUI mode. It creates the
// bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, cfg, version)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// tickCmd returns a command that sends a TickMsg after the interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads system-wide CPU and memory stats.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return sampleSysStats()
	}
}

func sampleSysStats() SysStatsMsg {
	s := sysmon.Sample()
	return SysStatsMsg{
		CPUPercent: s.CPUPercent,
		MemPercent: s.MemPercent,
		Goroutines: s.Goroutines,
		Heap:       metrics.NewMemoryCollector().Snapshot(),
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
