// Package model holds the bubbletea models of the dumbtile CLI.
package model

import (
	"context"
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbtile/internal/application/usecase"
	"github.com/bnema/dumbtile/internal/cli/styles"
	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/infrastructure/scenario"
	"github.com/bnema/dumbtile/internal/logging"
)

const (
	ratioStep       = 0.05
	playgroundSpace = "playground"
)

// ConfigReloadedMsg reports that the configuration file changed on disk.
type ConfigReloadedMsg struct {
	Path string
}

// PlaygroundConfig wires the playground.
type PlaygroundConfig struct {
	Layout        *usecase.ManageLayoutUseCase
	Screen        entity.Rect
	InitialRatio  float64
	NewID         usecase.IDGenerator
	PreviewWidth  int
	PreviewHeight int
}

// PlaygroundModel is an interactive layout session against an in-memory host.
type PlaygroundModel struct {
	ctx    context.Context
	layout *usecase.ManageLayoutUseCase
	host   *scenario.Host
	sync   *usecase.SyncLayoutUseCase
	state  *entity.LayoutState
	newID  usecase.IDGenerator

	frames  map[entity.WindowID]entity.Frame
	orphans []entity.WindowID
	status  string
	err     error

	previewWidth  int
	previewHeight int
	width         int
	height        int

	table table.Model
	keys  styles.PlaygroundKeyMap
	help  help.Model
	theme *styles.Theme
}

// NewPlaygroundModel creates a playground with no windows.
func NewPlaygroundModel(ctx context.Context, theme *styles.Theme, cfg PlaygroundConfig) PlaygroundModel {
	layout := cfg.Layout
	if layout == nil {
		layout = usecase.NewManageLayoutUseCase(nil, usecase.FallbackSize{})
	}
	ctx = logging.WithSpace(ctx, playgroundSpace)
	newID := cfg.NewID
	if newID == nil {
		newID = sequentialIDs()
	}

	host := scenario.NewHost(cfg.Screen)
	state := layout.RecommendMainPaneRatio(ctx, cfg.InitialRatio, entity.NewLayoutState())

	m := PlaygroundModel{
		ctx:           ctx,
		layout:        layout,
		host:          host,
		sync:          usecase.NewSyncLayoutUseCase(host, layout),
		state:         state,
		newID:         newID,
		frames:        map[entity.WindowID]entity.Frame{},
		previewWidth:  max(cfg.PreviewWidth, 8),
		previewHeight: max(cfg.PreviewHeight, 4),
		width:         80,
		height:        24,
		keys:          styles.DefaultPlaygroundKeyMap(),
		help:          styles.NewHelp(theme),
		theme:         theme,
	}
	m.updateTable()
	return m
}

func sequentialIDs() usecase.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("w%d", n)
	}
}

// Init implements tea.Model.
func (m PlaygroundModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PlaygroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateTable()

	case ConfigReloadedMsg:
		m.status = fmt.Sprintf("config %s changed, restart to apply", msg.Path)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Add):
			m.addWindow()
		case key.Matches(msg, m.keys.Remove):
			m.removeFocused()
		case key.Matches(msg, m.keys.Next):
			m.cycleFocus(1)
		case key.Matches(msg, m.keys.Prev):
			m.cycleFocus(-1)
		case key.Matches(msg, m.keys.Swap):
			m.swapWithNext()
		case key.Matches(msg, m.keys.Ratio):
			m.adjustRatio(msg.String())
		case key.Matches(msg, m.keys.Resync):
			m.resync()
		}
	}

	return m, nil
}

func (m *PlaygroundModel) apply(change entity.Change) {
	m.host.Apply(change)
	state, assignment, err := m.sync.HandleChange(m.ctx, change, m.state)
	m.state = state
	m.record(assignment, err)
}

func (m *PlaygroundModel) resync() {
	assignment, err := m.sync.Sync(m.ctx, m.state)
	m.record(assignment, err)
	if err == nil {
		m.status = "resynced with host"
	}
}

func (m *PlaygroundModel) record(assignment *usecase.FrameAssignment, err error) {
	m.err = err
	if err != nil || assignment == nil {
		return
	}
	m.frames = assignment.Frames
	m.orphans = assignment.Orphans
	m.updateTable()
}

func (m *PlaygroundModel) addWindow() {
	id := entity.WindowID(m.newID())
	m.apply(entity.AddChange{WindowID: id})
	m.apply(entity.FocusChangedChange{WindowID: id})
	m.status = fmt.Sprintf("added %s", id)
}

func (m *PlaygroundModel) removeFocused() {
	id := m.host.Focused()
	if id == "" {
		m.status = "no focused window"
		return
	}
	index := slices.Index(m.state.Windows, id)
	m.apply(entity.RemoveChange{WindowID: id})
	m.status = fmt.Sprintf("removed %s", id)

	// Focus moves to the window that took the removed one's place
	if n := len(m.state.Windows); n > 0 {
		next := m.state.Windows[min(index, n-1)]
		m.apply(entity.FocusChangedChange{WindowID: next})
	}
}

func (m *PlaygroundModel) cycleFocus(delta int) {
	n := len(m.state.Windows)
	if n == 0 {
		return
	}
	index := slices.Index(m.state.Windows, m.host.Focused())
	if index < 0 {
		index = 0
	} else {
		index = ((index+delta)%n + n) % n
	}
	m.apply(entity.FocusChangedChange{WindowID: m.state.Windows[index]})
}

func (m *PlaygroundModel) swapWithNext() {
	n := len(m.state.Windows)
	focused := m.host.Focused()
	index := slices.Index(m.state.Windows, focused)
	if n < 2 || index < 0 {
		m.status = "nothing to swap"
		return
	}
	other := m.state.Windows[(index+1)%n]
	m.apply(entity.WindowSwapChange{WindowID: focused, OtherWindowID: other})
	m.status = fmt.Sprintf("swapped %s and %s", focused, other)
}

func (m *PlaygroundModel) adjustRatio(k string) {
	delta := ratioStep
	if k == "-" {
		delta = -ratioStep
	}
	m.state = m.layout.RecommendMainPaneRatio(m.ctx, m.state.Ratio+delta, m.state)
	m.status = fmt.Sprintf("ratio hint %.2f (layout splits 50/50)", m.state.Ratio)
}

func (m *PlaygroundModel) updateTable() {
	rows := styles.FrameRows(m.frames, m.state.Windows, m.orphans)
	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		tableRows[i] = r.ToRow()
	}

	tableHeight := min(max(len(tableRows), 3), max(m.height-m.previewHeight-8, 3))
	m.table = styles.NewStyledTable(m.theme, styles.FrameTableColumns(), tableRows, min(m.width-4, 60), tableHeight)
	if index := slices.Index(m.state.Windows, m.host.Focused()); index >= 0 {
		m.table.SetCursor(index)
	}
}

// State returns the layout state driven by the playground.
func (m PlaygroundModel) State() *entity.LayoutState {
	return m.state
}

// Frames returns the frames applied by the last change.
func (m PlaygroundModel) Frames() map[entity.WindowID]entity.Frame {
	return m.frames
}

// Focused returns the focused window.
func (m PlaygroundModel) Focused() entity.WindowID {
	return m.host.Focused()
}

// View implements tea.Model.
func (m PlaygroundModel) View() string {
	t := m.theme

	screen, _ := m.host.Screen(m.ctx)
	order := styles.OrderedIDs(m.frames, m.state.Windows)
	preview := styles.NewPreview(m.frames, order, screen, m.previewWidth, m.previewHeight)

	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		t.Title.Render(m.layout.Name()),
		" ",
		t.Badge.Render(fmt.Sprintf("%d windows", len(m.state.Windows))),
		" ",
		t.BadgeMuted.Render(fmt.Sprintf("focus %s", focusLabel(m.host.Focused()))),
		" ",
		t.BadgeMuted.Render(fmt.Sprintf("ratio %.2f", m.state.Ratio)),
	)

	status := t.Subtle.Render(m.status)
	if m.err != nil {
		status = t.ErrorStyle.Render("Error: " + m.err.Error())
	} else if len(m.orphans) > 0 {
		status = t.WarningStyle.Render(fmt.Sprintf("%d orphaned windows", len(m.orphans)))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		t.Subtle.Render(m.state.Root.String()),
		preview.Render(t),
		m.table.View(),
		status,
		m.help.View(m.keys),
	)
}

func focusLabel(id entity.WindowID) string {
	if id == "" {
		return "-"
	}
	return string(id)
}

// Ensure interface compliance.
var _ tea.Model = (*PlaygroundModel)(nil)
