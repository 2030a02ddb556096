package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"flexarea/config"
	"flexarea/inspect"
	"flexarea/keys"
	"flexarea/log"
	"flexarea/ui"
	"flexarea/ui/layout"
	"flexarea/ui/overlay"
	"flexarea/words"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Run is the main entrypoint into the application.
func Run(ctx context.Context, appConfig *config.Config) error {
	log.InfoLog.Printf("starting session %s", words.Pair())

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if appConfig.MouseWheel {
		opts = append(opts, tea.WithMouseCellMotion()) // Mouse scroll
	}
	p := tea.NewProgram(newHome(ctx, appConfig), opts...)
	_, err := p.Run()
	log.GetProfiler().LogStats()
	return err
}

type state int

const (
	// stateComposing is the default state, typing into the composer.
	stateComposing state = iota
	// stateBounds is the state when the bounds selector overlay is open.
	stateBounds
)

type home struct {
	ctx context.Context

	// -- Storage and Configuration --

	// appConfig stores persistent application configuration
	appConfig *config.Config
	// appState stores the draft and sent-message history between runs
	appState *config.State

	// -- State --

	// state is the current discrete state of the application
	state state

	// userMin and userMax are the configured height bounds, before the
	// layout's ceiling is applied.
	userMin layout.Bound
	userMax layout.Bound

	// pendingSave indicates that a save is queued (for debouncing)
	pendingSave bool

	// lastDraft is the last composer value scheduled for saving
	lastDraft string

	// -- UI Components --

	// composer is the auto-resizing input at the bottom of the screen
	composer *ui.TextArea
	// history displays previously sent messages
	history *ui.History
	// menu displays the bottom menu
	menu *ui.Menu
	// errBox displays error messages
	errBox *ui.ErrBox
	// global spinner instance. we plumb this down to where it's needed
	spinner spinner.Model
	// boundsOverlay is the height-bounds selection dialog
	boundsOverlay *overlay.BoundsSelectorOverlay

	// -- Layout --

	width, height     int
	constraints       layout.Constraints
	degradation       layout.Degradation
	lastHistoryHeight int
}

func newHome(ctx context.Context, appConfig *config.Config) *home {
	appState := config.LoadState()

	h := &home{
		ctx:       ctx,
		spinner:   spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		menu:      ui.NewMenu(),
		errBox:    ui.NewErrBox(),
		appConfig: appConfig,
		appState:  appState,
		state:     stateComposing,
	}
	h.history = ui.NewHistory(&h.spinner)

	if appConfig.MinRows > 0 {
		h.userMin = layout.Rows(appConfig.MinRows)
	}
	if appConfig.MaxRows > 0 {
		h.userMax = layout.Rows(appConfig.MaxRows)
	}

	h.composer = ui.New()
	h.composer.ResizeDuration = time.Duration(appConfig.ResizeDurationMs) * time.Millisecond
	h.composer.SetPlaceholder(appConfig.Placeholder)
	h.composer.SetShowsScrollIndicator(appConfig.ShowScrollIndicator)
	h.composer.WillChangeHeight = func(target int) {
		log.ResizeTrace("composer will grow/shrink to %d", target)
	}
	h.composer.DidChangeHeight = func(target int) {
		log.ResizeTrace("composer settled at %d", target)
		h.syncHistoryHeight()
	}

	// Enter sends; newline moves to alt+enter / ctrl+j.
	h.composer.Input().KeyMap.InsertNewline = keys.GlobalkeyBindings[keys.KeyNewline]

	// Restore the unsent draft and sent history from the previous run.
	h.composer.SetValue(appState.GetDraft())
	h.lastDraft = appState.GetDraft()

	var msgs []ui.Message
	if err := json.Unmarshal(appState.GetHistory(), &msgs); err != nil {
		log.ErrorLog.Printf("failed to restore history: %v", err)
	} else if len(msgs) > 0 {
		h.history.SetItems(msgs)
	}

	return h
}

// updateHandleWindowSizeEvent sets the sizes of the components.
// The components will try to render inside their bounds.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) tea.Cmd {
	m.width, m.height = msg.Width, msg.Height
	m.constraints = layout.ComputeConstraints(msg.Width, msg.Height)
	m.degradation = layout.ComputeDegradation(m.constraints)

	m.menu.SetSize(msg.Width, m.constraints.MenuHeight)
	m.errBox.SetSize(m.constraints.ErrBoxWidth, layout.ErrBoxHeight)
	m.history.SetShowTimestamps(!m.degradation.HideTimestamps)
	m.composer.SetShowsScrollIndicator(
		m.appConfig.ShowScrollIndicator && !m.degradation.HideScrollIndicator)

	min, max := m.effectiveBounds()
	boundsCmd := m.composer.SetBounds(min, max)
	widthCmd := m.composer.SetWidth(m.constraints.ComposerWidth)

	m.lastHistoryHeight = -1
	m.syncHistoryHeight()

	return tea.Batch(boundsCmd, widthCmd)
}

// effectiveBounds caps the configured max bound at the layout's ceiling so a
// grown composer always leaves room for the history pane.
func (m *home) effectiveBounds() (layout.Bound, layout.Bound) {
	min, max := m.userMin, m.userMax
	ceiling := m.constraints.ComposerMaxRows
	if ceiling > 0 {
		switch max.Kind {
		case layout.BoundNone:
			max = layout.Rows(ceiling)
		case layout.BoundRows:
			if max.Value > ceiling {
				max = layout.Rows(ceiling)
			}
		}
	}
	return min, max
}

// syncHistoryHeight gives the history pane whatever the composer's rendered
// height leaves over. Called on layout changes and on every transition frame.
func (m *home) syncHistoryHeight() {
	h := m.constraints.HistoryHeight(m.composer.DisplayHeight())
	if h != m.lastHistoryHeight {
		m.history.SetSize(m.constraints.HistoryWidth, h)
		m.lastHistoryHeight = h
	}
}

func (m *home) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.composer.Focus())
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if inspect.IsEnabled() {
		defer m.writeInspectSnapshot()
	}

	switch msg := msg.(type) {
	case hideErrMsg:
		m.errBox.Clear()
		return m, nil
	case keyupMsg:
		m.menu.ClearKeydown()
		return m, nil
	case saveDebounceMsg:
		m.pendingSave = false
		// Perform the save asynchronously to avoid blocking the UI
		draft := m.composer.Value()
		items := m.history.Items()
		go func() {
			if err := m.persistState(draft, items); err != nil {
				log.ErrorLog.Printf("failed to save state: %v", err)
			}
		}()
		return m, nil
	case sendDoneMsg:
		m.history.SetDelivered()
		return m, m.requestSave()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			if msg.Button == tea.MouseButtonWheelDown || msg.Button == tea.MouseButtonWheelUp {
				// The composer claims the wheel while it is pinned at max;
				// otherwise the history scrolls.
				if m.composer.AtMaxHeight() && m.composer.ScrollEnabled() {
					m.composer.Update(msg)
				} else if msg.Button == tea.MouseButtonWheelUp {
					m.history.ScrollUp()
				} else {
					m.history.ScrollDown()
				}
			}
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		return m, m.updateHandleWindowSizeEvent(msg)
	case error:
		return m, m.handleError(msg)
	}

	// Everything else (transition frames, cursor blinks, paste results) is
	// the composer's business.
	cmd := m.composer.Update(msg)
	m.syncHistoryHeight()
	return m, cmd
}

// handleMenuHighlighting returns a command to highlight the pressed key in the menu.
// This is purely visual - it briefly underlines the corresponding menu item.
func (m *home) handleMenuHighlighting(msg tea.KeyMsg) tea.Cmd {
	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return nil
	}
	return m.keydownCallback(name)
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Get the menu highlight command - this is batched with the action command later
	highlightCmd := m.handleMenuHighlighting(msg)

	if m.state == stateBounds {
		return m.handleBoundsState(msg)
	}

	// Handle quit first so it works regardless of focus.
	if msg.String() == "ctrl+c" {
		return m.handleQuit()
	}

	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		// Plain typing goes to the composer.
		return m, tea.Batch(highlightCmd, m.updateComposer(msg))
	}

	switch name {
	case keys.KeySend:
		if !m.composer.Focused() {
			return m, nil
		}
		text := strings.TrimSpace(m.composer.Value())
		if text == "" {
			return m, m.handleError(fmt.Errorf("nothing to send"))
		}
		m.history.Append(ui.Message{Text: text, SentAt: time.Now(), Pending: true})
		resetCmd := m.composer.Reset()
		m.syncHistoryHeight()
		return m, tea.Batch(highlightCmd, resetCmd, m.sendDoneCmd(), m.requestSave())
	case keys.KeyNewline:
		// The composer owns this binding; forward the key itself.
		return m, tea.Batch(highlightCmd, m.updateComposer(msg))
	case keys.KeyBounds:
		m.state = stateBounds
		m.boundsOverlay = overlay.NewBoundsSelectorOverlay(m.appConfig.BoundsPreset)
		m.menu.SetState(ui.StateOverlay)
		return m, highlightCmd
	case keys.KeyFiller:
		if !m.composer.Focused() {
			return m, nil
		}
		filler := words.Paragraph(2)
		if m.composer.Length() > 0 {
			filler = " " + filler
		}
		cmd := m.composer.InsertString(filler)
		m.syncHistoryHeight()
		return m, tea.Batch(highlightCmd, cmd, m.requestSave())
	case keys.KeyCopy:
		if err := clipboard.WriteAll(m.composer.Value()); err != nil {
			return m, m.handleError(fmt.Errorf("failed to copy draft: %w", err))
		}
		// The error box doubles as a notice line.
		return m, tea.Batch(highlightCmd, m.handleError(fmt.Errorf("draft copied to clipboard")))
	case keys.KeyClear:
		cmd := m.composer.Reset()
		m.syncHistoryHeight()
		return m, tea.Batch(highlightCmd, cmd, m.requestSave())
	case keys.KeyTab:
		if m.composer.Focused() {
			m.composer.Blur()
			return m, highlightCmd
		}
		return m, tea.Batch(highlightCmd, m.composer.Focus())
	case keys.KeyScrollUp:
		m.history.ScrollUp()
		return m, highlightCmd
	case keys.KeyScrollDown:
		m.history.ScrollDown()
		return m, highlightCmd
	case keys.KeyEsc:
		if !m.composer.Focused() {
			return m, tea.Batch(highlightCmd, m.composer.Focus())
		}
		return m, highlightCmd
	case keys.KeyQuit:
		return m.handleQuit()
	default:
		return m, tea.Batch(highlightCmd, m.updateComposer(msg))
	}
}

// handleBoundsState routes keys to the bounds selector overlay and applies
// the chosen preset when it closes.
func (m *home) handleBoundsState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.boundsOverlay.HandleKeyPress(msg) {
		return m, nil
	}

	var cmd tea.Cmd
	if sel := m.boundsOverlay.GetSelected(); sel != nil {
		m.userMin, m.userMax = sel.Min, sel.Max
		m.appConfig.BoundsPreset = sel.Name
		if err := config.SaveConfig(m.appConfig); err != nil {
			log.WarningLog.Printf("failed to save config: %v", err)
		}
		min, max := m.effectiveBounds()
		cmd = m.composer.SetBounds(min, max)
		m.syncHistoryHeight()
	}

	m.boundsOverlay = nil
	m.state = stateComposing
	m.menu.SetState(ui.StateComposing)
	return m, cmd
}

// updateComposer forwards a message to the composer and schedules a draft
// save when the text changed.
func (m *home) updateComposer(msg tea.Msg) tea.Cmd {
	cmd := m.composer.Update(msg)
	m.syncHistoryHeight()
	if m.composer.Value() != m.lastDraft {
		m.lastDraft = m.composer.Value()
		return tea.Batch(cmd, m.requestSave())
	}
	return cmd
}

func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	if err := m.persistState(m.composer.Value(), m.history.Items()); err != nil {
		log.ErrorLog.Printf("failed to save state on quit: %v", err)
	}
	return m, tea.Quit
}

// persistState writes the draft and history to the state file. If another
// process wrote the file since we loaded it, its view is picked up first so
// the save does not clobber it.
func (m *home) persistState(draft string, items []ui.Message) error {
	if config.NeedsRefresh(m.appState.GetLastModTime()) {
		if _, err := m.appState.RefreshFromDisk(); err != nil {
			log.WarningLog.Printf("failed to refresh state before save: %v", err)
		}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	m.appState.Draft = draft
	return m.appState.SaveHistory(data)
}

type keyupMsg struct{}

// keydownCallback clears the menu option highlighting after 500ms.
func (m *home) keydownCallback(name keys.KeyName) tea.Cmd {
	m.menu.Keydown(name)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(500 * time.Millisecond):
		}

		return keyupMsg{}
	}
}

// hideErrMsg implements tea.Msg and clears the error text from the screen.
type hideErrMsg struct{}

// sendDoneMsg marks the most recent pending message as delivered.
type sendDoneMsg struct{}

// saveDebounceMsg is sent after a debounce delay to trigger a save
type saveDebounceMsg struct{}

// saveDebounceDelay is how long to wait before saving after edits
const saveDebounceDelay = 500 * time.Millisecond

// sendSettleDelay is how long a sent message shows its spinner. There is no
// real transport behind the demo; this keeps the pending state visible.
const sendSettleDelay = 600 * time.Millisecond

func (m *home) sendDoneCmd() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(sendSettleDelay):
		}

		return sendDoneMsg{}
	}
}

// handleError handles all errors which get bubbled up to the app. sets the error message. We return a callback tea.Cmd that returns a hideErrMsg message
// which clears the error message after 3 seconds.
func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.errBox.SetError(err)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(3 * time.Second):
		}

		return hideErrMsg{}
	}
}

// requestSave schedules a debounced save operation.
// If a save is already pending, this does nothing (the pending save will include all changes).
func (m *home) requestSave() tea.Cmd {
	if m.pendingSave {
		return nil // Already have a pending save
	}
	m.pendingSave = true
	return func() tea.Msg {
		time.Sleep(saveDebounceDelay)
		return saveDebounceMsg{}
	}
}

// writeInspectSnapshot dumps the current UI state for external tooling.
func (m *home) writeInspectSnapshot() {
	stateName := "composing"
	overlayType := ""
	if m.state == stateBounds {
		stateName = "overlay"
		overlayType = "bounds_selector"
	}

	snap := inspect.NewSnapshot().
		WithTerminal(m.width, m.height).
		WithLayout(m.constraints, m.degradation, m.composer.DisplayHeight()).
		WithStyles().
		WithComponents(
			inspect.NewNode("App").
				WithBounds(0, 0, m.width, m.height).
				AddChild(m.history.InspectNode()).
				AddChild(m.composer.InspectNode()).
				AddChild(m.errBox.InspectNode()))
	snap.AppState = inspect.AppStateInfo{
		State:        stateName,
		HasOverlay:   m.state == stateBounds,
		OverlayType:  overlayType,
		MessageCount: m.history.NumMessages(),
		DraftLength:  m.composer.Length(),
	}

	if err := inspect.WriteSnapshot(snap); err != nil {
		log.WarningLog.Printf("failed to write inspect snapshot: %v", err)
	}
}

func (m *home) View() string {
	frameStart := time.Now()
	defer func() { log.GetProfiler().RecordFrame(time.Since(frameStart)) }()

	if m.degradation.ShowMinWarning {
		warning := fmt.Sprintf("Terminal too small\nNeed at least %dx%d",
			layout.MinWidth, layout.MinHeight)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			ui.TextStyles.Error.Render(warning))
	}

	mainView := lipgloss.JoinVertical(
		lipgloss.Center,
		m.history.String(),
		m.composer.View(),
		m.menu.String(),
		m.errBox.String(),
	)

	if m.state == stateBounds {
		if m.boundsOverlay == nil {
			log.ErrorLog.Printf("bounds overlay is nil")
			return mainView
		}
		fg := m.boundsOverlay.Render()
		x := (m.width - lipgloss.Width(fg)) / 2
		y := (m.height - lipgloss.Height(fg)) / 2
		return overlay.PlaceOverlay(x, y, fg, mainView)
	}

	return mainView
}
