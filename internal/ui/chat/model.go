// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/jeranaias/planchat/internal/config"
	"github.com/jeranaias/planchat/internal/model"
	"github.com/jeranaias/planchat/internal/session"
	"github.com/jeranaias/planchat/internal/ui/components"
	"github.com/jeranaias/planchat/internal/ui/styles"
)

// EmptyHint is shown in the timeline before the first message.
const EmptyHint = "No plans yet. Type below and press Enter."

// wheelLines is how far one mouse wheel notch scrolls.
const wheelLines = 3

// =============================================================================
// MODEL
// =============================================================================

// Options configures a chat Model.
type Options struct {
	// Session receives every input event (required)
	Session *session.Session

	// Config supplies title, placeholder and UI switches (default: config.Default())
	Config *config.Config

	// Theme styles the view (default: built from Config.UI.Theme)
	Theme *styles.Theme

	// Reloads delivers config changes, see WatchConfig (optional)
	Reloads <-chan ConfigReloadedMsg

	// Logger receives UI events (default: disabled)
	Logger *zerolog.Logger
}

// Model is the Bubble Tea model of the chat screen: header, message
// timeline, input bar and help line. All conversation state lives in the
// session; the model only mirrors the draft into the text field and renders.
type Model struct {
	session *session.Session
	cfg     *config.Config
	theme   *styles.Theme

	// Dimensions
	width  int
	height int
	ready  bool // set by the first WindowSizeMsg

	// UI Components
	header   *components.Header
	input    *components.InputBar
	viewport viewport.Model
	help     help.Model

	keyMap   KeyMap
	showHelp bool // full help instead of the short line

	// Scroll-to-latest
	scroll        scrollAnimator
	renderedCount int
	scheduledSeq  uint64

	// Transient notice under the input bar
	toast       *components.Toast
	lastToastID int

	reloads <-chan ConfigReloadedMsg
	logger  zerolog.Logger
}

// New creates a chat model bound to opts.Session.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	theme := opts.Theme
	if theme == nil {
		mode, _ := styles.ParseMode(cfg.UI.Theme)
		theme = styles.NewTheme(mode)
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	breakMods := opts.Session.BreakModifiers()
	keyMap := DefaultKeyMap(breakMods)

	input := components.NewInputBar(cfg.UI.Placeholder, NewlineKeys(breakMods), theme)
	input.Focus()

	h := help.New()
	h.Styles.ShortKey = theme.ShortcutKey
	h.Styles.ShortDesc = theme.ShortcutDesc
	h.Styles.FullKey = theme.ShortcutKey
	h.Styles.FullDesc = theme.ShortcutDesc

	m := Model{
		session:  opts.Session,
		cfg:      cfg,
		theme:    theme,
		header:   components.NewHeader(cfg.UI.Title, theme),
		input:    input,
		viewport: viewport.New(0, 0),
		help:     h,
		keyMap:   keyMap,
		scroll:   newScrollAnimator(styles.ScrollSpring),
		reloads:  opts.Reloads,
		logger:   logger,
	}
	m.viewport.MouseWheelEnabled = false
	m.input.SetValue(m.session.DraftText())
	m.updateViewport()
	return m
}

// Session returns the session the model drives.
func (m Model) Session() *session.Session {
	return m.session
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the cursor blink and listens for config reloads.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, waitForReload(m.reloads))
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case scrollToLatestMsg:
		return m.handleScrollToLatest(msg)

	case scrollFrameMsg:
		cmd := m.scroll.frame(msg, &m.viewport)
		return m, cmd

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)

	case components.ToastExpiredMsg:
		if m.toast != nil && m.toast.ID == msg.ID {
			m.toast = nil
			m.layout()
		}
		return m, nil
	}

	// Cursor blink and other text field internals
	cmd := m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// MESSAGE HANDLERS
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	wasAtBottom := !m.ready || m.viewport.AtBottom()

	m.width = msg.Width
	m.height = msg.Height
	m.ready = true

	m.header.SetWidth(m.width)
	m.input.SetWidth(m.width)
	m.help.Width = m.width
	m.viewport.Width = m.width
	m.layout()
	m.updateViewport()

	if wasAtBottom {
		m.viewport.GotoBottom()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Send):
		return m.activateSend()

	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = !m.showHelp
		m.layout()
		return m, nil

	case key.Matches(msg, m.keyMap.PageUp):
		m.scroll.stop()
		m.viewport.ViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.scroll.stop()
		m.viewport.ViewDown()
		return m, nil

	case key.Matches(msg, m.keyMap.Top):
		m.scroll.stop()
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keyMap.Bottom):
		m.scroll.stop()
		m.viewport.GotoBottom()
		return m, nil
	}

	if ev, ok := keyEvent(msg); ok {
		if m.session.OnKeyDown(ev) {
			// Commit key: the text field never sees it.
			m.input.SetValue(m.session.DraftText())
			cmd := m.afterChange()
			return m, cmd
		}
		// A break modifier is held; the text field inserts the line break.
	}

	inputCmd := m.input.Update(msg)
	m.session.OnTextChange(m.input.Value())
	changeCmd := m.afterChange()
	return m, tea.Batch(inputCmd, changeCmd)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.ready {
		return m, nil
	}

	switch msg.Type {
	case tea.MouseWheelUp:
		m.scroll.stop()
		m.viewport.LineUp(wheelLines)
		return m, nil

	case tea.MouseWheelDown:
		m.scroll.stop()
		m.viewport.LineDown(wheelLines)
		return m, nil

	case tea.MouseLeft:
		if m.input.SendHit(msg.X, msg.Y-m.inputTop()) {
			return m.activateSend()
		}
	}
	return m, nil
}

// activateSend handles the send button and its shortcut.
func (m Model) activateSend() (tea.Model, tea.Cmd) {
	m.session.OnSendActivated()
	m.input.SetValue(m.session.DraftText())
	cmd := m.afterChange()
	return m, cmd
}

// handleScrollToLatest flushes the pending scroll now that the frame with
// the new message has been drawn.
func (m Model) handleScrollToLatest(msg scrollToLatestMsg) (tea.Model, tea.Cmd) {
	anchor := &viewportAnchor{
		vp:       &m.viewport,
		mounted:  m.ready,
		animator: &m.scroll,
	}
	if m.session.FlushScroll(anchor) {
		m.logger.Debug().Uint64("scroll_seq", msg.seq).Msg("Scrolled to latest")
	}
	return m, anchor.cmd
}

func (m Model) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	next := waitForReload(m.reloads)
	if msg.Err != nil {
		m.logger.Warn().Err(msg.Err).Msg("Config reload failed, keeping current settings")
		toastCmd := m.showToast(components.NewErrorToast(m.nextToastID(), "Config not reloaded: "+msg.Err.Error()))
		return m, tea.Batch(next, toastCmd)
	}

	cmds := []tea.Cmd{next}
	cfg := msg.Config

	if cfg.UI.Theme != m.cfg.UI.Theme {
		mode, _ := styles.ParseMode(cfg.UI.Theme)
		m.theme = styles.NewTheme(mode)
		m.header.SetTheme(m.theme)
		m.input.SetTheme(m.theme)
		m.help.Styles.ShortKey = m.theme.ShortcutKey
		m.help.Styles.ShortDesc = m.theme.ShortcutDesc
		m.help.Styles.FullKey = m.theme.ShortcutKey
		m.help.Styles.FullDesc = m.theme.ShortcutDesc
	}
	m.header.SetTitle(cfg.UI.Title)
	m.input.SetPlaceholder(cfg.UI.Placeholder)
	m.session.SetSmoothScroll(cfg.UI.SmoothScroll)

	if f, err := cfg.Formatter(); err != nil {
		m.logger.Warn().Err(err).Msg("Ignoring invalid time settings")
	} else {
		m.session.SetFormatter(f)
	}

	m.session.SetBreakModifiers(session.ParseModifiers(cfg.Keys.NewlineModifiers))
	breakMods := m.session.BreakModifiers()
	m.keyMap = DefaultKeyMap(breakMods)
	m.input.SetNewlineKeys(NewlineKeys(breakMods))

	if cfg.UI.Mouse != m.cfg.UI.Mouse {
		if cfg.UI.Mouse {
			cmds = append(cmds, tea.EnableMouseCellMotion)
		} else {
			cmds = append(cmds, tea.DisableMouse)
		}
	}

	m.cfg = cfg
	cmds = append(cmds, m.showToast(components.NewStatusToast(m.nextToastID(), "Config reloaded")))
	m.layout()
	m.updateViewport()
	m.logger.Info().Msg("Config reloaded")
	return m, tea.Batch(cmds...)
}

// showToast replaces the current toast and schedules its dismissal.
func (m *Model) showToast(t components.Toast) tea.Cmd {
	m.toast = &t
	m.layout()
	return t.ExpireCmd()
}

func (m *Model) nextToastID() int {
	m.lastToastID++
	return m.lastToastID
}

// =============================================================================
// LAYOUT AND SYNC
// =============================================================================

// afterChange refreshes everything derived from the session after an input
// event and schedules a scroll flush when an append requested one.
func (m *Model) afterChange() tea.Cmd {
	m.input.SetSendEnabled(!model.IsBlank(m.session.DraftText()))
	m.layout()

	if n := m.session.MessageCount(); n != m.renderedCount {
		m.updateViewport()
	}

	req, ok := m.session.PendingScroll()
	if !ok || req.Seq == m.scheduledSeq {
		return nil
	}
	m.scheduledSeq = req.Seq
	return scrollToLatestCmd(req.Seq)
}

// layout splits the height between header, timeline, input bar and help.
func (m *Model) layout() {
	if !m.ready {
		return
	}
	wasAtBottom := m.viewport.AtBottom()

	h := m.height - components.HeaderHeight - m.input.Height() - lipgloss.Height(m.helpView())
	if m.toast != nil {
		h -= components.ToastHeight
	}
	if h < 1 {
		h = 1
	}
	m.viewport.Height = h

	if wasAtBottom {
		m.viewport.GotoBottom()
	}
}

// inputTop is the screen row where the input bar begins.
func (m Model) inputTop() int {
	return components.HeaderHeight + m.viewport.Height
}

func (m *Model) updateViewport() {
	messages := m.session.Messages()
	content := components.RenderTimeline(messages, m.viewport.Width, EmptyHint, m.theme)
	m.viewport.SetContent(content)
	m.renderedCount = len(messages)
}

// keyEvent converts a commit-key press into a session event. Terminals
// report alt+enter with Alt set and ctrl+enter as ctrl+j.
func keyEvent(msg tea.KeyMsg) (session.KeyEvent, bool) {
	var mods session.Modifiers
	if msg.Alt {
		mods |= session.ModAlt
	}
	switch msg.Type {
	case tea.KeyEnter:
		return session.KeyEvent{Key: session.KeyEnter, Modifiers: mods}, true
	case tea.KeyCtrlJ:
		return session.KeyEvent{Key: session.KeyEnter, Modifiers: mods | session.ModCtrl}, true
	}
	return session.KeyEvent{}, false
}

// =============================================================================
// CONFIG RELOAD
// =============================================================================

// WatchConfig watches path and delivers every change as a ConfigReloadedMsg.
// A non-nil adjust runs on each reloaded config first, so settings that
// override the file survive a reload. The channel closes when ctx is done.
func WatchConfig(ctx context.Context, path string, adjust func(*config.Config) error, logger zerolog.Logger) <-chan ConfigReloadedMsg {
	ch := make(chan ConfigReloadedMsg, 1)
	go func() {
		defer close(ch)
		err := config.Watch(ctx, path, func(cfg *config.Config, err error) {
			if err == nil && adjust != nil {
				if adjustErr := adjust(cfg); adjustErr != nil {
					cfg, err = nil, adjustErr
				}
			}
			select {
			case ch <- ConfigReloadedMsg{Config: cfg, Err: err}:
			case <-ctx.Done():
			}
		})
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("Config watcher stopped")
		}
	}()
	return ch
}

// waitForReload blocks a command goroutine until the next reload arrives.
func waitForReload(ch <-chan ConfigReloadedMsg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}
