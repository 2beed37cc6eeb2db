package ui

import (
	"reflect"
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	zone "github.com/lrstanley/bubblezone"

	"github.com/atomicstack/tmux-emoji-popup/internal/inject"
	"github.com/atomicstack/tmux-emoji-popup/internal/picker"
	"github.com/atomicstack/tmux-emoji-popup/internal/session"
	"github.com/atomicstack/tmux-emoji-popup/internal/theme"
	"github.com/atomicstack/tmux-emoji-popup/internal/ui/command"
	"github.com/atomicstack/tmux-emoji-popup/internal/ui/state"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Config holds the presentation options for the popup.
type Config struct {
	Width       int
	Height      int
	PerRow      int
	ShowFooter  bool
	InjectDelay time.Duration
}

// Model implements the Bubble Tea model for the emoji popup. It is also the
// picker's Host: the controller reports emits, scrolls and close requests
// back to it, and the model turns them into commands.
type Model struct {
	ctrl     *picker.Controller
	keymap   command.Keymap
	help     help.Model
	bus      *command.Bus
	zones    *zone.Manager
	zoneID   string
	marks    []mark
	injector inject.Injector

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	fixedPerRow int
	showFooter  bool
	injectDelay time.Duration

	errMsg    string
	emitted   string
	injected  bool
	injecting bool
	closing   bool
	quitting  bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the popup over search. ctx carries the tone and last
// selection between popups; injector receives the confirmed glyph and may be
// nil.
func NewModel(search state.SearchFunc, ctx *session.Context, injector inject.Injector, cfg Config) *Model {
	m := &Model{
		keymap:      command.DefaultKeymap(),
		help:        help.New(),
		bus:         command.New(),
		zones:       zone.New(),
		injector:    injector,
		fixedPerRow: cfg.PerRow,
		showFooter:  cfg.ShowFooter,
		injectDelay: cfg.InjectDelay,
	}
	m.zoneID = m.zones.NewPrefix()
	if cfg.Width > 0 {
		m.width = cfg.Width
		m.fixedWidth = true
	}
	if cfg.Height > 0 {
		m.height = cfg.Height
		m.fixedHeight = true
	}
	grid := state.NewGrid(m.perRow(), search)
	m.ctrl = picker.New(grid, m, ctx)
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyPressMsg{}):   m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.MouseClickMsg{}): m.handleMouseClickMsg,
		reflect.TypeOf(tea.MouseWheelMsg{}): m.handleMouseWheelMsg,
		reflect.TypeOf(injectResultMsg{}):   m.handleInjectResultMsg,
		reflect.TypeOf(closeMsg{}):          m.handleCloseMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Controller exposes the selection controller.
func (m *Model) Controller() *picker.Controller { return m.ctrl }

// Session returns the context the popup updated.
func (m *Model) Session() *session.Context { return m.ctrl.Session() }

// Emitted returns the glyph confirmed by the user, or "".
func (m *Model) Emitted() string { return m.emitted }

// Err returns the last error shown to the user.
func (m *Model) Err() string { return m.errMsg }

func (m *Model) grid() *state.Grid { return m.ctrl.Grid() }

// Emit implements picker.Host.
func (m *Model) Emit(glyph string) {
	m.emitted = glyph
}

// ScrollTo implements picker.Host.
func (m *Model) ScrollTo(section int, strategy state.ScrollStrategy) {
	if strategy == state.ScrollCenter {
		m.grid().ScrollToSection(section, m.maxGridLines(), strategy)
		return
	}
	m.grid().EnsureCursorVisible(m.maxGridLines())
}

// Close implements picker.Host.
func (m *Model) Close() {
	m.closing = true
}
