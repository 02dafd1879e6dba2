package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/idleguard/internal/app"
)

// intervalDigits bounds the interval field; more than a day of seconds is
// never useful.
const intervalDigits = 6

// Options preset the window.
type Options struct {
	IntervalSeconds int
	AutoStart       bool
}

// Model holds the UI state. Session state lives in the controller.
type Model struct {
	ctrl     *app.Controller
	keys     KeyMap
	help     help.Model
	interval textinput.Model

	focus    focusItem
	started  bool // at least one start happened
	modal    *dialog
	width    int
	quitting bool
}

// dialog is a blocking message box.
type dialog struct {
	title string
	body  string
}

// New returns the initial model.
func New(ctrl *app.Controller, opts Options) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = intervalDigits
	ti.Width = intervalDigits + 1
	ti.Placeholder = "seconds"
	if opts.IntervalSeconds > 0 {
		ti.SetValue(strconv.Itoa(opts.IntervalSeconds))
	}
	ti.Focus()

	m := Model{
		ctrl:     ctrl,
		keys:     DefaultKeys(),
		help:     NewHelpModel(),
		interval: ti,
		focus:    focusInterval,
	}
	if opts.AutoStart {
		m = m.toggle()
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return Update(msg, m)
}

// View implements tea.Model
func (m Model) View() string {
	return View(m)
}

// IntervalText returns the raw interval field.
func (m Model) IntervalText() string {
	return m.interval.Value()
}
