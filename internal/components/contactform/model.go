// Package contactform is the interactive contact form panel.
package contactform

import (
	"context"
	"maps"
	"strings"
	"time"

	"github.com/avitaltamir/termfolio/internal/components"
	"github.com/avitaltamir/termfolio/internal/contact"
	"github.com/avitaltamir/termfolio/internal/theme"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Result messages shown under the submit button
const (
	SuccessText = "Thanks! Your message is on its way."
	FailureText = "Sending failed. Please try again later."
)

// DefaultTimeout bounds a single delivery attempt.
const DefaultTimeout = 15 * time.Second

// Focusable elements, in tab order
const (
	fieldName = iota
	fieldEmail
	fieldMessage
	fieldSubmit
	fieldCount
)

var fieldKeys = [...]string{contact.FieldName, contact.FieldEmail, contact.FieldMessage}

// SentMsg reports the outcome of a delivery attempt.
type SentMsg struct {
	Err error
}

// KeyMap holds the form bindings.
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
}

// DefaultKeyMap returns the default form bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "send"),
		),
	}
}

// Model is the contact form.
type Model struct {
	components.Base

	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	spinner spinner.Model

	focusIndex int
	errors     contact.Errors
	sending    bool
	result     string
	failed     bool

	sender  contact.Sender
	timeout time.Duration
	styles  theme.Styles
	keys    KeyMap
}

// New creates a form that delivers through sender.
func New(sender contact.Sender, timeout time.Duration) Model {
	if sender == nil {
		sender = contact.NoopSender{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	name := textinput.New()
	name.Prompt = ""
	name.Placeholder = "What's your name?"
	name.CharLimit = 120

	email := textinput.New()
	email.Prompt = ""
	email.Placeholder = "What's your email?"
	email.CharLimit = 254

	message := textarea.New()
	message.Placeholder = "What do you want to say?"
	message.ShowLineNumbers = false
	message.Prompt = ""
	message.CharLimit = 4000

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return Model{
		name:    name,
		email:   email,
		message: message,
		spinner: sp,
		errors:  contact.Errors{},
		sender:  sender,
		timeout: timeout,
		styles:  theme.NewStyles(true),
		keys:    DefaultKeyMap(),
	}
}

// Form returns the current field values.
func (m Model) Form() contact.Form {
	return contact.Form{
		Name:    m.name.Value(),
		Email:   m.email.Value(),
		Message: m.message.Value(),
	}
}

// Errors returns the current validation errors.
func (m Model) Errors() contact.Errors {
	return m.errors
}

// Sending reports whether a delivery is in flight.
func (m Model) Sending() bool {
	return m.sending
}

// Result returns the last delivery outcome text and whether it failed.
func (m Model) Result() (string, bool) {
	return m.result, m.failed
}

// Editing reports whether a text field has focus, so plain keys should be
// treated as typing.
func (m Model) Editing() bool {
	return m.Focused() && m.focusIndex != fieldSubmit
}

// SetStyles applies a theme.
func (m Model) SetStyles(s theme.Styles) Model {
	m.styles = s
	m.spinner.Style = s.Spinner
	return m
}

// SetSize sets the panel's inner size.
func (m Model) SetSize(width, height int) Model {
	m.Base.SetSize(width, height)
	inner := max(width-4, 10)
	m.name.Width = inner - 1
	m.email.Width = inner - 1
	m.message.SetWidth(inner)
	m.message.SetHeight(max(min(height-16, 8), 3))
	return m
}

// Focus gives the form focus, restoring the last focused field.
func (m Model) Focus() (Model, tea.Cmd) {
	m.Base.Focus()
	return m.focusField(m.focusIndex)
}

// Blur removes focus from the form and its fields.
func (m Model) Blur() Model {
	m.Base.Blur()
	m.name.Blur()
	m.email.Blur()
	m.message.Blur()
	return m
}

func (m Model) focusField(i int) (Model, tea.Cmd) {
	m.focusIndex = (i + fieldCount) % fieldCount
	m.name.Blur()
	m.email.Blur()
	m.message.Blur()

	if !m.Focused() {
		return m, nil
	}
	switch m.focusIndex {
	case fieldName:
		return m, m.name.Focus()
	case fieldEmail:
		return m, m.email.Focus()
	case fieldMessage:
		return m, m.message.Focus()
	}
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles typing, field navigation, submission and delivery results.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SentMsg:
		m.sending = false
		if msg.Err != nil {
			m.result = FailureText
			m.failed = true
			return m, nil
		}
		m.result = SuccessText
		m.failed = false
		m.name.Reset()
		m.email.Reset()
		m.message.Reset()
		return m.focusField(fieldName)

	case spinner.TickMsg:
		if !m.sending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if !m.Focused() {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Next):
			return m.focusField(m.focusIndex + 1)
		case key.Matches(msg, m.keys.Prev):
			return m.focusField(m.focusIndex - 1)
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case msg.Type == tea.KeyEnter && m.focusIndex == fieldSubmit:
			return m.submit()
		case msg.Type == tea.KeyEnter && m.focusIndex != fieldMessage:
			return m.focusField(m.focusIndex + 1)
		}
		if m.sending {
			return m, nil
		}
		return m.updateField(msg)
	}

	if m.Focused() {
		return m.updateField(msg)
	}
	return m, nil
}

// updateField forwards msg to the focused field and clears its error once
// the value changes.
func (m Model) updateField(msg tea.Msg) (Model, tea.Cmd) {
	before := m.Form()

	var cmd tea.Cmd
	switch m.focusIndex {
	case fieldName:
		m.name, cmd = m.name.Update(msg)
	case fieldEmail:
		m.email, cmd = m.email.Update(msg)
	case fieldMessage:
		m.message, cmd = m.message.Update(msg)
	default:
		return m, nil
	}

	if m.Form() != before {
		if _, bad := m.errors[fieldKeys[m.focusIndex]]; bad {
			m.errors = maps.Clone(m.errors)
			delete(m.errors, fieldKeys[m.focusIndex])
		}
		m.result = ""
	}
	return m, cmd
}

func (m Model) submit() (Model, tea.Cmd) {
	if m.sending {
		return m, nil
	}

	f := m.Form()
	if errs := f.Validate(); len(errs) > 0 {
		m.errors = errs
		m.result = ""
		for i, k := range fieldKeys {
			if _, bad := errs[k]; bad {
				return m.focusField(i)
			}
		}
		return m, nil
	}

	m.errors = contact.Errors{}
	m.result = ""
	m.sending = true
	return m, tea.Batch(m.spinner.Tick, send(m.sender, f, m.timeout))
}

func send(sender contact.Sender, f contact.Form, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return SentMsg{Err: sender.Send(ctx, f)}
	}
}

// View renders the form.
func (m Model) View() string {
	s := m.styles
	width, _ := m.Size()
	boxWidth := max(width-2, 12)

	var b strings.Builder
	b.WriteString(s.Subheading.Render("Get in touch") + "\n")
	b.WriteString(s.Heading.Render("Contact") + "\n\n")

	fields := []struct {
		label string
		view  string
	}{
		{"Your Name", m.name.View()},
		{"Your Email", m.email.View()},
		{"Your Message", m.message.View()},
	}
	for i, f := range fields {
		msg, bad := m.errors[fieldKeys[i]]
		box := s.Input
		switch {
		case bad:
			box = s.InputError
		case m.Focused() && m.focusIndex == i:
			box = s.InputFocused
		}
		b.WriteString(s.Label.Render(f.label) + "\n")
		b.WriteString(box.Width(boxWidth).Render(f.view) + "\n")
		if bad {
			b.WriteString(s.Error.Render(msg) + "\n")
		}
	}

	button := s.Button
	if m.Focused() && m.focusIndex == fieldSubmit {
		button = s.ButtonHover
	}
	label := "Send"
	if m.sending {
		label = m.spinner.View() + " Sending..."
	}
	b.WriteString("\n" + button.Render(label))

	if m.result != "" {
		style := s.Success
		if m.failed {
			style = s.Error
		}
		b.WriteString("\n" + style.Render(m.result))
	}
	return b.String()
}
