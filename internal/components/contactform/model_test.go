package contactform

import (
	"context"
	"errors"
	"testing"

	"github.com/avitaltamir/termfolio/internal/contact"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	forms []contact.Form
	err   error
}

func (f *fakeSender) Send(_ context.Context, form contact.Form) error {
	f.forms = append(f.forms, form)
	return f.err
}

func typeText(m Model, text string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func press(m Model, k tea.KeyType) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: k})
}

// collect runs cmd and any batched commands, returning every message.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findSent(msgs []tea.Msg) (SentMsg, bool) {
	for _, msg := range msgs {
		if sent, ok := msg.(SentMsg); ok {
			return sent, true
		}
	}
	return SentMsg{}, false
}

func newFocused(sender contact.Sender) Model {
	m := New(sender, 0).SetSize(50, 30)
	m, _ = m.Focus()
	return m
}

func fillValid(m Model) Model {
	m = typeText(m, "Sam")
	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "sam@example.com")
	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "Hello there")
	return m
}

func TestTyping(t *testing.T) {
	m := fillValid(newFocused(nil))

	assert.Equal(t, contact.Form{Name: "Sam", Email: "sam@example.com", Message: "Hello there"}, m.Form())
	assert.True(t, m.Editing())
}

func TestBlurredIgnoresKeys(t *testing.T) {
	m := New(nil, 0).SetSize(50, 30)
	m = typeText(m, "Sam")
	assert.Empty(t, m.Form().Name)
	assert.False(t, m.Editing())
}

func TestNavigation(t *testing.T) {
	m := newFocused(nil)

	t.Run("enter advances from single-line fields", func(t *testing.T) {
		m, _ := press(m, tea.KeyEnter)
		assert.Equal(t, fieldEmail, m.focusIndex)
	})

	t.Run("shift+tab wraps to submit", func(t *testing.T) {
		m, _ := press(m, tea.KeyShiftTab)
		assert.Equal(t, fieldSubmit, m.focusIndex)
		assert.False(t, m.Editing())
	})

	t.Run("enter in the message adds a line", func(t *testing.T) {
		m, _ := press(m, tea.KeyTab)
		m, _ = press(m, tea.KeyTab)
		m = typeText(m, "a")
		m, _ = press(m, tea.KeyEnter)
		m = typeText(m, "b")
		assert.Equal(t, fieldMessage, m.focusIndex)
		assert.Equal(t, "a\nb", m.Form().Message)
	})
}

func TestSubmitValidation(t *testing.T) {
	sender := &fakeSender{}
	m := newFocused(sender)

	m, _ = press(m, tea.KeyCtrlS)
	assert.Len(t, m.Errors(), 3)
	assert.False(t, m.Sending())
	assert.Equal(t, fieldName, m.focusIndex)
	assert.Contains(t, m.View(), "Name is required")

	t.Run("editing a field clears only its error", func(t *testing.T) {
		m := typeText(m, "S")
		assert.NotContains(t, m.Errors(), contact.FieldName)
		assert.Contains(t, m.Errors(), contact.FieldEmail)
		assert.Contains(t, m.Errors(), contact.FieldMessage)
	})

	t.Run("focus jumps to the first invalid field", func(t *testing.T) {
		m := typeText(m, "Sam")
		m, _ = press(m, tea.KeyCtrlS)
		assert.Equal(t, fieldEmail, m.focusIndex)
	})

	assert.Empty(t, sender.forms)
}

func TestSubmitSuccess(t *testing.T) {
	sender := &fakeSender{}
	m := fillValid(newFocused(sender))

	m, cmd := press(m, tea.KeyCtrlS)
	require.NotNil(t, cmd)
	assert.True(t, m.Sending())
	assert.Contains(t, m.View(), "Sending...")

	// A second submit while sending is ignored
	_, again := press(m, tea.KeyCtrlS)
	assert.Nil(t, again)

	sent, ok := findSent(collect(cmd))
	require.True(t, ok)
	assert.NoError(t, sent.Err)
	require.Len(t, sender.forms, 1)
	assert.Equal(t, "Sam", sender.forms[0].Name)

	m, _ = m.Update(sent)
	assert.False(t, m.Sending())
	assert.Equal(t, contact.Form{}, m.Form(), "form resets after success")
	result, failed := m.Result()
	assert.Equal(t, SuccessText, result)
	assert.False(t, failed)
	assert.Equal(t, fieldName, m.focusIndex)
}

func TestSubmitFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("boom")}
	m := fillValid(newFocused(sender))

	m, cmd := press(m, tea.KeyCtrlS)
	sent, ok := findSent(collect(cmd))
	require.True(t, ok)

	m, _ = m.Update(sent)
	result, failed := m.Result()
	assert.Equal(t, FailureText, result)
	assert.True(t, failed)
	assert.Equal(t, "Sam", m.Form().Name, "input is kept for a retry")
	assert.Contains(t, m.View(), FailureText)
}

func TestSubmitWithEnterOnButton(t *testing.T) {
	sender := &fakeSender{}
	m := fillValid(newFocused(sender))
	m, _ = press(m, tea.KeyTab)
	assert.Equal(t, fieldSubmit, m.focusIndex)

	m, cmd := press(m, tea.KeyEnter)
	assert.True(t, m.Sending())
	_, ok := findSent(collect(cmd))
	assert.True(t, ok)
}

func TestDefaultSenderIsNotConfigured(t *testing.T) {
	m := fillValid(newFocused(nil))
	_, cmd := press(m, tea.KeyCtrlS)

	sent, ok := findSent(collect(cmd))
	require.True(t, ok)
	assert.ErrorIs(t, sent.Err, contact.ErrNotConfigured)
}
