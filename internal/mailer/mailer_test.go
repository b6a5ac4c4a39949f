package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockBackend is a testify mock implementing Backend
type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) Name() string { return "mock" }

func (m *mockBackend) Send(ctx context.Context, msg *Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func validMessage() *Message {
	return &Message{
		From:    Address{Name: "Portfolio Contact", Email: "noreply@example.com"},
		To:      "owner@example.com",
		ReplyTo: "jane@example.com",
		Subject: "Portfolio Contact: Hi",
		HTML:    "<p>Hello</p>",
		Text:    "Hello",
	}
}

func TestMessageValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *Message)
		wantErr bool
	}{
		{"valid", func(m *Message) {}, false},
		{"text only", func(m *Message) { m.HTML = "" }, false},
		{"missing sender", func(m *Message) { m.From.Email = "" }, true},
		{"missing recipient", func(m *Message) { m.To = " " }, true},
		{"missing subject", func(m *Message) { m.Subject = "" }, true},
		{"missing body", func(m *Message) { m.HTML = ""; m.Text = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validMessage()
			tt.mutate(msg)
			err := msg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMessage)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAddressString(t *testing.T) {
	assert.Equal(t, "me@example.com", Address{Email: "me@example.com"}.String())
	assert.Equal(t, `"Portfolio Contact" <me@example.com>`, Address{Name: "Portfolio Contact", Email: "me@example.com"}.String())
}

func TestUnavailable(t *testing.T) {
	u := NewUnavailable("resend", errors.New("RESEND_API_KEY is required"))
	assert.Equal(t, "resend", u.Name())

	err := u.Send(context.Background(), validMessage())
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Contains(t, err.Error(), "RESEND_API_KEY")

	assert.ErrorIs(t, NewUnavailable("smtp", nil).Send(context.Background(), validMessage()), ErrNotConfigured)
}

func TestHeaderSafe(t *testing.T) {
	assert.Equal(t, "Hi Bcc: evil@example.com", headerSafe("Hi\r\nBcc: evil@example.com"))
	assert.Equal(t, "a b", headerSafe(" a\nb "))
}
