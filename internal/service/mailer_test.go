package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"pmco-site/internal/model"

	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

func restoreMailGlobals() {
	newMailClient = func(m *SMTPMailer) (*mail.Client, error) {
		return mail.NewClient(m.Host,
			mail.WithPort(m.Port),
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.Username),
			mail.WithPassword(m.Password),
			mail.WithTLSPortPolicy(mail.TLSMandatory),
		)
	}
}

func sampleLead() model.Contact {
	return model.Contact{
		ID:          7,
		Name:        "Alice",
		Email:       "alice@example.com",
		Phone:       "1234567890",
		Interest:    "consulting",
		Message:     "hello <world>",
		IPAddress:   "1.2.3.4",
		SubmittedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRenderLeadMail(t *testing.T) {
	body, err := renderLeadMail(sampleLead())
	require.NoError(t, err)
	require.Contains(t, body, "Alice")
	require.Contains(t, body, "alice@example.com")
	require.Contains(t, body, "1234567890")
	require.Contains(t, body, "consulting")
	require.Contains(t, body, "1.2.3.4")
	require.Contains(t, body, "2025-06-01")
	// 訊息內容需經 HTML escape
	require.Contains(t, body, "hello &lt;world&gt;")
	require.NotContains(t, body, "hello <world>")
}

func TestSMTPMailerClientError(t *testing.T) {
	t.Cleanup(restoreMailGlobals)
	newMailClient = func(*SMTPMailer) (*mail.Client, error) { return nil, errors.New("dial") }

	m := NewSMTPMailer("smtp.example.com", 587, "ops@example.com", "pw")
	err := m.SendLeadNotification(context.Background(), sampleLead())
	require.Error(t, err)
	require.Contains(t, err.Error(), "dial")
}

func TestSMTPMailerBadSender(t *testing.T) {
	t.Cleanup(restoreMailGlobals)
	m := NewSMTPMailer("smtp.example.com", 587, "not an address", "pw")
	err := m.SendLeadNotification(context.Background(), sampleLead())
	require.Error(t, err)
}

func TestFakeMailer(t *testing.T) {
	f := &FakeMailer{}
	require.Panics(t, func() { _ = f.SendLeadNotification(context.Background(), model.Contact{}) })

	var got model.Contact
	f.SendFn = func(_ context.Context, lead model.Contact) error { got = lead; return nil }
	require.NoError(t, f.SendLeadNotification(context.Background(), sampleLead()))
	require.Equal(t, "Alice", got.Name)
}
