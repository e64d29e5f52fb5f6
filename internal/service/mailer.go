// File: internal/service/mailer.go
package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"pmco-site/internal/model"

	"github.com/wneessen/go-mail"
)

// Mailer 寄送新名單通知信給營運信箱
// 測試時以 FakeMailer 替換
type Mailer interface {
	SendLeadNotification(ctx context.Context, lead model.Contact) error
}

type FakeMailer struct {
	SendFn func(ctx context.Context, lead model.Contact) error
}

// SendLeadNotification 執行 Fake 設定或 panic
func (f *FakeMailer) SendLeadNotification(ctx context.Context, lead model.Contact) error {
	if f.SendFn != nil {
		return f.SendFn(ctx, lead)
	}
	panic("unexpected SendLeadNotification")
}

var leadMailTemplate = template.Must(template.New("lead").Parse(`<h2>New Consultation Booking</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Interest:</strong> {{.Interest}}</p>
<p><strong>Message:</strong><br/>{{.Message}}</p>
<p><strong>IP Address:</strong> {{.IPAddress}}</p>
<hr>
<p><em>Submitted on: {{.SubmittedAt.Format "2006-01-02 15:04:05 MST"}}</em></p>
`))

// SMTPMailer 透過 SMTP 寄送通知信，收件者為帳號本身（原系統行為）。
type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
}

func NewSMTPMailer(host string, port int, username, password string) *SMTPMailer {
	return &SMTPMailer{Host: host, Port: port, Username: username, Password: password}
}

// newMailClient 供測試覆寫
var newMailClient = func(m *SMTPMailer) (*mail.Client, error) {
	return mail.NewClient(m.Host,
		mail.WithPort(m.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.Username),
		mail.WithPassword(m.Password),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
	)
}

func (m *SMTPMailer) SendLeadNotification(ctx context.Context, lead model.Contact) error {
	body, err := renderLeadMail(lead)
	if err != nil {
		return fmt.Errorf("SendLeadNotification: %w", err)
	}

	msg := mail.NewMsg()
	if err := msg.From(m.Username); err != nil {
		return fmt.Errorf("SendLeadNotification: %w", err)
	}
	if err := msg.To(m.Username); err != nil {
		return fmt.Errorf("SendLeadNotification: %w", err)
	}
	msg.Subject(fmt.Sprintf("New Consultation Request from %s", lead.Name))
	msg.SetBodyString(mail.TypeTextHTML, body)

	client, err := newMailClient(m)
	if err != nil {
		return fmt.Errorf("SendLeadNotification: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("SendLeadNotification: %w", err)
	}
	return nil
}

func renderLeadMail(lead model.Contact) (string, error) {
	var buf bytes.Buffer
	if err := leadMailTemplate.Execute(&buf, lead); err != nil {
		return "", err
	}
	return buf.String(), nil
}
