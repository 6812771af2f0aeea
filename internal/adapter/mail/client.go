// internal/adapter/mail/client.go
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"

	gomail "github.com/wneessen/go-mail"

	"github.com/GoArmGo/ShopApp/internal/config"
)

// шаблон письма верификации; ссылка ведет на <base-url>/verification?token=...
var verificationBody = template.Must(template.New("verification_email").Parse(`
    <h3>Подтверждение аккаунта</h3>
    <p>Здравствуйте, {{.Username}}! Для подтверждения аккаунта перейдите по ссылке:</p>
    <a href="{{.Link}}">Подтвердить</a>
`))

// SMTPMailer представляет клиент SMTP-релея для писем верификации.
// Отправка синхронная: ошибка релея поднимается вызывающему и не ретраится.
type SMTPMailer struct {
	client *gomail.Client
	from   string
	logger *slog.Logger
}

// NewSMTPMailer создает новый экземпляр SMTPMailer.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (*SMTPMailer, error) {
	client, err := gomail.NewClient(cfg.SMTP.Host,
		gomail.WithPort(cfg.SMTP.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.SMTP.Username),
		gomail.WithPassword(cfg.SMTP.Password),
		gomail.WithTLSPolicy(gomail.TLSMandatory), // STARTTLS, как у релея на 587 порту
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания SMTP-клиента: %w", err)
	}

	return &SMTPMailer{client: client, from: cfg.SMTP.From, logger: logger}, nil
}

// SendVerification отправляет письмо со ссылкой верификации аккаунта.
func (m *SMTPMailer) SendVerification(ctx context.Context, recipient, username, link string) error {
	var body bytes.Buffer
	err := verificationBody.Execute(&body, struct {
		Username string
		Link     string
	}{Username: username, Link: link})
	if err != nil {
		return fmt.Errorf("ошибка рендеринга письма верификации: %w", err)
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("некорректный адрес отправителя: %w", err)
	}
	if err := msg.To(recipient); err != nil {
		return fmt.Errorf("некорректный адрес получателя: %w", err)
	}
	msg.Subject("Account Verification Email")
	msg.SetBodyString(gomail.TypeTextHTML, body.String())

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		m.logger.Error("failed to send verification email", "recipient", recipient, "error", err)
		return fmt.Errorf("ошибка отправки письма верификации: %w", err)
	}

	m.logger.Info("verification email sent", "recipient", recipient)
	return nil
}
