package smtp

import (
	"fmt"

	"github.com/tourism-backend/internal/config"
	"github.com/tourism-backend/internal/domain/repository"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type mailer struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

// NewMailer создает SMTP-отправитель исходящей почты
func NewMailer(cfg *config.SMTPConfig, logger *zap.Logger) repository.MailRepository {
	return &mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
		logger: logger,
	}
}

// SendPasswordResetCode отправляет код восстановления пароля
func (m *mailer) SendPasswordResetCode(to, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your password reset code")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Your password reset code is %s. It expires in 10 minutes.", code))

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error("Failed to send password reset email", zap.Error(err))
		return fmt.Errorf("failed to send password reset email: %w", err)
	}

	m.logger.Info("Password reset code sent", zap.String("to", to))
	return nil
}
