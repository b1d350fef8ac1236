package mailer

import (
	"fmt"
	"strings"

	"kryptonite/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Sender mengirim transactional email. Best-effort: callers decide
// whether a failure aborts their own operation.
type Sender interface {
	Send(toEmail, subject, body string) error
}

type smtpSender struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func NewSMTPSender(config utils.EmailConfig, log *zap.Logger) Sender {
	return &smtpSender{
		config: config,
		log:    log,
	}
}

func (s *smtpSender) Send(toEmail, subject, body string) error {
	if s.config.Host == "" || s.config.User == "" || s.config.From == "" {
		s.log.Warn("email config missing, skip sending", zap.String("to", toEmail))
		return nil
	}
	if strings.TrimSpace(toEmail) == "" {
		return fmt.Errorf("empty recipient")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.config.From)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.config.Host, s.config.Port, s.config.User, s.config.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send email to %s: %w", toEmail, err)
	}

	s.log.Info("email sent",
		zap.String("to", toEmail),
		zap.String("subject", subject),
	)
	return nil
}

// ==================== MESSAGE TEMPLATES ====================

const (
	SubjectConfirmation = "Registration Confirmation | Kryptonite"
	SubjectOTP          = "OTP Code | Kryptonite"
)

func ConfirmationBody() string {
	return "Welcome to Kryptonite App! Your registration has been successfully completed. " +
		"By default a 2FA authentication process is turned on. " +
		"Every time you log in, a six-digit code will be sent to this email."
}

func OTPBody(code string) string {
	return fmt.Sprintf("Thank you for using Kryptonite. Here is your one-time login code: %s", code)
}
