package config

import (
	"github.com/instantchat/instantchat-api/pkg/notification"
)

// EmailConfig holds SMTP email configuration
type EmailConfig struct {
	Host     string `env:"SMTP_HOST" env-default:"smtp.gmail.com"`
	Port     uint16 `env:"SMTP_PORT" env-default:"587"`
	Username string `env:"GOOGLE_MAIL"`
	Password string `env:"GOOGLE_PASSWORD"`
	From     string `env:"GOOGLE_MAIL"`
	TLS      bool   `env:"SMTP_TLS" env-default:"true"`
}

// ToSMTPConfig converts the config to a notification.SMTPConfig
func (e EmailConfig) ToSMTPConfig() notification.SMTPConfig {
	return notification.SMTPConfig{
		Host:     e.Host,
		Port:     int(e.Port),
		Username: e.Username,
		Password: e.Password,
		From:     e.From,
		TLS:      e.TLS,
	}
}

// IsConfigured returns true if SMTP credentials are present
func (e EmailConfig) IsConfigured() bool {
	return e.Username != "" && e.Password != ""
}
