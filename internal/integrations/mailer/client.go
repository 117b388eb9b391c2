package mailer

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strings"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config настройки SMTP-канала
type Config struct {
	Host        string
	Port        int
	User        string
	Password    string
	From        string
	BCCInternal string
}

// Client SMTP-клиент для транзакционных писем подтверждения
type Client struct {
	cfg Config
	log Logger
}

// NewClient создает новый экземпляр почтового клиента
func NewClient(cfg Config, log Logger) *Client {
	return &Client{cfg: cfg, log: log}
}

// Configured возвращает true, если SMTP-канал настроен
func (c *Client) Configured() bool {
	return c.cfg.Host != ""
}

// SendConfirmation отправляет клиенту письмо со ссылкой подтверждения бронирования
// Вызывается только после того, как бронирование сохранено в БД
func (c *Client) SendConfirmation(ctx context.Context, email ConfirmationEmail) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	recipients := []string{email.To}
	if c.cfg.BCCInternal != "" {
		recipients = append(recipients, c.cfg.BCCInternal)
	}

	message := c.buildMessage(email)
	addr := fmt.Sprintf("%s:%d", c.cfg.Host, c.cfg.Port)

	var auth smtp.Auth
	if c.cfg.User != "" {
		auth = smtp.PlainAuth("", c.cfg.User, c.cfg.Password, c.cfg.Host)
	}

	c.log.Info("Sending confirmation email to=%s via %s", email.To, addr)

	if err := smtp.SendMail(addr, auth, c.cfg.From, recipients, message); err != nil {
		c.log.Error("Failed to send confirmation email to=%s: %v", email.To, err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	c.log.Info("Confirmation email sent to=%s", email.To)
	return nil
}

// buildMessage собирает plain-text письмо подтверждения
func (c *Client) buildMessage(email ConfirmationEmail) []byte {
	subject := mime.QEncoding.Encode("utf-8", "Confirmação de Marcação — RIZZA")

	var body strings.Builder
	fmt.Fprintf(&body, "Olá %s,\n\n", email.CustomerName)
	body.WriteString("Recebemos o teu pedido de marcação. Para confirmar, abre o link abaixo:\n\n")
	fmt.Fprintf(&body, "%s\n\n", email.ConfirmURL)
	fmt.Fprintf(&body, "Serviço: %s\n", email.ServiceLabel)
	fmt.Fprintf(&body, "Veículo: %s\n", email.VehicleLabel)
	fmt.Fprintf(&body, "Data: %s\n", email.DateLabel)
	fmt.Fprintf(&body, "Hora: %s\n", email.Time)
	if email.Notes != nil && *email.Notes != "" {
		fmt.Fprintf(&body, "\nObservações: %s\n", *email.Notes)
	}
	body.WriteString("\nSe não fizeste este pedido, ignora este email.\n\nRIZZA")

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", c.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", email.To)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body.String())

	return []byte(msg.String())
}
