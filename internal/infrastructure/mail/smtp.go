// Package mail envía correos por SMTP con adjuntos.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/rs/zerolog"

	"github.com/jhoicas/antorcha-inventario/internal/application/summary"
	"github.com/jhoicas/antorcha-inventario/pkg/config"
)

// sendFunc permite sustituir el envío real en tests.
type sendFunc func(e *email.Email, addr string, auth smtp.Auth) error

// Mailer implementa summary.Mailer sobre SMTP.
type Mailer struct {
	cfg  config.SMTPConfig
	auth smtp.Auth
	send sendFunc
	log  zerolog.Logger
}

// NewMailer construye el mailer. Sin usuario no se autentica.
func NewMailer(cfg config.SMTPConfig, log zerolog.Logger) *Mailer {
	m := &Mailer{
		cfg:  cfg,
		send: func(e *email.Email, addr string, auth smtp.Auth) error { return e.Send(addr, auth) },
		log:  log,
	}
	if cfg.User != "" {
		m.auth = smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Host)
	}
	return m
}

// Send arma el mensaje y lo entrega al servidor SMTP.
func (m *Mailer) Send(ctx context.Context, msg summary.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e := m.build(msg)
	if err := m.send(e, m.cfg.Addr(), m.auth); err != nil {
		return fmt.Errorf("mailer: enviar a %v: %w", msg.To, err)
	}
	m.log.Info().Strs("to", msg.To).Str("subject", msg.Subject).Int("attachments", len(msg.Attachments)).Msg("correo enviado")
	return nil
}

func (m *Mailer) build(msg summary.Message) *email.Email {
	e := email.NewEmail()
	e.From = m.from()
	e.To = msg.To
	e.Subject = msg.Subject
	e.Text = []byte(msg.Body)
	for _, a := range msg.Attachments {
		// Attach solo falla al leer el reader; con bytes.Reader no ocurre.
		_, _ = e.Attach(bytes.NewReader(a.Data), a.Name, a.ContentType)
	}
	return e
}

func (m *Mailer) from() string {
	if m.cfg.From != "" {
		return m.cfg.From
	}
	return m.cfg.User
}
