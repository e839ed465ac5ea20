package email

import (
	"Agora/config"
	"crypto/tls"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"
)

// Sender 事务邮件
type Sender interface {
	Send(to, subject, htmlBody string) error
}

type SMTPSender struct {
	conf *config.Email
}

var _ Sender = (*SMTPSender)(nil)

func NewSMTPSender(conf *config.Config) Sender {
	return &SMTPSender{conf: conf.Email}
}

func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.conf.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.conf.Host, s.conf.Port, s.conf.Username, s.conf.Password)
	d.TLSConfig = &tls.Config{ServerName: s.conf.Host}
	return d.DialAndSend(m)
}

// ActivationHTML escapes its arguments, usernames are user input.
func ActivationHTML(username, code string) string {
	return fmt.Sprintf(`<p>Hi %s,</p><p>Your activation code is <b style="font-size:18px;">%s</b>.</p><p>Enter it on the verification page to activate your account.</p>`,
		html.EscapeString(username), html.EscapeString(code))
}
