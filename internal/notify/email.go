package notify

import (
	"fmt"
	"net/smtp"
)

// Email sends a plain-text message over SMTP. No pack library covers
// bare SMTP submission (the examples' mail-adjacent dependencies are all
// higher-level client SDKs for hosted providers), so this one channel
// uses net/smtp directly rather than stretching an unrelated dependency
// to cover it.
type Email struct {
	To, From, Host string
	Port           int
}

func (Email) Name() string { return "email" }

func (e Email) Send(ev Event) error {
	addr := fmt.Sprintf("%s:%d", e.Host, e.Port)
	msg := fmt.Sprintf("Subject: disk watchdog: %s\r\n\r\n%s\r\n", ev.Level, ev.Message)

	if err := smtp.SendMail(addr, nil, e.From, []string{e.To}, []byte(msg)); err != nil {
		return fmt.Errorf("notify/email: send: %w", err)
	}
	return nil
}
