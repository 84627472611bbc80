package mailer

import (
	log "github.com/sirupsen/logrus"
)

type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers a single message. Implementations are called from
// asynchronous notification handlers and must not assume a request context.
type Sender interface {
	Send(msg Message) error
}

// LogSender stands in for SMTP when mail is disabled: it records the message
// instead of delivering it.
type LogSender struct{}

func (s *LogSender) Send(msg Message) error {
	log.Infof("mail disabled, skipping delivery to %v: %v", msg.To, msg.Subject)
	return nil
}
