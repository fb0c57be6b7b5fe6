// Package flash queues short-lived, severity-tagged messages on the
// session for the next rendered page.
package flash

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	Success = "success"
	Info    = "info"
	Warning = "warning"
	Danger  = "danger"
)

type Message struct {
	Kind string
	Text string
}

func init() {
	gob.Register(Message{})
}

func Add(c *gin.Context, kind, text string) {
	sess := sessions.Default(c)
	sess.AddFlash(Message{Kind: kind, Text: text})
	_ = sess.Save()
}

// Pop drains the queued messages. Reading clears them, so each message is
// shown exactly once.
func Pop(c *gin.Context) []Message {
	sess := sessions.Default(c)

	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save()

	messages := make([]Message, 0, len(raw))
	for _, f := range raw {
		if m, ok := f.(Message); ok {
			messages = append(messages, m)
		}
	}

	return messages
}
