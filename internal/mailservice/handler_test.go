package mailservice

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type captureLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *captureLogger) Error(msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
}

func (l *captureLogger) Info(msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
}

func TestSendCommentNotifications(t *testing.T) {
	mockMC := new(MockMessageConsumer)
	mockMailer := new(MockMailer)
	logger := &captureLogger{}

	ctx, cancel := context.WithCancel(context.Background())

	s := &MailService{
		mb:     mockMC,
		m:      mockMailer,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}

	s.SendCommentNotifications()

	time.Sleep(1 * time.Second)

	assert.True(t, mockMailer.Called, "expected a notification to be sent")
	assert.Equal(t, "author@example.com", mockMailer.Email)

	t.Cleanup(func() {
		s.Close()
	})
}
