package dummymail

import (
	"sync"

	"github.com/educircle/backend/core"
)

// Service records messages instead of sending them; tests inspect Sent().
type Service struct {
	mu           sync.Mutex
	sentMessages []core.EmailMessage
}

var _ core.EmailService = (*Service)(nil)

func NewService() *Service {
	return &Service{}
}

// SendMessages runs synchronously.
func (svc *Service) SendMessages(messages ...*core.EmailMessage) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	for _, msg := range messages {
		if msg.HasRecipients() && msg.HasContent() {
			svc.sentMessages = append(svc.sentMessages, *msg)
		}
	}
}

func (svc *Service) Sent() []core.EmailMessage {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return append([]core.EmailMessage(nil), svc.sentMessages...)
}
