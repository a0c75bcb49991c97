package notification

import (
	"log/slog"
	"sync"
)

// MockNotifier records notifications instead of delivering them. It doubles
// as the log-only notifier used when no SMTP server is configured.
type MockNotifier struct {
	mu                sync.Mutex
	SentNotifications []NotificationData
	Err               error // returned from Send when non-nil
}

func (m *MockNotifier) Send(notification NotificationData) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.SentNotifications = append(m.SentNotifications, notification)

	slog.Info("Mock notification", "to", notification.To, "subject", notification.Subject)
	return nil
}

// Last returns the most recently recorded notification.
func (m *MockNotifier) Last() (NotificationData, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.SentNotifications) == 0 {
		return NotificationData{}, false
	}
	return m.SentNotifications[len(m.SentNotifications)-1], true
}
