package notification

// NotificationData carries a single outbound message.
type NotificationData struct {
	To      string // Recipient address
	Subject string
	Body    string
}

// Notifier delivers a notification to a recipient. Delivery is synchronous
// and fire-and-forget: a non-nil error means the message was not handed off.
type Notifier interface {
	Send(notification NotificationData) error
}
