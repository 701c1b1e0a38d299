package notification

import "context"

// Repository provides persistence operations for notifications.
type Repository interface {
	Append(ctx context.Context, n *Notification) error
	List(ctx context.Context, opts ListOptions) ([]Notification, error)
}
