package directory

import (
	"context"

	"github.com/khy07181/the-java-test/internal/domain/member"
	"github.com/khy07181/the-java-test/internal/domain/notification"
)

// MemberRepository provides persistence for members.
type MemberRepository interface {
	Create(ctx context.Context, m *member.Member) error
	Get(ctx context.Context, id int64) (*member.Member, error)
}

// Notifier delivers notifications.
type Notifier interface {
	Send(ctx context.Context, n *notification.Notification) error
}
