package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Service handles notification outbox operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new notification service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Send appends a notification with the current timestamp if missing.
func (s *Service) Send(ctx context.Context, n *Notification) error {
	if n == nil || n.Kind == "" || strings.TrimSpace(n.Recipient) == "" {
		return ErrInvalidInput
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	if err := s.repo.Append(ctx, n); err != nil {
		return fmt.Errorf("sending notification: %w", err)
	}
	if s.logger != nil {
		s.logger.Debug("notification sent", "kind", n.Kind, "recipient", n.Recipient)
	}
	return nil
}

// List returns notifications in the order they were sent.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]Notification, error) {
	return s.repo.List(ctx, opts)
}
