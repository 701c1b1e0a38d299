package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/khy07181/the-java-test/internal/domain/notification"
)

// NotificationRepository implements notification.Repository for SQLite
type NotificationRepository struct {
	db *DB
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Append inserts a new notification
func (r *NotificationRepository) Append(ctx context.Context, n *notification.Notification) error {
	createdAt := n.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `
		INSERT INTO notifications (kind, study_id, member_id, recipient, summary, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		string(n.Kind),
		n.StudyID,
		n.MemberID,
		n.Recipient,
		n.Summary,
		createdAt,
	)
	if err != nil {
		if translated := translateError(err); translated != err {
			return translated
		}
		return fmt.Errorf("failed to append notification: %w", err)
	}

	id, err := result.LastInsertId()
	if err == nil {
		n.ID = id
	}
	n.CreatedAt = createdAt

	return nil
}

// List returns notifications matching the given filters in insertion order
func (r *NotificationRepository) List(ctx context.Context, opts notification.ListOptions) ([]notification.Notification, error) {
	query := `
		SELECT id, kind, study_id, member_id, recipient, summary, created_at
		FROM notifications
	`

	args := []interface{}{}
	conditions := []string{}

	if opts.MemberID != nil {
		conditions = append(conditions, "member_id = ?")
		args = append(args, *opts.MemberID)
	}
	if opts.StudyID != nil {
		conditions = append(conditions, "study_id = ?")
		args = append(args, *opts.StudyID)
	}
	if opts.Kind != nil {
		conditions = append(conditions, "kind = ?")
		args = append(args, string(*opts.Kind))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id ASC"

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
		if opts.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, opts.Offset)
		}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var entries []notification.Notification
	for rows.Next() {
		var n notification.Notification
		var studyID *string
		err := rows.Scan(
			&n.ID,
			&n.Kind,
			&studyID,
			&n.MemberID,
			&n.Recipient,
			&n.Summary,
			&n.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		n.StudyID = studyID
		entries = append(entries, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}

	return entries, nil
}
