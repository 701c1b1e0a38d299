package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/khy07181/the-java-test/internal/domain/member"
	"github.com/khy07181/the-java-test/internal/repository"
)

// MemberRepository implements directory.MemberRepository for SQLite
type MemberRepository struct {
	db *DB
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create inserts a new member
func (r *MemberRepository) Create(ctx context.Context, m *member.Member) error {
	createdAt := m.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `
		INSERT INTO members (id, email, created_at)
		VALUES (?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, m.ID, m.Email, createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return fmt.Errorf("failed to create member: %w", err)
	}

	m.CreatedAt = createdAt
	return nil
}

// Get retrieves a member by ID
func (r *MemberRepository) Get(ctx context.Context, id int64) (*member.Member, error) {
	query := `
		SELECT id, email, created_at
		FROM members
		WHERE id = ?
	`

	var m member.Member
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Email, &m.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return &m, nil
}
