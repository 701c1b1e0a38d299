package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/khy07181/the-java-test/internal/domain/member"
	"github.com/khy07181/the-java-test/internal/domain/study"
	"github.com/khy07181/the-java-test/internal/repository"
)

// StudyRepository implements study.Store for SQLite
type StudyRepository struct {
	db *DB
}

// NewStudyRepository creates a new StudyRepository
func NewStudyRepository(db *DB) *StudyRepository {
	return &StudyRepository{db: db}
}

const selectStudy = `
	SELECT
		s.id, s.status, s.limit_count, s.name, s.opened_at, s.created_at,
		m.id, m.email, m.created_at
	FROM studies s
	LEFT JOIN members m ON m.id = s.owner_id
`

// Save inserts a study that has no id yet, assigning a new one, or updates
// an existing study
func (r *StudyRepository) Save(ctx context.Context, st *study.Study) (*study.Study, error) {
	if st == nil {
		return nil, repository.ErrInvalidInput
	}
	if st.ID() == "" {
		return r.insert(ctx, st)
	}
	return r.update(ctx, st)
}

func (r *StudyRepository) insert(ctx context.Context, st *study.Study) (*study.Study, error) {
	snap := st.Snapshot()
	id := uuid.NewString()

	query := `
		INSERT INTO studies (id, status, limit_count, name, owner_id, opened_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		id,
		string(snap.Status),
		snap.LimitCount,
		snap.Name,
		ownerID(snap.Owner),
		snap.OpenedAt,
		snap.CreatedAt,
	)
	if err != nil {
		if translated := translateError(err); translated != err {
			return nil, translated
		}
		return nil, fmt.Errorf("failed to create study: %w", err)
	}

	if err := st.SetID(id); err != nil {
		return nil, err
	}
	return st, nil
}

func (r *StudyRepository) update(ctx context.Context, st *study.Study) (*study.Study, error) {
	snap := st.Snapshot()

	query := `
		UPDATE studies
		SET status = ?, limit_count = ?, name = ?, owner_id = ?, opened_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		string(snap.Status),
		snap.LimitCount,
		snap.Name,
		ownerID(snap.Owner),
		snap.OpenedAt,
		snap.ID,
	)
	if err != nil {
		if translated := translateError(err); translated != err {
			return nil, translated
		}
		return nil, fmt.Errorf("failed to update study: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, repository.ErrNotFound
	}

	return st, nil
}

// Get retrieves a study by ID with its owner
func (r *StudyRepository) Get(ctx context.Context, id string) (*study.Study, error) {
	row := r.db.QueryRowContext(ctx, selectStudy+" WHERE s.id = ?", id)

	st, err := scanStudy(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get study: %w", err)
	}

	return st, nil
}

// List returns studies matching the given filters, oldest first
func (r *StudyRepository) List(ctx context.Context, opts study.ListOptions) ([]*study.Study, error) {
	query := selectStudy
	args := []interface{}{}
	conditions := []string{}

	if opts.OwnerID != nil {
		conditions = append(conditions, "s.owner_id = ?")
		args = append(args, *opts.OwnerID)
	}
	if opts.Status != nil {
		conditions = append(conditions, "s.status = ?")
		args = append(args, string(*opts.Status))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY s.created_at ASC, s.rowid ASC"

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
		return nil, fmt.Errorf("failed to list studies: %w", err)
	}
	defer rows.Close()

	var studies []*study.Study
	for rows.Next() {
		st, err := scanStudy(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan study: %w", err)
		}
		studies = append(studies, st)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating study rows: %w", err)
	}

	return studies, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStudy(row rowScanner) (*study.Study, error) {
	var (
		snap           study.Snapshot
		openedAt       sql.NullTime
		ownerID        sql.NullInt64
		ownerEmail     sql.NullString
		ownerCreatedAt sql.NullTime
	)

	err := row.Scan(
		&snap.ID,
		&snap.Status,
		&snap.LimitCount,
		&snap.Name,
		&openedAt,
		&snap.CreatedAt,
		&ownerID,
		&ownerEmail,
		&ownerCreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if openedAt.Valid {
		t := openedAt.Time
		snap.OpenedAt = &t
	}
	if ownerID.Valid {
		snap.Owner = &member.Member{
			ID:        ownerID.Int64,
			Email:     ownerEmail.String,
			CreatedAt: ownerCreatedAt.Time,
		}
	}

	return study.Restore(snap)
}

func ownerID(owner *member.Member) interface{} {
	if owner == nil {
		return nil
	}
	return owner.ID
}
