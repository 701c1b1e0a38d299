package study

import (
	"context"

	"github.com/khy07181/the-java-test/internal/domain/member"
)

// MemberDirectory resolves, validates and notifies members.
type MemberDirectory interface {
	// FindByID returns found=false, not an error, when the member is absent.
	FindByID(ctx context.Context, memberID int64) (m *member.Member, found bool, err error)
	Validate(ctx context.Context, memberID int64) error
	// NotifyStudyCreated must not modify the study.
	NotifyStudyCreated(ctx context.Context, s *Study)
	NotifyMemberInvolved(ctx context.Context, m *member.Member)
}

// Store provides persistence for studies.
type Store interface {
	// Save inserts a study without an id, assigning one, or updates an existing study.
	Save(ctx context.Context, s *Study) (*Study, error)
	Get(ctx context.Context, id string) (*Study, error)
	List(ctx context.Context, opts ListOptions) ([]*Study, error)
}
