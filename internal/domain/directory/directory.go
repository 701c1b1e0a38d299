// Package directory implements member lookup, validation and notification
// for study orchestration.
package directory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/khy07181/the-java-test/internal/domain/member"
	"github.com/khy07181/the-java-test/internal/domain/notification"
	"github.com/khy07181/the-java-test/internal/domain/study"
	"github.com/khy07181/the-java-test/internal/repository"
)

var _ study.MemberDirectory = (*Directory)(nil)

// Directory resolves members from a repository and records notifications
// through a Notifier.
type Directory struct {
	members  MemberRepository
	notifier Notifier
	logger   *slog.Logger
}

// New creates a new member directory.
func New(members MemberRepository, notifier Notifier, logger *slog.Logger) *Directory {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Directory{members: members, notifier: notifier, logger: logger}
}

// Register adds a member after validating it.
func (d *Directory) Register(ctx context.Context, id int64, email string) (*member.Member, error) {
	m := &member.Member{
		ID:        id,
		Email:     strings.TrimSpace(email),
		CreatedAt: time.Now(),
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := d.members.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("creating member: %w", err)
	}
	return m, nil
}

// FindByID returns the member, or found=false when it doesn't exist.
func (d *Directory) FindByID(ctx context.Context, memberID int64) (*member.Member, bool, error) {
	m, err := d.members.Get(ctx, memberID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("getting member: %w", err)
	}
	return m, true, nil
}

// Validate fails with member.ErrInvalidMember when the member is missing or
// has no usable contact address.
func (d *Directory) Validate(ctx context.Context, memberID int64) error {
	m, found, err := d.FindByID(ctx, memberID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: member %d not found", member.ErrInvalidMember, memberID)
	}
	return m.Validate()
}

// NotifyStudyCreated announces a new study to its owner. Failures are logged.
func (d *Directory) NotifyStudyCreated(ctx context.Context, s *study.Study) {
	if s == nil || s.Owner() == nil {
		d.logger.Warn("skipping study notification without owner")
		return
	}
	owner := s.Owner()
	studyID := s.ID()
	d.send(ctx, &notification.Notification{
		Kind:      notification.KindStudyCreated,
		StudyID:   &studyID,
		MemberID:  owner.ID,
		Recipient: owner.Email,
		Summary:   fmt.Sprintf("study %q created with limit %d", s.Name(), s.LimitCount()),
	})
}

// NotifyMemberInvolved tells the member they own a newly created study.
// Failures are logged.
func (d *Directory) NotifyMemberInvolved(ctx context.Context, m *member.Member) {
	if m == nil {
		d.logger.Warn("skipping member notification without member")
		return
	}
	d.send(ctx, &notification.Notification{
		Kind:      notification.KindMemberInvolved,
		MemberID:  m.ID,
		Recipient: m.Email,
		Summary:   fmt.Sprintf("member %d is the owner of a new study", m.ID),
	})
}

func (d *Directory) send(ctx context.Context, n *notification.Notification) {
	if err := d.notifier.Send(ctx, n); err != nil {
		d.logger.Warn("notification failed",
			"kind", n.Kind,
			"member_id", n.MemberID,
			"error", err,
		)
	}
}
