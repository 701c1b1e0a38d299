package study

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/khy07181/the-java-test/internal/repository"
)

// Service orchestrates study creation and lifecycle transitions.
type Service struct {
	members MemberDirectory
	store   Store
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used when opening studies.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a new study service.
func NewService(members MemberDirectory, store Store, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	svc := &Service{
		members: members,
		store:   store,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// CreateNewStudy assigns the member as owner of s, persists it and
// announces it.
//
// The sequence is fixed: resolve the owner, assign it, save, then notify
// the study followed by the member. Notifications only fire after a
// successful save. Validate is not part of creation; see ValidateOwner.
func (s *Service) CreateNewStudy(ctx context.Context, memberID int64, st *Study) (*Study, error) {
	if st == nil {
		return nil, fmt.Errorf("%w: study is required", ErrInvalidArgument)
	}

	owner, found, err := s.members.FindByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("finding member: %w", err)
	}
	if !found || owner == nil {
		return nil, fmt.Errorf("%w: id %d", ErrMemberNotFound, memberID)
	}

	if err := st.AssignOwner(owner); err != nil {
		return nil, err
	}

	saved, err := s.store.Save(ctx, st)
	if err != nil {
		// Nothing was persisted, so the study goes back to having no owner.
		st.clearOwner()
		return nil, fmt.Errorf("saving study: %w", err)
	}
	if saved == nil {
		saved = st
	}

	s.members.NotifyStudyCreated(ctx, saved)
	s.members.NotifyMemberInvolved(ctx, owner)

	s.logger.Info("study created",
		"study_id", saved.ID(),
		"member_id", owner.ID,
		"limit", saved.LimitCount(),
	)
	return saved, nil
}

// OpenStudy transitions a persisted DRAFT study to OPENED.
func (s *Service) OpenStudy(ctx context.Context, id string) (*Study, error) {
	st, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := st.Open(s.now()); err != nil {
		return nil, err
	}

	saved, err := s.store.Save(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("saving study: %w", err)
	}

	s.logger.Info("study opened", "study_id", saved.ID())
	return saved, nil
}

// Get fetches a study by ID.
func (s *Service) Get(ctx context.Context, id string) (*Study, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidArgument)
	}
	st, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStudyNotFound
		}
		return nil, fmt.Errorf("getting study: %w", err)
	}
	return st, nil
}

// List returns studies matching opts.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]*Study, error) {
	if opts.Status != nil && !opts.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, *opts.Status)
	}
	return s.store.List(ctx, opts)
}

// ValidateOwner checks that a member may own studies. It is independent of
// CreateNewStudy.
func (s *Service) ValidateOwner(ctx context.Context, memberID int64) error {
	return s.members.Validate(ctx, memberID)
}
