package mocks

import (
	"context"

	"github.com/khy07181/the-java-test/internal/domain/member"
	"github.com/khy07181/the-java-test/internal/domain/notification"
	"github.com/khy07181/the-java-test/internal/domain/study"
	"github.com/stretchr/testify/mock"
)

// MemberDirectory is a mock for study.MemberDirectory.
type MemberDirectory struct {
	mock.Mock
}

func (m *MemberDirectory) FindByID(ctx context.Context, memberID int64) (*member.Member, bool, error) {
	args := m.Called(ctx, memberID)
	if mem, ok := args.Get(0).(*member.Member); ok {
		return mem, args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

func (m *MemberDirectory) Validate(ctx context.Context, memberID int64) error {
	args := m.Called(ctx, memberID)
	return args.Error(0)
}

func (m *MemberDirectory) NotifyStudyCreated(ctx context.Context, s *study.Study) {
	m.Called(ctx, s)
}

func (m *MemberDirectory) NotifyMemberInvolved(ctx context.Context, mem *member.Member) {
	m.Called(ctx, mem)
}

// StudyStore is a mock for study.Store.
type StudyStore struct {
	mock.Mock
}

func (m *StudyStore) Save(ctx context.Context, s *study.Study) (*study.Study, error) {
	args := m.Called(ctx, s)
	if st, ok := args.Get(0).(*study.Study); ok {
		return st, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StudyStore) Get(ctx context.Context, id string) (*study.Study, error) {
	args := m.Called(ctx, id)
	if st, ok := args.Get(0).(*study.Study); ok {
		return st, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StudyStore) List(ctx context.Context, opts study.ListOptions) ([]*study.Study, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]*study.Study); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// MemberRepository is a mock for directory.MemberRepository.
type MemberRepository struct {
	mock.Mock
}

func (m *MemberRepository) Create(ctx context.Context, mem *member.Member) error {
	args := m.Called(ctx, mem)
	return args.Error(0)
}

func (m *MemberRepository) Get(ctx context.Context, id int64) (*member.Member, error) {
	args := m.Called(ctx, id)
	if mem, ok := args.Get(0).(*member.Member); ok {
		return mem, args.Error(1)
	}
	return nil, args.Error(1)
}

// Notifier is a mock for directory.Notifier.
type Notifier struct {
	mock.Mock
}

func (m *Notifier) Send(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// NotificationRepository is a mock for notification.Repository.
type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) Append(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *NotificationRepository) List(ctx context.Context, opts notification.ListOptions) ([]notification.Notification, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]notification.Notification); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
