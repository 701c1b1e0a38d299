package directory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/khy07181/the-java-test/internal/domain/directory"
	"github.com/khy07181/the-java-test/internal/domain/member"
	"github.com/khy07181/the-java-test/internal/domain/notification"
	"github.com/khy07181/the-java-test/internal/domain/study"
	"github.com/khy07181/the-java-test/internal/repository"
	"github.com/khy07181/the-java-test/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDirectory_FindByID(t *testing.T) {
	ctx := context.Background()
	owner := &member.Member{ID: 1, Email: "khy07181@gmail.com"}

	members := &mocks.MemberRepository{}
	members.On("Get", ctx, int64(1)).Return(owner, nil)
	members.On("Get", ctx, int64(2)).Return(nil, repository.ErrNotFound)
	members.On("Get", ctx, int64(3)).Return(nil, errors.New("db closed"))

	dir := directory.New(members, &mocks.Notifier{}, nil)

	m, found, err := dir.FindByID(ctx, 1)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, owner, m)

	m, found, err = dir.FindByID(ctx, 2)
	require.NoError(t, err)
	require.False(t, found)
	require.Nil(t, m)

	_, _, err = dir.FindByID(ctx, 3)
	require.Error(t, err)
}

func TestDirectory_Validate(t *testing.T) {
	ctx := context.Background()

	members := &mocks.MemberRepository{}
	members.On("Get", ctx, int64(1)).Return(&member.Member{ID: 1, Email: "khy07181@gmail.com"}, nil)
	members.On("Get", ctx, int64(2)).Return(nil, repository.ErrNotFound)
	members.On("Get", ctx, int64(3)).Return(&member.Member{ID: 3, Email: "not-an-email"}, nil)

	dir := directory.New(members, &mocks.Notifier{}, nil)
	require.NoError(t, dir.Validate(ctx, 1))
	require.ErrorIs(t, dir.Validate(ctx, 2), member.ErrInvalidMember)
	require.ErrorIs(t, dir.Validate(ctx, 3), member.ErrInvalidMember)
}

func TestDirectory_Register(t *testing.T) {
	ctx := context.Background()

	members := &mocks.MemberRepository{}
	members.On("Create", ctx, mock.Anything).Return(nil)

	dir := directory.New(members, &mocks.Notifier{}, nil)
	m, err := dir.Register(ctx, 1, " khy07181@gmail.com ")
	require.NoError(t, err)
	require.Equal(t, "khy07181@gmail.com", m.Email)
	require.False(t, m.CreatedAt.IsZero())

	_, err = dir.Register(ctx, 2, "bogus")
	require.ErrorIs(t, err, member.ErrInvalidMember)
	members.AssertNumberOfCalls(t, "Create", 1)
}

func TestDirectory_NotifyStudyCreated(t *testing.T) {
	ctx := context.Background()
	owner := &member.Member{ID: 1, Email: "khy07181@gmail.com"}

	st, err := study.New(10, "테스트")
	require.NoError(t, err)
	require.NoError(t, st.AssignOwner(owner))
	require.NoError(t, st.SetID("s1"))

	notifier := &mocks.Notifier{}
	notifier.On("Send", ctx, mock.MatchedBy(func(n *notification.Notification) bool {
		return n.Kind == notification.KindStudyCreated &&
			n.StudyID != nil && *n.StudyID == "s1" &&
			n.MemberID == 1 &&
			n.Recipient == "khy07181@gmail.com"
	})).Return(nil)

	dir := directory.New(&mocks.MemberRepository{}, notifier, nil)
	dir.NotifyStudyCreated(ctx, st)

	notifier.AssertExpectations(t)
	require.Equal(t, study.StatusDraft, st.Status())
	require.Same(t, owner, st.Owner())
}

func TestDirectory_NotifyMemberInvolved(t *testing.T) {
	ctx := context.Background()
	owner := &member.Member{ID: 1, Email: "khy07181@gmail.com"}

	notifier := &mocks.Notifier{}
	notifier.On("Send", ctx, mock.MatchedBy(func(n *notification.Notification) bool {
		return n.Kind == notification.KindMemberInvolved && n.StudyID == nil && n.Recipient == owner.Email
	})).Return(nil)

	dir := directory.New(&mocks.MemberRepository{}, notifier, nil)
	dir.NotifyMemberInvolved(ctx, owner)
	notifier.AssertExpectations(t)
}

func TestDirectory_NotifyFailuresAreNotFatal(t *testing.T) {
	ctx := context.Background()
	owner := &member.Member{ID: 1, Email: "khy07181@gmail.com"}

	notifier := &mocks.Notifier{}
	notifier.On("Send", ctx, mock.Anything).Return(errors.New("smtp down"))

	dir := directory.New(&mocks.MemberRepository{}, notifier, nil)
	require.NotPanics(t, func() {
		dir.NotifyMemberInvolved(ctx, owner)
		dir.NotifyMemberInvolved(ctx, nil)
	})
	notifier.AssertNumberOfCalls(t, "Send", 1)
}

func TestDirectory_NotifyStudyCreatedWithoutOwner(t *testing.T) {
	st, err := study.New(10, "")
	require.NoError(t, err)

	notifier := &mocks.Notifier{}
	dir := directory.New(&mocks.MemberRepository{}, notifier, nil)
	dir.NotifyStudyCreated(context.Background(), st)
	notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}
