package study_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/khy07181/the-java-test/internal/domain/member"
	"github.com/khy07181/the-java-test/internal/domain/study"
	"github.com/stretchr/testify/require"
)

func TestNew_StartsAsDraft(t *testing.T) {
	for _, limit := range []int{1, 10, 1000} {
		st, err := study.New(limit, "")
		require.NoError(t, err)
		require.Equal(t, study.StatusDraft, st.Status())
		require.Equal(t, limit, st.LimitCount())
		require.Nil(t, st.Owner())
		require.Empty(t, st.ID())
		require.Nil(t, st.OpenedAt())
		require.False(t, st.CreatedAt().IsZero())
	}
}

func TestNew_RejectsNonPositiveLimit(t *testing.T) {
	for _, limit := range []int{0, -1, -10} {
		st, err := study.New(limit, "테스트")
		require.ErrorIs(t, err, study.ErrInvalidArgument)
		require.Nil(t, st)
	}
}

func TestStudy_Open(t *testing.T) {
	st, err := study.New(10, "테스트")
	require.NoError(t, err)

	require.NoError(t, st.Open(time.Now()))
	require.Equal(t, study.StatusOpened, st.Status())
	require.True(t, st.IsOpened())
	require.NotNil(t, st.OpenedAt())
	require.False(t, st.OpenedAt().Before(st.CreatedAt()))
}

func TestStudy_OpenClampsToCreation(t *testing.T) {
	st, err := study.New(10, "")
	require.NoError(t, err)

	require.NoError(t, st.Open(st.CreatedAt().Add(-time.Hour)))
	require.Equal(t, st.CreatedAt(), *st.OpenedAt())
}

func TestStudy_OpenTwiceFails(t *testing.T) {
	st, err := study.New(10, "")
	require.NoError(t, err)
	require.NoError(t, st.Open(time.Now()))
	openedAt := *st.OpenedAt()

	err = st.Open(time.Now().Add(time.Hour))
	require.ErrorIs(t, err, study.ErrNotDraft)
	require.Equal(t, study.StatusOpened, st.Status())
	require.Equal(t, openedAt, *st.OpenedAt())
}

func TestStudy_AssignOwnerOnce(t *testing.T) {
	st, err := study.New(10, "")
	require.NoError(t, err)

	require.ErrorIs(t, st.AssignOwner(nil), study.ErrInvalidArgument)

	owner := &member.Member{ID: 1, Email: "khy07181@gmail.com"}
	require.NoError(t, st.AssignOwner(owner))
	require.Same(t, owner, st.Owner())

	err = st.AssignOwner(&member.Member{ID: 2, Email: "other@example.com"})
	require.ErrorIs(t, err, study.ErrOwnerAlreadyAssigned)
	require.Same(t, owner, st.Owner())
}

func TestStudy_SetID(t *testing.T) {
	st, err := study.New(10, "")
	require.NoError(t, err)

	require.ErrorIs(t, st.SetID(""), study.ErrInvalidArgument)
	require.NoError(t, st.SetID("s1"))
	require.NoError(t, st.SetID("s1"))
	require.ErrorIs(t, st.SetID("s2"), study.ErrInvalidArgument)
	require.Equal(t, "s1", st.ID())
}

func TestRestore(t *testing.T) {
	openedAt := time.Now()
	st, err := study.Restore(study.Snapshot{
		ID:         "s1",
		Status:     study.StatusOpened,
		LimitCount: 5,
		Name:       "go",
		Owner:      &member.Member{ID: 1},
		OpenedAt:   &openedAt,
		CreatedAt:  openedAt.Add(-time.Minute),
	})
	require.NoError(t, err)
	require.Equal(t, "s1", st.ID())
	require.True(t, st.IsOpened())

	_, err = study.Restore(study.Snapshot{Status: study.StatusDraft, LimitCount: 0})
	require.ErrorIs(t, err, study.ErrInvalidArgument)

	_, err = study.Restore(study.Snapshot{Status: "CLOSED", LimitCount: 1})
	require.ErrorIs(t, err, study.ErrInvalidArgument)

	_, err = study.Restore(study.Snapshot{Status: study.StatusOpened, LimitCount: 1})
	require.ErrorIs(t, err, study.ErrInvalidArgument)
}

func TestStudy_MarshalJSON(t *testing.T) {
	st, err := study.New(10, "테스트")
	require.NoError(t, err)
	require.NoError(t, st.AssignOwner(&member.Member{ID: 1, Email: "khy07181@gmail.com"}))

	data, err := json.Marshal(st)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "DRAFT", decoded["status"])
	require.Equal(t, float64(10), decoded["limit_count"])
	require.Equal(t, "테스트", decoded["name"])
	require.NotContains(t, decoded, "id")
	require.NotContains(t, decoded, "opened_at")
}
