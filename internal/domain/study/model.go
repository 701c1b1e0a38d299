package study

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/khy07181/the-java-test/internal/domain/member"
)

// Status represents the lifecycle state of a study.
type Status string

const (
	StatusDraft  Status = "DRAFT"
	StatusOpened Status = "OPENED"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusOpened
}

// Study is a plannable group activity with a capacity limit.
//
// A study starts in DRAFT with no owner and no id. The owner is assigned
// once during creation, the id by the store, and Open moves it to OPENED.
// OPENED is terminal.
type Study struct {
	id         string
	status     Status
	limitCount int
	name       string
	owner      *member.Member
	openedAt   *time.Time
	createdAt  time.Time
}

// New creates a DRAFT study. limit must be positive.
func New(limit int, name string) (*Study, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be greater than 0, got %d", ErrInvalidArgument, limit)
	}
	return &Study{
		status:     StatusDraft,
		limitCount: limit,
		name:       name,
		createdAt:  time.Now(),
	}, nil
}

// Snapshot is the persisted form of a study.
type Snapshot struct {
	ID         string
	Status     Status
	LimitCount int
	Name       string
	Owner      *member.Member
	OpenedAt   *time.Time
	CreatedAt  time.Time
}

// Restore rebuilds a study from persisted state.
func Restore(snap Snapshot) (*Study, error) {
	if snap.LimitCount <= 0 {
		return nil, fmt.Errorf("%w: limit must be greater than 0, got %d", ErrInvalidArgument, snap.LimitCount)
	}
	if !snap.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, snap.Status)
	}
	if snap.Status == StatusOpened && snap.OpenedAt == nil {
		return nil, fmt.Errorf("%w: opened study without opened time", ErrInvalidArgument)
	}
	return &Study{
		id:         snap.ID,
		status:     snap.Status,
		limitCount: snap.LimitCount,
		name:       snap.Name,
		owner:      snap.Owner,
		openedAt:   snap.OpenedAt,
		createdAt:  snap.CreatedAt,
	}, nil
}

// Snapshot returns the persisted form of the study.
func (s *Study) Snapshot() Snapshot {
	return Snapshot{
		ID:         s.id,
		Status:     s.status,
		LimitCount: s.limitCount,
		Name:       s.name,
		Owner:      s.owner,
		OpenedAt:   s.openedAt,
		CreatedAt:  s.createdAt,
	}
}

func (s *Study) ID() string            { return s.id }
func (s *Study) Status() Status        { return s.status }
func (s *Study) LimitCount() int       { return s.limitCount }
func (s *Study) Name() string          { return s.name }
func (s *Study) Owner() *member.Member { return s.owner }
func (s *Study) CreatedAt() time.Time  { return s.createdAt }
func (s *Study) IsOpened() bool        { return s.status == StatusOpened }

// OpenedAt returns when the study was opened, or nil while in DRAFT.
func (s *Study) OpenedAt() *time.Time {
	if s.openedAt == nil {
		return nil
	}
	t := *s.openedAt
	return &t
}

// AssignOwner sets the owner. It can only be called once.
func (s *Study) AssignOwner(owner *member.Member) error {
	if owner == nil {
		return fmt.Errorf("%w: owner is required", ErrInvalidArgument)
	}
	if s.owner != nil {
		return ErrOwnerAlreadyAssigned
	}
	s.owner = owner
	return nil
}

func (s *Study) clearOwner() {
	s.owner = nil
}

// SetID records the identity assigned by a store.
func (s *Study) SetID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidArgument)
	}
	if s.id != "" && s.id != id {
		return fmt.Errorf("%w: id already assigned", ErrInvalidArgument)
	}
	s.id = id
	return nil
}

// Open transitions a DRAFT study to OPENED, stamped with now.
// Opening a study that is not in DRAFT fails and leaves it unchanged.
func (s *Study) Open(now time.Time) error {
	if s.status != StatusDraft {
		return ErrNotDraft
	}
	if now.Before(s.createdAt) {
		now = s.createdAt
	}
	s.openedAt = &now
	s.status = StatusOpened
	return nil
}

type studyJSON struct {
	ID         string         `json:"id,omitempty"`
	Status     Status         `json:"status"`
	LimitCount int            `json:"limit_count"`
	Name       string         `json:"name,omitempty"`
	Owner      *member.Member `json:"owner,omitempty"`
	OpenedAt   *time.Time     `json:"opened_at,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// MarshalJSON encodes the study's current state.
func (s *Study) MarshalJSON() ([]byte, error) {
	return json.Marshal(studyJSON(s.Snapshot()))
}
