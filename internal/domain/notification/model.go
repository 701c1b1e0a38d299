package notification

import "time"

// Kind identifies what a notification announces.
type Kind string

const (
	KindStudyCreated   Kind = "study_created"
	KindMemberInvolved Kind = "member_involved"
)

// Notification is an entry in the notification outbox.
type Notification struct {
	ID        int64     `json:"id"`
	Kind      Kind      `json:"kind"`
	StudyID   *string   `json:"study_id,omitempty"`
	MemberID  int64     `json:"member_id"`
	Recipient string    `json:"recipient"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}
