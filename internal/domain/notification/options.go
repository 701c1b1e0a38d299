package notification

// ListOptions provides filtering options for listing notifications.
type ListOptions struct {
	MemberID *int64
	StudyID  *string
	Kind     *Kind
	Limit    int
	Offset   int
}
