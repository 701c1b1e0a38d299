package study

// ListOptions provides filtering options for listing studies.
type ListOptions struct {
	OwnerID *int64
	Status  *Status
	Limit   int
	Offset  int
}
