package study

import "errors"

var (
	// ErrInvalidArgument indicates invalid study input, such as a non-positive limit.
	ErrInvalidArgument = errors.New("invalid study argument")
	// ErrMemberNotFound indicates the requested owner doesn't exist.
	ErrMemberNotFound = errors.New("member not found")
	// ErrStudyNotFound indicates the study doesn't exist.
	ErrStudyNotFound = errors.New("study not found")
	// ErrNotDraft indicates a transition that requires a DRAFT study.
	ErrNotDraft = errors.New("study is not in draft status")
	// ErrOwnerAlreadyAssigned indicates the study already has an owner.
	ErrOwnerAlreadyAssigned = errors.New("study owner already assigned")
)
