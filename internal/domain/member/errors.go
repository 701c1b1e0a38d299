package member

import "errors"

// ErrInvalidMember indicates the member failed validation.
var ErrInvalidMember = errors.New("invalid member")
