package notification

import "errors"

// ErrInvalidInput indicates an invalid notification.
var ErrInvalidInput = errors.New("invalid notification input")
