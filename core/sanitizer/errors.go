package sanitizer

import "errors"

var (
	ErrNotStructPointer = errors.New("sanitizer: must pass a pointer to struct")
	ErrUnknownSanitizer = errors.New("sanitizer: unknown sanitizer")
)
