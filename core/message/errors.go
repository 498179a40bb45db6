package message

import "errors"

var (
	ErrUndefinedLanguage = errors.New("message: language tag is undefined")
	ErrNoMessages        = errors.New("message: messages cannot be nil")
)
