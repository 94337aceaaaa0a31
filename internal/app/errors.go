package app

import "errors"

var (
	ErrInvalidOutputFormat = errors.New("output format must be text or json")
	ErrInvalidPoolSize     = errors.New("linter pool size must not be negative")
	ErrUnknownLints        = errors.New("config names unknown lints")
	ErrProblemsFound       = errors.New("commit message has problems")
	ErrEmptyMessage        = errors.New("commit message is empty")
)
