package searchindex

import "errors"

var (
	ErrInputNotFound   = errors.New("search index not found")
	ErrInputUnreadable = errors.New("search index unreadable")
	ErrDecode          = errors.New("search index malformed")
	ErrWrite           = errors.New("search index write failed")
)
