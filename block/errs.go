package block

import "errors"

var (
	ErrBadPath     = errors.New("bad block path")
	ErrNoSuchBlock = errors.New("no such block")
)
