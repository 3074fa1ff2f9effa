package query

import "errors"

var ErrQuery = errors.New("bad query")
