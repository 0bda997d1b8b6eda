package errors

import "errors"

var ErrNotFound = errors.New("connection not found")
