package query

import "errors"

var ErrBusNotFound = errors.New("bus not found")
