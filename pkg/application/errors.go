package application

import "errors"

// ErrHandlerNotFound is returned by buses when nothing is registered under a name.
var ErrHandlerNotFound = errors.New("no handler registered")
