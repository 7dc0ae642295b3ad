package service

import "errors"

// ErrInvalidInput marks rejected request data, so the delivery layer can
// answer with a client error instead of a server failure.
var ErrInvalidInput = errors.New("invalid input")
