package clients

import "errors"

var ErrSessionNotFound = errors.New("session not found")
