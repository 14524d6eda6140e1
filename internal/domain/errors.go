package domain

import "errors"

// ErrNotAuthorized is returned when no access token is persisted
var ErrNotAuthorized = errors.New("user is not authorized")
