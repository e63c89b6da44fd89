package stor

import "errors"

var ErrActivityNotFound = errors.New("activity not found")
var ErrAlreadySignedUp = errors.New("already signed up")
var ErrNotSignedUp = errors.New("not signed up")
