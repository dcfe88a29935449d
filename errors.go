package bloomset

import "errors"

// ErrInvalidArgument is returned when construction parameters are outside
// their valid domain. It is always wrapped with a description of the
// offending value; use errors.Is to check for it.
var ErrInvalidArgument = errors.New("bloomset: invalid argument")
