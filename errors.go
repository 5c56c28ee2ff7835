package lcgrand

import "github.com/pkg/errors"

// ErrInvalidArgument is returned, wrapped, when a count or distribution
// parameter is out of its domain.
var ErrInvalidArgument = errors.New("lcgrand: invalid argument")
