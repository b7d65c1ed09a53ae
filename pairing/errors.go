package pairing

import "errors"

// ErrNotMember is returned by handle-based operations when the handle is not
// currently linked into the heap it is used with.
var ErrNotMember = errors.New("pairing: not a member")
