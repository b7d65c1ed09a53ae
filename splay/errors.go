package splay

import "errors"

// ErrNotMember is returned by handle-based operations when the handle is not
// currently linked into this tree.
var ErrNotMember = errors.New("splay: not a member")
