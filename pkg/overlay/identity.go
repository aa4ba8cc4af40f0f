package overlay

import "sync/atomic"

// nextIdentity is an atomic counter for unique identity tokens.
var nextIdentity uint64

// Identity uniquely identifies one presentation for targeted dismissal.
// It is an opaque token, never derived from object representation.
// The zero value is never issued and marks "no identity".
type Identity uint64

// NewIdentity returns a process-unique identity token. Callers obtain
// one at construction time and keep it for the life of the presented
// object.
func NewIdentity() Identity {
	return Identity(atomic.AddUint64(&nextIdentity, 1))
}
