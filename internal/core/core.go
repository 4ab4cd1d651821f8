// Package core provides small shared abstractions (filesystem access,
// marshaling, file permissions) used across pyspan packages.
package core

import "io/fs"

// Marshaler abstracts serialization so savers can be tested with
// failing or recording implementations.
type Marshaler interface {
	Marshal(v any) ([]byte, error)
}

// PermOwnerRW is the permission set used for files pyspan creates
// (owner read/write only).
const PermOwnerRW fs.FileMode = 0o600
