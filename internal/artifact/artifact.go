// Package artifact names output files the CLI writes to the
// (write-only, shared) artifact directory. Filenames are UUIDs to avoid
// collision between concurrent requests, per spec §5's shared-resource
// policy: no locks are required because names never collide.
package artifact

import (
	"path/filepath"

	"github.com/google/uuid"
)

// Name returns a new random filename with the given extension (including
// the leading dot, e.g. ".png"), suitable for joining onto an output
// directory.
func Name(ext string) string {
	return uuid.NewString() + ext
}

// Path joins dir with a freshly generated Name.
func Path(dir, ext string) string {
	return filepath.Join(dir, Name(ext))
}
