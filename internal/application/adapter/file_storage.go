// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"io"
)

// FileStorage stores named binary uploads and returns publicly resolvable
// URLs. Used only for optional receipt images.
type FileStorage interface {
	// IsAvailable reports whether a backing bucket is configured.
	IsAvailable() bool

	// Upload writes the object and returns its public URL.
	Upload(ctx context.Context, objectName, contentType string, body io.Reader) (string, error)
}
