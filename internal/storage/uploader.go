// Package storage abstracts where uploaded listing images land: a GCS
// bucket in deployed environments, local disk during development.
package storage

import (
	"context"
	"io"
)

type Uploader interface {
	// Upload stores the object under filename and returns its public URL.
	Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}
