// Package storage abstracts the external object store that hosts uploaded
// files (project images, skill icons, certificates, the CV).
package storage

import "context"

// ObjectStore is the narrow contract the asset lifecycle depends on.
//
// Upload stores data under a generated key inside folder and returns the
// public URL together with the key, which doubles as the deletion handle.
// Delete removes the object behind a key; deleting a key that no longer
// exists is a no-op.
type ObjectStore interface {
	Upload(ctx context.Context, data []byte, contentType string, folder string) (url string, key string, err error)
	Delete(ctx context.Context, key string) error
}
