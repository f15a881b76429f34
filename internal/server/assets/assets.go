// Package assets implements the shared upload → validate → store →
// replace → delete lifecycle used by every entity that owns an externally
// hosted file (project image, skill icon, certificate image, user profile
// and CV).
package assets

import (
	"context"
	"fmt"
	"slices"

	"github.com/fahmiks/portfolio-api/internal/common"
	"github.com/fahmiks/portfolio-api/internal/logging"
	"github.com/fahmiks/portfolio-api/internal/server/models"
	"github.com/fahmiks/portfolio-api/internal/server/storage"
)

// MaxUploadBytes is the uniform per-file size limit.
const MaxUploadBytes = 2 * 1024 * 1024

// Upload is a file received from a client, already read into memory.
type Upload struct {
	Data        []byte
	ContentType string
	Size        int64
}

// Class is the policy governing one upload slot: which mime types are
// accepted, the size limit, and the storage folder the object lands in.
type Class struct {
	AllowedMime  []string
	MaxSizeBytes int64
	Folder       string
	// Reason is the client-facing message used when validation fails.
	Reason string
}

var (
	ProjectImage = Class{
		AllowedMime:  []string{"image/jpg", "image/jpeg", "image/png", "image/webp"},
		MaxSizeBytes: MaxUploadBytes,
		Folder:       "project",
		Reason:       "Invalid image file! Must be JPG, JPEG, PNG, or WEBP under 2MB.",
	}

	SkillIcon = Class{
		AllowedMime:  []string{"image/jpg", "image/jpeg", "image/png", "image/svg+xml", "image/webp"},
		MaxSizeBytes: MaxUploadBytes,
		Folder:       "skill",
		Reason:       "Invalid icon image file! Must be JPG, JPEG, PNG, SVG, or WEBP under 2MB.",
	}

	CertificateImage = Class{
		AllowedMime:  []string{"image/jpg", "image/jpeg", "image/png", "image/webp"},
		MaxSizeBytes: MaxUploadBytes,
		Folder:       "certificate",
		Reason:       "Invalid image file! Must be JPG, JPEG, PNG, or WEBP under 2MB.",
	}

	ProfileImage = Class{
		AllowedMime:  []string{"image/jpg", "image/jpeg", "image/png", "image/webp"},
		MaxSizeBytes: MaxUploadBytes,
		Folder:       "profile",
		Reason:       "Invalid profile image file! Must be JPG, JPEG, PNG, or WEBP under 2MB.",
	}

	CVDocument = Class{
		AllowedMime:  []string{"application/pdf"},
		MaxSizeBytes: MaxUploadBytes,
		Folder:       "my_cv",
		Reason:       "Invalid file! Must be PDF under 2MB.",
	}
)

// Validate rejects the upload if its mime type is outside the allowlist OR
// its size exceeds the limit. Either violation alone is enough.
func (c Class) Validate(u *Upload) error {
	if u == nil || !slices.Contains(c.AllowedMime, u.ContentType) || u.Size > c.MaxSizeBytes {
		return fmt.Errorf("%w: %s", common.ErrInvalidAsset, c.Reason)
	}
	return nil
}

// Lifecycle runs the asset protocol against the object store.
type Lifecycle struct {
	store  storage.ObjectStore
	logger logging.Logger
}

func NewLifecycle(store storage.ObjectStore, logger logging.Logger) *Lifecycle {
	return &Lifecycle{store: store, logger: logger.With("module", "assets")}
}

// Store validates the upload against class and pushes it to the object
// store. Storage failures surface as common.ErrStorageUnavailable.
func (l *Lifecycle) Store(ctx context.Context, u *Upload, class Class) (models.AssetRef, error) {
	if err := class.Validate(u); err != nil {
		return models.AssetRef{}, err
	}

	url, key, err := l.store.Upload(ctx, u.Data, u.ContentType, class.Folder)
	if err != nil {
		l.logger.Error(ctx, "asset upload failed", "folder", class.Folder, "error", err)
		return models.AssetRef{}, common.ErrStorageUnavailable
	}

	return models.AssetRef{URL: url, Key: key}, nil
}

// Replace deletes the previous object (when present) and stores the new
// upload. The old-object delete runs first but is best-effort: a failure is
// logged and must not block the replacement, otherwise a transient storage
// error would leave the entity without any asset at all.
func (l *Lifecycle) Replace(ctx context.Context, old models.AssetRef, u *Upload, class Class) (models.AssetRef, error) {
	if err := class.Validate(u); err != nil {
		return models.AssetRef{}, err
	}

	if old.Present() {
		if err := l.store.Delete(ctx, old.Key); err != nil {
			l.logger.Warn(ctx, "stale asset cleanup failed", "key", old.Key, "error", err)
		}
	}

	return l.Store(ctx, u, class)
}

// Delete removes the object behind ref. An empty ref is a no-op so callers
// can delete unconditionally. A storage failure propagates so entity
// deletion can abort with the database row intact.
func (l *Lifecycle) Delete(ctx context.Context, ref models.AssetRef) error {
	if !ref.Present() {
		return nil
	}

	if err := l.store.Delete(ctx, ref.Key); err != nil {
		l.logger.Error(ctx, "asset delete failed", "key", ref.Key, "error", err)
		return common.ErrStorageUnavailable
	}

	return nil
}
