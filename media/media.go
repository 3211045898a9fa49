// Package media talks to the external object store that holds asset
// images. The rest of the server only ever sees the opaque
// (url, public_id) handle pair.
package media

import (
	"context"
	"errors"
	"log"

	"inventory-server/config"
)

// ErrBadImage marks upload payloads that could not be decoded as an
// image. It is client input error, not a store failure.
var ErrBadImage = errors.New("undecodable image data")

type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

type Store interface {
	Upload(ctx context.Context, data []byte, mimeType string) (*UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}

var current Store

func Init() {
	if config.MEDIA_S3_BUCKET == "" {
		log.Print("Media store not configured, image uploads are disabled")
		return
	}
	current = NewS3Store()
}

func Get() Store {
	return current
}

func Set(s Store) {
	current = s
}

// DeleteRemote removes a remote object best-effort. By the time it runs
// the owning row is already gone (or the handle superseded), so failures
// are logged, not surfaced.
func DeleteRemote(ctx context.Context, publicID string) {
	if current == nil || publicID == "" {
		return
	}
	if err := current.Delete(ctx, publicID); err != nil {
		log.Printf("Media object %s: delete error: %v", publicID, err)
	}
}
