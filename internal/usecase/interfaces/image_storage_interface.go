package interfaces

import (
	"context"
	"io"
)

//go:generate mockgen -source=image_storage_interface.go -destination=mocks/image_storage_mock.go -package=mock_interfaces

// IImageStorage uploads product images and returns an opaque public URL.
// The rest of the system only stores and passes through that URL string.
type IImageStorage interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (url string, err error)
}
