package port

import "context"

// Uploader sends image data to the hosting provider and returns the permanent
// URL it can be served from. Input is whatever the client submitted, typically
// a base64 data URL; the provider is responsible for decoding and storage.
type Uploader interface {
	Upload(ctx context.Context, data string) (url string, err error)
}
