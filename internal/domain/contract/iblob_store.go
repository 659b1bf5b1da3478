package contract

import "context"

// IBlobStore defines the interface for durable media storage. Upload accepts
// raw bytes and a file name and returns a durable URL synchronously; a failure
// here must abort food creation before any record is written.
type IBlobStore interface {
	Upload(ctx context.Context, data []byte, fileName string) (string, error)
}
