package ports

// BlobStore owns raw file bytes and derived thumbnails on durable storage.
// Write assigns a fresh opaque path on every call; paths are never reused.
// WriteAt targets a known path and overwrites, which is what makes
// redelivered thumbnail jobs idempotent.
type BlobStore interface {
	Write(data []byte) (string, error)
	WriteAt(path string, data []byte) error
	Read(path string) ([]byte, error)
	Exists(path string) bool
}
