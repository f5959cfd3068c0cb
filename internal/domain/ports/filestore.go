package ports

import (
	"context"
	"time"
)

// FileDescriptor describes a remote file without its content.
type FileDescriptor struct {
	ID       string
	Name     string
	Modified time.Time
}

// FileStore defines the interface to the remote file-storage service. All
// operations require a valid bearer credential and return a TransportError
// on network or service failure, or an AuthError when the credential is
// missing or rejected. Implementations perform no retries and no conflict
// checking; both belong to the layers above.
type FileStore interface {
	// List returns descriptors for all files visible to the account.
	// Filtering by naming convention is the caller's concern.
	List(ctx context.Context) ([]FileDescriptor, error)

	// Create writes a new remote file with the given name and content and
	// returns its descriptor, including the server-assigned modification
	// timestamp.
	Create(ctx context.Context, name string, data []byte) (FileDescriptor, error)

	// Read fetches a file's raw bytes along with the modification timestamp
	// observed at fetch time.
	Read(ctx context.Context, fileID string) ([]byte, time.Time, error)

	// Stat fetches a file's current metadata without its content.
	Stat(ctx context.Context, fileID string) (FileDescriptor, error)

	// Write replaces a file's content and returns the new modification
	// timestamp reported by the service.
	Write(ctx context.Context, fileID string, data []byte) (time.Time, error)
}
