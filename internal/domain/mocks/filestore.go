// Package mocks provides hand-rolled test doubles for the domain ports.
package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/seanwalsh/declog/internal/domain/ports"
)

// File is a remote file held by the mock store.
type File struct {
	ID       string
	Name     string
	Data     []byte
	Modified time.Time
}

// FileStore is a mock implementation of ports.FileStore backed by an
// in-memory map. All state is mutex-guarded so tests can call it from
// multiple goroutines.
type FileStore struct {
	mu    sync.Mutex
	Files map[string]*File
	Err   error

	// Per-operation errors (separate from Err for fine-grained control)
	StatErr  error
	WriteErr error

	// StatHook and WriteHook, when set, run at the start of the operation,
	// outside the store's lock. Tests use them to block or observe calls.
	StatHook  func()
	WriteHook func()

	// Call tracking
	ListCallCount   int
	CreateCallCount int
	ReadCallCount   int
	StatCallCount   int
	WriteCallCount  int
	WriteLastData   []byte

	// WriteModified, when set, is returned as the modification timestamp of
	// successful writes.
	WriteModified time.Time

	nextID int
}

// NewFileStore creates an empty mock store.
func NewFileStore() *FileStore {
	return &FileStore{Files: make(map[string]*File)}
}

// Seed adds a file with the given content and modification time, returning
// its ID.
func (m *FileStore) Seed(name string, data []byte, modified time.Time) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.seedLocked(name, data, modified)
}

func (m *FileStore) seedLocked(name string, data []byte, modified time.Time) string {
	m.nextID++
	id := fmt.Sprintf("file-%d", m.nextID)
	m.Files[id] = &File{ID: id, Name: name, Data: data, Modified: modified}
	return id
}

// List returns descriptors for all files.
func (m *FileStore) List(ctx context.Context) ([]ports.FileDescriptor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListCallCount++
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]ports.FileDescriptor, 0, len(m.Files))
	for _, f := range m.Files {
		out = append(out, ports.FileDescriptor{ID: f.ID, Name: f.Name, Modified: f.Modified})
	}
	return out, nil
}

// Create stores a new file.
func (m *FileStore) Create(ctx context.Context, name string, data []byte) (ports.FileDescriptor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCallCount++
	if m.Err != nil {
		return ports.FileDescriptor{}, m.Err
	}
	modified := m.WriteModified
	if modified.IsZero() {
		modified = time.Now().UTC()
	}
	id := m.seedLocked(name, data, modified)
	return ports.FileDescriptor{ID: id, Name: name, Modified: modified}, nil
}

// Read returns a file's bytes and modification time.
func (m *FileStore) Read(ctx context.Context, fileID string) ([]byte, time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReadCallCount++
	if m.Err != nil {
		return nil, time.Time{}, m.Err
	}
	f, ok := m.Files[fileID]
	if !ok {
		return nil, time.Time{}, &ports.TransportError{Op: "read", Err: fmt.Errorf("file not found: %s", fileID)}
	}
	return f.Data, f.Modified, nil
}

// Stat returns a file's descriptor.
func (m *FileStore) Stat(ctx context.Context, fileID string) (ports.FileDescriptor, error) {
	m.mu.Lock()
	m.StatCallCount++
	hook := m.StatHook
	m.mu.Unlock()
	if hook != nil {
		hook()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StatErr != nil {
		return ports.FileDescriptor{}, m.StatErr
	}
	if m.Err != nil {
		return ports.FileDescriptor{}, m.Err
	}
	f, ok := m.Files[fileID]
	if !ok {
		return ports.FileDescriptor{}, &ports.TransportError{Op: "stat", Err: fmt.Errorf("file not found: %s", fileID)}
	}
	return ports.FileDescriptor{ID: f.ID, Name: f.Name, Modified: f.Modified}, nil
}

// Write replaces a file's content.
func (m *FileStore) Write(ctx context.Context, fileID string, data []byte) (time.Time, error) {
	m.mu.Lock()
	m.WriteCallCount++
	hook := m.WriteHook
	m.mu.Unlock()
	if hook != nil {
		hook()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return time.Time{}, m.WriteErr
	}
	if m.Err != nil {
		return time.Time{}, m.Err
	}
	f, ok := m.Files[fileID]
	if !ok {
		return time.Time{}, &ports.TransportError{Op: "write", Err: fmt.Errorf("file not found: %s", fileID)}
	}
	modified := m.WriteModified
	if modified.IsZero() {
		modified = time.Now().UTC()
	}
	f.Data = data
	f.Modified = modified
	m.WriteLastData = data
	return modified, nil
}
