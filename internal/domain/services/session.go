package services

import (
	"sync"
	"time"

	"github.com/seanwalsh/declog/internal/domain/entities"
)

// Session holds the single currently-open document and its sync bookkeeping.
// Exactly one document may be open at a time; opening another implicitly
// discards the first (warning the user first is the caller's concern).
//
// The held document is mutated in place by callers; the session validates
// nothing on mutation, only tracks what is open and when it was last synced.
type Session struct {
	mu           sync.Mutex
	fileID       string
	fileName     string
	document     *entities.Document
	lastSyncedAt time.Time
}

// NewSession creates an empty session with no open document.
func NewSession() *Session {
	return &Session{}
}

// Open sets the open document and all bookkeeping atomically. The observed
// timestamp is the remote modification time seen when the document was
// fetched (or created).
func (s *Session) Open(fileID, fileName string, doc *entities.Document, observed time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fileID = fileID
	s.fileName = fileName
	s.document = doc
	s.lastSyncedAt = observed
}

// Close clears the open document and all bookkeeping.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fileID = ""
	s.fileName = ""
	s.document = nil
	s.lastSyncedAt = time.Time{}
}

// Current returns the held document, or false when no document is open.
func (s *Session) Current() (*entities.Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.document, s.document != nil
}

// FileID returns the open file's identifier, empty when nothing is open.
func (s *Session) FileID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fileID
}

// FileName returns the open file's name, empty when nothing is open.
func (s *Session) FileName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fileName
}

// LastSyncedAt returns the remote modification timestamp recorded at the
// last successful fetch or write.
func (s *Session) LastSyncedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSyncedAt
}

// AdvanceSync records the modification timestamp returned by a successful
// write.
func (s *Session) AdvanceSync(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSyncedAt = t
}
