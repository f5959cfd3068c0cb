// Package handlers contains thin application-level wrappers that the CLI
// drives. Handlers coordinate services and shape results for presentation;
// they own no domain logic.
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/seanwalsh/declog/internal/domain/entities"
	"github.com/seanwalsh/declog/internal/domain/ports"
	"github.com/seanwalsh/declog/internal/domain/services"
)

// DocumentHandler handles opening, creating, listing, and saving journal
// files.
type DocumentHandler struct {
	syncService *services.SyncService
	session     *services.Session
}

// NewDocumentHandler creates a new document handler.
func NewDocumentHandler(syncService *services.SyncService, session *services.Session) *DocumentHandler {
	return &DocumentHandler{
		syncService: syncService,
		session:     session,
	}
}

// Status describes the current session.
type Status struct {
	Open         bool
	FileID       string
	FileName     string
	LastSyncedAt time.Time
	Decisions    int
}

// ListFiles returns journal files available in the remote store, newest
// first.
func (h *DocumentHandler) ListFiles(ctx context.Context) ([]ports.FileDescriptor, error) {
	files, err := h.syncService.ListFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing journal files: %w", err)
	}
	return files, nil
}

// Create creates a new empty journal file for the account and opens it.
func (h *DocumentHandler) Create(ctx context.Context, accountSlug string) (ports.FileDescriptor, error) {
	desc, err := h.syncService.Create(ctx, accountSlug)
	if err != nil {
		return ports.FileDescriptor{}, fmt.Errorf("creating journal file: %w", err)
	}
	return desc, nil
}

// Open loads a remote journal file into the session.
func (h *DocumentHandler) Open(ctx context.Context, fileID string) (*entities.Document, error) {
	doc, err := h.syncService.Load(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("opening journal file: %w", err)
	}
	return doc, nil
}

// Save persists the open document to the remote store. Force skips the
// conflict check; the user has chosen to overwrite.
func (h *DocumentHandler) Save(ctx context.Context, force bool) error {
	return h.syncService.Save(ctx, force)
}

// Close discards the open document.
func (h *DocumentHandler) Close() {
	h.session.Close()
}

// Status reports the session state.
func (h *DocumentHandler) Status() Status {
	doc, open := h.session.Current()
	st := Status{
		Open:         open,
		FileID:       h.session.FileID(),
		FileName:     h.session.FileName(),
		LastSyncedAt: h.session.LastSyncedAt(),
	}
	if open {
		st.Decisions = len(doc.Decisions)
	}
	return st
}
