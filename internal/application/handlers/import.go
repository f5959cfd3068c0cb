package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/seanwalsh/declog/internal/domain/entities"
	"github.com/seanwalsh/declog/internal/domain/services"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// ImportHandler feeds locally-read bytes through the same normalizer as a
// remote read. A schema error blocks the import entirely; nothing is
// replaced or uploaded.
type ImportHandler struct {
	normalizer  *services.Normalizer
	syncService *services.SyncService
	session     *services.Session
}

// NewImportHandler creates a new import handler.
func NewImportHandler(normalizer *services.Normalizer, syncService *services.SyncService, session *services.Session) *ImportHandler {
	return &ImportHandler{
		normalizer:  normalizer,
		syncService: syncService,
		session:     session,
	}
}

// ImportResult reports what an import did.
type ImportResult struct {
	Decisions int
	Repairs   []services.Repair
}

// Replace normalizes the given bytes and replaces the content of the
// currently open journal file, then saves. The session's sync baseline is
// kept, so an external modification since the last sync still surfaces as a
// conflict.
func (h *ImportHandler) Replace(ctx context.Context, data []byte, force bool) (*ImportResult, error) {
	if _, open := h.session.Current(); !open {
		return nil, fmt.Errorf("no document is open (open a journal file or import with --create)")
	}

	doc, repairs, err := h.normalizer.Normalize(data)
	if err != nil {
		return nil, err
	}

	h.session.Open(h.session.FileID(), h.session.FileName(), doc, h.session.LastSyncedAt())
	if err := h.syncService.Save(ctx, force); err != nil {
		return nil, err
	}

	return &ImportResult{Decisions: len(doc.Decisions), Repairs: repairs}, nil
}

// Create normalizes the given bytes and creates a new remote journal file
// from them.
func (h *ImportHandler) Create(ctx context.Context, accountSlug string, data []byte) (*ImportResult, error) {
	doc, repairs, err := h.normalizer.Normalize(data)
	if err != nil {
		return nil, err
	}

	name := entities.NewFileName(accountSlug, timeNow())
	if _, err := h.syncService.CreateFrom(ctx, name, doc); err != nil {
		return nil, err
	}

	return &ImportResult{Decisions: len(doc.Decisions), Repairs: repairs}, nil
}
