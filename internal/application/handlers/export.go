package handlers

import (
	"fmt"

	"github.com/seanwalsh/declog/internal/domain/services"
	"github.com/seanwalsh/declog/internal/infrastructure/filestore/local"
)

// ExportHandler writes the open document to local disk in the same format
// used for remote writes.
type ExportHandler struct {
	session *services.Session
}

// NewExportHandler creates a new export handler.
func NewExportHandler(session *services.Session) *ExportHandler {
	return &ExportHandler{session: session}
}

// Export writes the open document to the given path.
func (h *ExportHandler) Export(path string) error {
	doc, open := h.session.Current()
	if !open {
		return fmt.Errorf("no document is open")
	}
	if err := local.WriteDocument(path, doc); err != nil {
		return fmt.Errorf("exporting document: %w", err)
	}
	return nil
}
