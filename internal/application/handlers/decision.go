package handlers

import (
	"context"
	"fmt"

	"github.com/seanwalsh/declog/internal/domain/entities"
	"github.com/seanwalsh/declog/internal/domain/services"
)

// DecisionHandler handles decision mutations. Every mutation is saved to the
// remote store immediately; the conflict check runs on each save.
type DecisionHandler struct {
	journalService *services.JournalService
	syncService    *services.SyncService
}

// NewDecisionHandler creates a new decision handler.
func NewDecisionHandler(journalService *services.JournalService, syncService *services.SyncService) *DecisionHandler {
	return &DecisionHandler{
		journalService: journalService,
		syncService:    syncService,
	}
}

// Add creates a decision and saves the document.
func (h *DecisionHandler) Add(ctx context.Context, in services.DecisionInput, force bool) (*entities.Decision, error) {
	dec, err := h.journalService.AddDecision(in)
	if err != nil {
		return nil, fmt.Errorf("adding decision: %w", err)
	}
	if err := h.syncService.Save(ctx, force); err != nil {
		return nil, err
	}
	return dec, nil
}

// Update edits a decision and saves the document.
func (h *DecisionHandler) Update(ctx context.Context, id string, in services.DecisionInput, force bool) (*entities.Decision, error) {
	dec, err := h.journalService.UpdateDecision(id, in)
	if err != nil {
		return nil, fmt.Errorf("updating decision: %w", err)
	}
	if err := h.syncService.Save(ctx, force); err != nil {
		return nil, err
	}
	return dec, nil
}

// Remove deletes a decision and saves the document.
func (h *DecisionHandler) Remove(ctx context.Context, id string, force bool) error {
	if err := h.journalService.RemoveDecision(id); err != nil {
		return fmt.Errorf("removing decision: %w", err)
	}
	return h.syncService.Save(ctx, force)
}
