package handlers

import (
	"context"
	"fmt"

	"github.com/seanwalsh/declog/internal/domain/entities"
	"github.com/seanwalsh/declog/internal/domain/services"
)

// ReviewHandler handles review mutations on a decision, saving after each.
type ReviewHandler struct {
	journalService *services.JournalService
	syncService    *services.SyncService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(journalService *services.JournalService, syncService *services.SyncService) *ReviewHandler {
	return &ReviewHandler{
		journalService: journalService,
		syncService:    syncService,
	}
}

// Add appends a review to a decision and saves the document.
func (h *ReviewHandler) Add(ctx context.Context, decisionID string, in services.ReviewInput, force bool) (*entities.Review, error) {
	rev, err := h.journalService.AddReview(decisionID, in)
	if err != nil {
		return nil, fmt.Errorf("adding review: %w", err)
	}
	if err := h.syncService.Save(ctx, force); err != nil {
		return nil, err
	}
	return rev, nil
}

// Update edits a review and saves the document. The review's creation
// timestamp is preserved.
func (h *ReviewHandler) Update(ctx context.Context, decisionID, reviewID string, in services.ReviewInput, force bool) (*entities.Review, error) {
	rev, err := h.journalService.UpdateReview(decisionID, reviewID, in)
	if err != nil {
		return nil, fmt.Errorf("updating review: %w", err)
	}
	if err := h.syncService.Save(ctx, force); err != nil {
		return nil, err
	}
	return rev, nil
}

// Remove deletes a review and saves the document.
func (h *ReviewHandler) Remove(ctx context.Context, decisionID, reviewID string, force bool) error {
	if err := h.journalService.RemoveReview(decisionID, reviewID); err != nil {
		return fmt.Errorf("removing review: %w", err)
	}
	return h.syncService.Save(ctx, force)
}
