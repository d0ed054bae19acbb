package handlers

import (
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-entities/internal/logger"
	"github.com/sbilibin2017/gw-entities/internal/schema"
	"github.com/sbilibin2017/gw-entities/internal/services"
)

// DeleteResponse represents a successful delete
// swagger:model DeleteResponse
type DeleteResponse struct {
	// Success message
	// default: Chat history deleted successfully
	Message string `json:"message"`

	// Deleted record id
	ID int64 `json:"id"`
}

// BatchDeleteRequest represents the JSON body for deleting several records
// swagger:model BatchDeleteRequest
type BatchDeleteRequest struct {
	// Ids to delete
	// required: true
	IDs []int64 `json:"ids"`
}

// BatchDeleteResponse represents a successful batch delete
// swagger:model BatchDeleteResponse
type BatchDeleteResponse struct {
	// Success message
	// default: Successfully deleted 2 chat_history
	Message string `json:"message"`

	// Number of records removed
	DeletedCount int `json:"deleted_count"`
}

// NewDeleteRecordHandler returns an HTTP handler deleting a record of the caller.
// @Summary Delete record
// @Tags entities
// @Produce json
// @Param entity path string true "Entity name"
// @Param id path int true "Record id"
// @Success 200 {object} handlers.DeleteResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /entities/{entity}/{id} [delete]
// @Security BearerAuth
func NewDeleteRecordHandler(svc RecordDeleter, entity *schema.Entity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		owner, ok := currentUser(w, r)
		if !ok {
			return
		}

		id, ok := parseID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid id")
			return
		}

		found, err := svc.Delete(ctx, id, owner)
		if err != nil {
			writeServiceError(w, r, entity, "delete", err)
			return
		}
		if !found {
			logger.FromContext(ctx).Warnw("record not found for deletion", "entity", entity.Name, "id", id)
			writeServiceError(w, r, entity, "delete", services.ErrNotFound)
			return
		}

		logger.FromContext(ctx).Infow("record deleted", "entity", entity.Name, "id", id)
		writeJSON(w, http.StatusOK, DeleteResponse{
			Message: entity.Label + " deleted successfully",
			ID:      id,
		})
	}
}

// NewBatchDeleteRecordsHandler returns an HTTP handler deleting several records.
// Ids that are not found are skipped.
// @Summary Batch delete records
// @Tags entities
// @Accept json
// @Produce json
// @Param entity path string true "Entity name"
// @Param request body handlers.BatchDeleteRequest true "Batch delete request"
// @Success 200 {object} handlers.BatchDeleteResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /entities/{entity}/batch [delete]
// @Security BearerAuth
func NewBatchDeleteRecordsHandler(svc RecordDeleter, entity *schema.Entity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		owner, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req BatchDeleteRequest
		if err := decodeBody(r.Body, &req); err != nil {
			logger.FromContext(ctx).Warnw("failed to decode batch delete request", "entity", entity.Name, "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		deleted, err := svc.BatchDelete(ctx, req.IDs, owner)
		if err != nil {
			writeServiceError(w, r, entity, "batch_delete", err)
			return
		}

		logger.FromContext(ctx).Infow("records batch deleted", "entity", entity.Name, "count", deleted)
		writeJSON(w, http.StatusOK, BatchDeleteResponse{
			Message:      fmt.Sprintf("Successfully deleted %d %s", deleted, entity.Name),
			DeletedCount: deleted,
		})
	}
}
