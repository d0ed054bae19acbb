package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-entities/internal/logger"
	"github.com/sbilibin2017/gw-entities/internal/models"
	"github.com/sbilibin2017/gw-entities/internal/schema"
)

// BatchUpdateRequest represents the JSON body for updating several records
// swagger:model BatchUpdateRequest
type BatchUpdateRequest struct {
	// Updates to apply, in order
	// required: true
	Items []models.BatchUpdateItem `json:"items"`
}

// NewUpdateRecordHandler returns an HTTP handler patching a record of the caller.
// @Summary Update record
// @Description Applies the non-null fields of the body. id and user_id cannot be changed.
// @Tags entities
// @Accept json
// @Produce json
// @Param entity path string true "Entity name"
// @Param id path int true "Record id"
// @Param request body object true "Fields to update"
// @Success 200 {object} models.Record
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /entities/{entity}/{id} [put]
// @Security BearerAuth
func NewUpdateRecordHandler(svc RecordUpdater, entity *schema.Entity) http.HandlerFunc {
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

		patch, err := schema.DecodeObject(r.Body)
		if err != nil {
			logger.FromContext(ctx).Warnw("failed to decode update request", "entity", entity.Name, "id", id, "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		rec, err := svc.Update(ctx, id, patch, owner)
		if err != nil {
			writeServiceError(w, r, entity, "update", err)
			return
		}

		logger.FromContext(ctx).Infow("record updated", "entity", entity.Name, "id", id)
		writeJSON(w, http.StatusOK, rec)
	}
}

// NewBatchUpdateRecordsHandler returns an HTTP handler patching several records.
// Records that are not found are skipped.
// @Summary Batch update records
// @Tags entities
// @Accept json
// @Produce json
// @Param entity path string true "Entity name"
// @Param request body handlers.BatchUpdateRequest true "Batch update request"
// @Success 200 {array} models.Record
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /entities/{entity}/batch [put]
// @Security BearerAuth
func NewBatchUpdateRecordsHandler(svc RecordUpdater, entity *schema.Entity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		owner, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req BatchUpdateRequest
		if err := decodeBody(r.Body, &req); err != nil {
			logger.FromContext(ctx).Warnw("failed to decode batch update request", "entity", entity.Name, "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		recs, err := svc.BatchUpdate(ctx, req.Items, owner)
		if err != nil {
			writeServiceError(w, r, entity, "batch_update", err)
			return
		}

		logger.FromContext(ctx).Infow("records batch updated", "entity", entity.Name, "count", len(recs))
		writeJSON(w, http.StatusOK, recs)
	}
}
