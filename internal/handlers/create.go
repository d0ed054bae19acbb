package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-entities/internal/logger"
	"github.com/sbilibin2017/gw-entities/internal/schema"
)

// BatchCreateRequest represents the JSON body for creating several records
// swagger:model BatchCreateRequest
type BatchCreateRequest struct {
	// Records to create, in order
	// required: true
	Items []map[string]any `json:"items"`
}

// NewCreateRecordHandler returns an HTTP handler creating a record owned by the caller.
// @Summary Create record
// @Description Stores a new record. user_id is taken from the token, id is assigned by the database.
// @Tags entities
// @Accept json
// @Produce json
// @Param entity path string true "Entity name"
// @Param request body object true "Record fields"
// @Success 201 {object} models.Record
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /entities/{entity} [post]
// @Security BearerAuth
func NewCreateRecordHandler(svc RecordCreator, entity *schema.Entity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		owner, ok := currentUser(w, r)
		if !ok {
			return
		}

		payload, err := schema.DecodeObject(r.Body)
		if err != nil {
			logger.FromContext(ctx).Warnw("failed to decode create request", "entity", entity.Name, "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		rec, err := svc.Create(ctx, payload, owner)
		if err != nil {
			writeServiceError(w, r, entity, "create", err)
			return
		}

		logger.FromContext(ctx).Infow("record created", "entity", entity.Name, "id", rec.ID())
		writeJSON(w, http.StatusCreated, rec)
	}
}

// NewBatchCreateRecordsHandler returns an HTTP handler creating several records at once.
// Any failure rolls back the whole batch.
// @Summary Batch create records
// @Tags entities
// @Accept json
// @Produce json
// @Param entity path string true "Entity name"
// @Param request body handlers.BatchCreateRequest true "Batch create request"
// @Success 201 {array} models.Record
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /entities/{entity}/batch [post]
// @Security BearerAuth
func NewBatchCreateRecordsHandler(svc RecordCreator, entity *schema.Entity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		owner, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req BatchCreateRequest
		if err := decodeBody(r.Body, &req); err != nil {
			logger.FromContext(ctx).Warnw("failed to decode batch create request", "entity", entity.Name, "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		recs, err := svc.BatchCreate(ctx, req.Items, owner)
		if err != nil {
			writeServiceError(w, r, entity, "batch_create", err)
			return
		}

		logger.FromContext(ctx).Infow("records batch created", "entity", entity.Name, "count", len(recs))
		writeJSON(w, http.StatusCreated, recs)
	}
}
