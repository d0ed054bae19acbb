package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-entities/internal/schema"
)

// NewGetRecordHandler returns an HTTP handler fetching one record of the caller.
// @Summary Get record
// @Tags entities
// @Produce json
// @Param entity path string true "Entity name"
// @Param id path int true "Record id"
// @Param fields query string false "Comma separated fields to return"
// @Success 200 {object} models.Record
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /entities/{entity}/{id} [get]
// @Security BearerAuth
func NewGetRecordHandler(svc RecordGetter, entity *schema.Entity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := currentUser(w, r)
		if !ok {
			return
		}

		id, ok := parseID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid id")
			return
		}

		rec, err := svc.Get(r.Context(), id, owner)
		if err != nil {
			writeServiceError(w, r, entity, "get", err)
			return
		}

		writeJSON(w, http.StatusOK, rec.Project(parseFields(r)))
	}
}
