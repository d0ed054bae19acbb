package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-entities/internal/logger"
	"github.com/sbilibin2017/gw-entities/internal/schema"
)

// NewListRecordsHandler returns an HTTP handler listing the caller's records.
// @Summary List own records
// @Description Filter, sort and paginate records owned by the current user.
// @Tags entities
// @Produce json
// @Param entity path string true "Entity name"
// @Param query query string false "Equality filters as a JSON object"
// @Param sort query string false "Sort field, prefix with - for descending"
// @Param skip query int false "Records to skip" default(0)
// @Param limit query int false "Page size" default(20)
// @Param fields query string false "Comma separated fields to return"
// @Success 200 {object} models.ListResult
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /entities/{entity} [get]
// @Security BearerAuth
func NewListRecordsHandler(svc RecordLister, entity *schema.Entity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := currentUser(w, r)
		if !ok {
			return
		}
		listRecords(w, r, svc, entity, owner)
	}
}

// NewListAllRecordsHandler returns an HTTP handler listing records of every owner.
// @Summary List all records
// @Description Filter, sort and paginate records without owner restriction.
// @Tags entities
// @Produce json
// @Param entity path string true "Entity name"
// @Param query query string false "Equality filters as a JSON object"
// @Param sort query string false "Sort field, prefix with - for descending"
// @Param skip query int false "Records to skip" default(0)
// @Param limit query int false "Page size" default(20)
// @Param fields query string false "Comma separated fields to return"
// @Success 200 {object} models.ListResult
// @Failure 400 {object} handlers.ErrorResponse
// @Router /entities/{entity}/all [get]
func NewListAllRecordsHandler(svc RecordLister, entity *schema.Entity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listRecords(w, r, svc, entity, "")
	}
}

func listRecords(w http.ResponseWriter, r *http.Request, svc RecordLister, entity *schema.Entity, owner string) {
	ctx := r.Context()

	q, err := parseListQuery(r)
	if err != nil {
		logger.FromContext(ctx).Warnw("invalid list parameters", "entity", entity.Name, "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	q.Owner = owner

	result, err := svc.List(ctx, q)
	if err != nil {
		writeServiceError(w, r, entity, "list", err)
		return
	}

	if fields := parseFields(r); len(fields) > 0 {
		for i, item := range result.Items {
			result.Items[i] = item.Project(fields)
		}
	}

	logger.FromContext(ctx).Debugw("records listed", "entity", entity.Name, "total", result.Total)
	writeJSON(w, http.StatusOK, result)
}
