package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-entities/internal/models"
	"github.com/sbilibin2017/gw-entities/internal/schema"
)

// paramError is a malformed query parameter; its text is returned to the client.
type paramError string

func (e paramError) Error() string { return string(e) }

const (
	errInvalidQuery paramError = "Invalid query JSON format"
	errInvalidSkip  paramError = "Invalid skip parameter"
	errInvalidLimit paramError = "Invalid limit parameter"
)

func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

// parseListQuery reads query, sort, skip and limit. Range checks are left to the service.
func parseListQuery(r *http.Request) (models.ListQuery, error) {
	values := r.URL.Query()
	q := models.ListQuery{
		Sort:  values.Get("sort"),
		Limit: models.DefaultLimit,
	}

	if raw := values.Get("query"); raw != "" {
		filters, err := schema.DecodeObject(strings.NewReader(raw))
		if err != nil {
			return q, errInvalidQuery
		}
		q.Filters = filters
	}

	if raw := values.Get("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil {
			return q, errInvalidSkip
		}
		q.Skip = skip
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return q, errInvalidLimit
		}
		q.Limit = limit
	}

	return q, nil
}

// parseFields splits the comma separated fields parameter.
func parseFields(r *http.Request) []string {
	raw := r.URL.Query().Get("fields")
	if raw == "" {
		return nil
	}
	var fields []string
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// decodeBody decodes a JSON request body keeping numbers as json.Number.
func decodeBody(body io.Reader, v any) error {
	dec := json.NewDecoder(body)
	dec.UseNumber()
	return dec.Decode(v)
}
