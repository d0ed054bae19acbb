package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-entities/internal/middlewares"
	"github.com/sbilibin2017/gw-entities/internal/models"
)

func withUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(middlewares.WithUserID(r.Context(), userID))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeMap(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(body, &m))
	return m
}

func chatRecord(id int64, owner string) models.Record {
	return models.Record{
		"id":          id,
		"user_id":     owner,
		"session_id":  "s1",
		"role":        "user",
		"content":     "hi",
		"intake_step": nil,
		"created_at":  "2024-01-01",
	}
}
