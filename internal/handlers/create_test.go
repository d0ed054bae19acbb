package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-entities/internal/models"
	"github.com/sbilibin2017/gw-entities/internal/schema"
)

func TestCreateRecordHandler(t *testing.T) {
	tests := []struct {
		name               string
		body               string
		setupMocks         func(m *MockRecordCreator)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name: "created",
			body: `{"session_id":"s1","role":"user","content":"hi","created_at":"2024-01-01","profile":7}`,
			setupMocks: func(m *MockRecordCreator) {
				m.EXPECT().Create(gomock.Any(), map[string]any{
					"session_id": "s1",
					"role":       "user",
					"content":    "hi",
					"created_at": "2024-01-01",
					"profile":    json.Number("7"),
				}, "u1").Return(chatRecord(1, "u1"), nil)
			},
			expectedStatusCode: http.StatusCreated,
			expectedKey:        "id",
		},
		{
			name:               "invalid json",
			body:               `{"session_id":`,
			setupMocks:         func(m *MockRecordCreator) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:               "body is not an object",
			body:               `["a"]`,
			setupMocks:         func(m *MockRecordCreator) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name: "validation error",
			body: `{"session_id":"s1"}`,
			setupMocks: func(m *MockRecordCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any(), "u1").
					Return(nil, fmt.Errorf("%w: field role is required", schema.ErrValidation))
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name: "internal error",
			body: `{"session_id":"s1"}`,
			setupMocks: func(m *MockRecordCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any(), "u1").Return(nil, errors.New("boom"))
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			creator := NewMockRecordCreator(ctrl)
			tt.setupMocks(creator)

			h := NewCreateRecordHandler(creator, schema.ChatHistory)

			req := withUser(httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body)), "u1")
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatusCode, w.Code)
			assert.Contains(t, decodeMap(t, w.Body.Bytes()), tt.expectedKey)
		})
	}
}

func TestBatchCreateRecordsHandler(t *testing.T) {
	t.Run("created in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		creator := NewMockRecordCreator(ctrl)
		creator.EXPECT().BatchCreate(gomock.Any(), []map[string]any{
			{"content": "a"},
			{"content": "b"},
		}, "u1").Return([]models.Record{chatRecord(1, "u1"), chatRecord(2, "u1")}, nil)

		h := NewBatchCreateRecordsHandler(creator, schema.ChatHistory)
		body := `{"items":[{"content":"a"},{"content":"b"}]}`
		req := withUser(httptest.NewRequest(http.MethodPost, "/batch", bytes.NewBufferString(body)), "u1")
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var recs []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recs))
		require.Len(t, recs, 2)
		assert.Equal(t, float64(1), recs[0]["id"])
		assert.Equal(t, float64(2), recs[1]["id"])
	})

	t.Run("invalid item fails the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		creator := NewMockRecordCreator(ctrl)
		creator.EXPECT().BatchCreate(gomock.Any(), gomock.Any(), "u1").
			Return(nil, fmt.Errorf("item 1: %w: field role is required", schema.ErrValidation))

		h := NewBatchCreateRecordsHandler(creator, schema.ChatHistory)
		req := withUser(httptest.NewRequest(http.MethodPost, "/batch", bytes.NewBufferString(`{"items":[{},{}]}`)), "u1")
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "item 1: validation failed: field role is required", decodeMap(t, w.Body.Bytes())["error"])
	})

	t.Run("store error is internal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		creator := NewMockRecordCreator(ctrl)
		creator.EXPECT().BatchCreate(gomock.Any(), gomock.Any(), "u1").Return(nil, errors.New("item 0: boom"))

		h := NewBatchCreateRecordsHandler(creator, schema.ChatHistory)
		req := withUser(httptest.NewRequest(http.MethodPost, "/batch", bytes.NewBufferString(`{"items":[{}]}`)), "u1")
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", decodeMap(t, w.Body.Bytes())["error"])
	})

	t.Run("invalid body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h := NewBatchCreateRecordsHandler(NewMockRecordCreator(ctrl), schema.ChatHistory)
		req := withUser(httptest.NewRequest(http.MethodPost, "/batch", bytes.NewBufferString(`{"items":"nope"}`)), "u1")
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
