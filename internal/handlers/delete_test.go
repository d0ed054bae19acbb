package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-entities/internal/schema"
)

func TestDeleteRecordHandler(t *testing.T) {
	tests := []struct {
		name               string
		id                 string
		setupMocks         func(m *MockRecordDeleter)
		expectedStatusCode int
		expectedBody       map[string]any
	}{
		{
			name: "deleted",
			id:   "9",
			setupMocks: func(m *MockRecordDeleter) {
				m.EXPECT().Delete(gomock.Any(), int64(9), "u1").Return(true, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       map[string]any{"message": "Chat history deleted successfully", "id": float64(9)},
		},
		{
			name: "not found",
			id:   "9",
			setupMocks: func(m *MockRecordDeleter) {
				m.EXPECT().Delete(gomock.Any(), int64(9), "u1").Return(false, nil)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedBody:       map[string]any{"error": "Chat history not found"},
		},
		{
			name: "internal error",
			id:   "9",
			setupMocks: func(m *MockRecordDeleter) {
				m.EXPECT().Delete(gomock.Any(), int64(9), "u1").Return(false, errors.New("boom"))
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedBody:       map[string]any{"error": "Internal server error"},
		},
		{
			name:               "invalid id",
			id:                 "nine",
			setupMocks:         func(m *MockRecordDeleter) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       map[string]any{"error": "Invalid id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			deleter := NewMockRecordDeleter(ctrl)
			tt.setupMocks(deleter)

			h := NewDeleteRecordHandler(deleter, schema.ChatHistory)

			req := httptest.NewRequest(http.MethodDelete, "/"+tt.id, nil)
			req = withUser(withURLParam(req, "id", tt.id), "u1")
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatusCode, w.Code)
			assert.Equal(t, tt.expectedBody, decodeMap(t, w.Body.Bytes()))
		})
	}
}

func TestBatchDeleteRecordsHandler(t *testing.T) {
	tests := []struct {
		name               string
		body               string
		setupMocks         func(m *MockRecordDeleter)
		expectedStatusCode int
		expectedBody       map[string]any
	}{
		{
			name: "counts deleted",
			body: `{"ids":[1,2,3]}`,
			setupMocks: func(m *MockRecordDeleter) {
				m.EXPECT().BatchDelete(gomock.Any(), []int64{1, 2, 3}, "u1").Return(2, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       map[string]any{"message": "Successfully deleted 2 chat_history", "deleted_count": float64(2)},
		},
		{
			name:               "ids must be integers",
			body:               `{"ids":["a"]}`,
			setupMocks:         func(m *MockRecordDeleter) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       map[string]any{"error": "Invalid request body"},
		},
		{
			name: "store error",
			body: `{"ids":[1]}`,
			setupMocks: func(m *MockRecordDeleter) {
				m.EXPECT().BatchDelete(gomock.Any(), []int64{1}, "u1").Return(0, errors.New("boom"))
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedBody:       map[string]any{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			deleter := NewMockRecordDeleter(ctrl)
			tt.setupMocks(deleter)

			h := NewBatchDeleteRecordsHandler(deleter, schema.ChatHistory)

			req := withUser(httptest.NewRequest(http.MethodDelete, "/batch", bytes.NewBufferString(tt.body)), "u1")
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatusCode, w.Code)
			assert.Equal(t, tt.expectedBody, decodeMap(t, w.Body.Bytes()))
		})
	}
}
