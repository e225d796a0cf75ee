package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cafe-till/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTransactionService is a mock implementation of TransactionService.
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) List(ctx context.Context, limit, offset int) ([]model.Transaction, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func TestTransactionHandler_List(t *testing.T) {
	txs := []model.Transaction{
		{ID: uuid.New(), Total: decimal.NewFromInt(40), PaidAt: time.Now()},
		{ID: uuid.New(), Total: decimal.NewFromInt(10), PaidAt: time.Now()},
	}

	tests := []struct {
		name           string
		query          string
		expectedLimit  int
		expectedOffset int
		mockError      error
		expectService  bool
		expectedStatus int
	}{
		{name: "Defaults", query: "", expectedLimit: 10, expectedOffset: 0, expectService: true, expectedStatus: http.StatusOK},
		{name: "Explicit paging", query: "?limit=2&offset=4", expectedLimit: 2, expectedOffset: 4, expectService: true, expectedStatus: http.StatusOK},
		{name: "Invalid limit", query: "?limit=abc", expectService: false, expectedStatus: http.StatusBadRequest},
		{name: "Invalid offset", query: "?offset=x", expectService: false, expectedStatus: http.StatusBadRequest},
		{name: "Service error", query: "", expectedLimit: 10, expectedOffset: 0, mockError: errors.New("db down"), expectService: true, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockTransactionService)
			if tt.expectService {
				if tt.mockError != nil {
					svc.On("List", mock.Anything, tt.expectedLimit, tt.expectedOffset).Return(nil, tt.mockError)
				} else {
					svc.On("List", mock.Anything, tt.expectedLimit, tt.expectedOffset).Return(txs, nil)
				}
			}
			h := NewTransactionHandler(svc, zerolog.Nop())

			w := httptest.NewRecorder()
			h.List(w, httptest.NewRequest(http.MethodGet, "/api/transactions"+tt.query, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var got []model.Transaction
				require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				assert.Len(t, got, 2)
			}
			if !tt.expectService {
				svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestTransactionHandler_GetByID(t *testing.T) {
	id := uuid.New()
	tx := &model.Transaction{ID: id, Total: decimal.NewFromInt(40), PaidAt: time.Now()}

	tests := []struct {
		name           string
		pathID         string
		mockTx         *model.Transaction
		mockError      error
		expectService  bool
		expectedStatus int
	}{
		{name: "Found", pathID: id.String(), mockTx: tx, expectService: true, expectedStatus: http.StatusOK},
		{name: "Not found", pathID: id.String(), expectService: true, expectedStatus: http.StatusNotFound},
		{name: "Invalid ID", pathID: "not-a-uuid", expectService: false, expectedStatus: http.StatusBadRequest},
		{name: "Service error", pathID: id.String(), mockError: errors.New("timeout"), expectService: true, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockTransactionService)
			if tt.expectService {
				if tt.mockTx != nil {
					svc.On("GetByID", mock.Anything, id).Return(tt.mockTx, nil)
				} else {
					svc.On("GetByID", mock.Anything, id).Return(nil, tt.mockError)
				}
			}
			h := NewTransactionHandler(svc, zerolog.Nop())

			req := httptest.NewRequest(http.MethodGet, "/api/transactions/"+tt.pathID, nil)
			req.SetPathValue("id", tt.pathID)
			w := httptest.NewRecorder()

			h.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var got model.Transaction
				require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				assert.Equal(t, id, got.ID)
			}
		})
	}
}
