package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catalog/internal/auth"
	"catalog/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleProductDoc() *model.ProductDocument {
	return &model.ProductDocument{
		ID:          1,
		Title:       "Trail shoe",
		Description: "Grippy",
		Price:       decimal.RequireFromString("59.99"),
		User:        "alice",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestProductHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	catID := int64(2)
	tests := []struct {
		name           string
		query          string
		expectedFilter *model.ProductFilter
		expectedStatus int
	}{
		{
			name:           "No filters",
			query:          "",
			expectedFilter: &model.ProductFilter{},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Search filter",
			query:          "?search=shoe",
			expectedFilter: &model.ProductFilter{Search: "shoe"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Search and category compose",
			query:          "?search=shoe&category=2",
			expectedFilter: &model.ProductFilter{Search: "shoe", CategoryID: &catID},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid category parameter",
			query:          "?category=footwear",
			expectedFilter: nil,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			if tt.expectedFilter != nil {
				mockService.On("List", mock.Anything, *tt.expectedFilter).
					Return([]model.ProductDocument{*sampleProductDoc()}, nil)
			}

			h := NewProductHandler(mockService, logger)
			req := httptest.NewRequest(http.MethodGet, "/api/products"+tt.query, nil)
			w := httptest.NewRecorder()

			h.List(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_ListMine(t *testing.T) {
	logger := zerolog.Nop()
	ident := &model.Identity{ID: uuid.New(), Username: "alice"}

	mockService := new(MockProductService)
	mockService.On("ListMine", mock.Anything, ident).
		Return([]model.ProductDocument{*sampleProductDoc()}, nil)

	h := NewProductHandler(mockService, logger)
	req := httptest.NewRequest(http.MethodGet, "/api/products/my_products", nil)
	req = req.WithContext(auth.WithIdentity(req.Context(), ident))
	w := httptest.NewRecorder()

	h.ListMine(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestProductHandler_Create(t *testing.T) {
	logger := zerolog.Nop()
	ident := &model.Identity{ID: uuid.New(), Username: "alice"}

	tests := []struct {
		name           string
		body           string
		ident          *model.Identity
		mockReturn     *model.ProductDocument
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			body:           `{"title":"Trail shoe","description":"Grippy","price":"59.99"}`,
			ident:          ident,
			mockReturn:     sampleProductDoc(),
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:           "Anonymous",
			body:           `{"title":"Trail shoe","description":"Grippy","price":"59.99"}`,
			ident:          nil,
			mockError:      model.ErrUnauthenticated,
			expectedStatus: http.StatusUnauthorized,
			expectService:  true,
		},
		{
			name:           "Validation failure",
			body:           `{"description":"no title"}`,
			ident:          ident,
			mockError:      &model.ValidationError{Fields: map[string]string{"title": "This field is required."}},
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Malformed body",
			body:           `{"title":`,
			ident:          ident,
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			if tt.expectService {
				mockService.On("Create", mock.Anything, tt.ident, mock.AnythingOfType("*model.ProductInput")).
					Return(tt.mockReturn, tt.mockError)
			}

			h := NewProductHandler(mockService, logger)
			req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewBufferString(tt.body))
			if tt.ident != nil {
				req = req.WithContext(auth.WithIdentity(req.Context(), tt.ident))
			}
			w := httptest.NewRecorder()

			h.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if !tt.expectService {
				mockService.AssertNotCalled(t, "Create")
			}
			mockService.AssertExpectations(t)
		})
	}
}

// Server-assigned fields in the request body must not reach the service: the
// input type simply has nowhere to put them.
func TestProductHandler_CreateDiscardsOwnerFields(t *testing.T) {
	logger := zerolog.Nop()
	ident := &model.Identity{ID: uuid.New(), Username: "alice"}

	mockService := new(MockProductService)
	mockService.On("Create", mock.Anything, ident, mock.MatchedBy(func(in *model.ProductInput) bool {
		return in.Title == "Trail shoe"
	})).Return(sampleProductDoc(), nil)

	body := `{"title":"Trail shoe","description":"Grippy","price":"59.99","user":"mallory","id":999}`
	h := NewProductHandler(mockService, logger)
	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewBufferString(body))
	req = req.WithContext(auth.WithIdentity(req.Context(), ident))
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestProductHandler_Retrieve(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		id             string
		mockReturn     *model.ProductDocument
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			id:             "1",
			mockReturn:     sampleProductDoc(),
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Not found",
			id:             "404",
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Invalid ID",
			id:             "abc",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			if tt.expectService {
				mockService.On("Get", mock.Anything, mock.AnythingOfType("int64")).
					Return(tt.mockReturn, tt.mockError)
			}

			h := NewProductHandler(mockService, logger)
			req := httptest.NewRequest(http.MethodGet, "/api/products/"+tt.id, nil)
			w := httptest.NewRecorder()

			h.Retrieve(w, req, tt.id)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)

			if tt.name == "Success" {
				var doc model.ProductDocument
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
				assert.Equal(t, "alice", doc.User)
			}
		})
	}
}

func TestProductHandler_ReplaceForbidden(t *testing.T) {
	logger := zerolog.Nop()
	ident := &model.Identity{ID: uuid.New(), Username: "mallory"}

	mockService := new(MockProductService)
	mockService.On("Replace", mock.Anything, ident, int64(1), mock.AnythingOfType("*model.ProductInput")).
		Return(nil, model.ErrForbidden)

	h := NewProductHandler(mockService, logger)
	body := `{"title":"Hijacked","description":"x","price":"1.00"}`
	req := httptest.NewRequest(http.MethodPut, "/api/products/1", bytes.NewBufferString(body))
	req = req.WithContext(auth.WithIdentity(req.Context(), ident))
	w := httptest.NewRecorder()

	h.Replace(w, req, "1")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestProductHandler_Delete(t *testing.T) {
	logger := zerolog.Nop()
	ident := &model.Identity{ID: uuid.New(), Username: "alice"}

	tests := []struct {
		name           string
		mockError      error
		expectedStatus int
	}{
		{name: "Success", mockError: nil, expectedStatus: http.StatusNoContent},
		{name: "Forbidden", mockError: model.ErrForbidden, expectedStatus: http.StatusForbidden},
		{name: "Not found", mockError: model.ErrProductNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			mockService.On("Delete", mock.Anything, ident, int64(1)).Return(tt.mockError)

			h := NewProductHandler(mockService, logger)
			req := httptest.NewRequest(http.MethodDelete, "/api/products/1", nil)
			req = req.WithContext(auth.WithIdentity(req.Context(), ident))
			w := httptest.NewRecorder()

			h.Delete(w, req, "1")

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_ValidationErrorBody(t *testing.T) {
	logger := zerolog.Nop()
	ident := &model.Identity{ID: uuid.New(), Username: "alice"}

	mockService := new(MockProductService)
	mockService.On("Create", mock.Anything, ident, mock.AnythingOfType("*model.ProductInput")).
		Return(nil, &model.ValidationError{Fields: map[string]string{
			"title": "This field is required.",
			"price": "This field is required.",
		}})

	h := NewProductHandler(mockService, logger)
	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewBufferString(`{"description":"x"}`))
	req = req.WithContext(auth.WithIdentity(req.Context(), ident))
	w := httptest.NewRecorder()

	h.Create(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "This field is required.", resp.Fields["title"])
	assert.Equal(t, "This field is required.", resp.Fields["price"])
}
