package handler

import (
	"context"

	"catalog/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockCategoryService is a mock implementation of service.CategoryService.
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) List(ctx context.Context) ([]model.CategoryDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CategoryDocument), args.Error(1)
}

func (m *MockCategoryService) Get(ctx context.Context, id int64) (*model.CategoryDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CategoryDocument), args.Error(1)
}

func (m *MockCategoryService) Create(ctx context.Context, ident *model.Identity, in *model.CategoryInput) (*model.CategoryDocument, error) {
	args := m.Called(ctx, ident, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CategoryDocument), args.Error(1)
}

func (m *MockCategoryService) Replace(ctx context.Context, ident *model.Identity, id int64, in *model.CategoryInput) (*model.CategoryDocument, error) {
	args := m.Called(ctx, ident, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CategoryDocument), args.Error(1)
}

func (m *MockCategoryService) Patch(ctx context.Context, ident *model.Identity, id int64, patch *model.CategoryPatch) (*model.CategoryDocument, error) {
	args := m.Called(ctx, ident, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CategoryDocument), args.Error(1)
}

func (m *MockCategoryService) Delete(ctx context.Context, ident *model.Identity, id int64) error {
	args := m.Called(ctx, ident, id)
	return args.Error(0)
}

// MockProductService is a mock implementation of service.ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context, filter model.ProductFilter) ([]model.ProductDocument, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProductDocument), args.Error(1)
}

func (m *MockProductService) ListMine(ctx context.Context, ident *model.Identity) ([]model.ProductDocument, error) {
	args := m.Called(ctx, ident)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProductDocument), args.Error(1)
}

func (m *MockProductService) Get(ctx context.Context, id int64) (*model.ProductDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductDocument), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, ident *model.Identity, in *model.ProductInput) (*model.ProductDocument, error) {
	args := m.Called(ctx, ident, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductDocument), args.Error(1)
}

func (m *MockProductService) Replace(ctx context.Context, ident *model.Identity, id int64, in *model.ProductInput) (*model.ProductDocument, error) {
	args := m.Called(ctx, ident, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductDocument), args.Error(1)
}

func (m *MockProductService) Patch(ctx context.Context, ident *model.Identity, id int64, patch *model.ProductPatch) (*model.ProductDocument, error) {
	args := m.Called(ctx, ident, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductDocument), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, ident *model.Identity, id int64) error {
	args := m.Called(ctx, ident, id)
	return args.Error(0)
}

// MockReviewService is a mock implementation of service.ReviewService.
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) List(ctx context.Context, productID *int64) ([]model.ReviewDocument, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ReviewDocument), args.Error(1)
}

func (m *MockReviewService) ListByProduct(ctx context.Context, productID int64) ([]model.ReviewDocument, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ReviewDocument), args.Error(1)
}

func (m *MockReviewService) Get(ctx context.Context, id int64) (*model.ReviewDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReviewDocument), args.Error(1)
}

func (m *MockReviewService) Create(ctx context.Context, in *model.ReviewInput) (*model.ReviewDocument, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReviewDocument), args.Error(1)
}

func (m *MockReviewService) Replace(ctx context.Context, id int64, in *model.ReviewInput) (*model.ReviewDocument, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReviewDocument), args.Error(1)
}

func (m *MockReviewService) Patch(ctx context.Context, id int64, patch *model.ReviewPatch) (*model.ReviewDocument, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReviewDocument), args.Error(1)
}

func (m *MockReviewService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
