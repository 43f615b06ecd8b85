package service

import (
	"context"

	"catalog/internal/model"
)

// CategoryService defines operations for category management. Reads are
// open; writes require an authenticated identity.
type CategoryService interface {
	// List retrieves all categories.
	List(ctx context.Context) ([]model.CategoryDocument, error)

	// Get retrieves a single category.
	Get(ctx context.Context, id int64) (*model.CategoryDocument, error)

	// Create creates a category.
	Create(ctx context.Context, ident *model.Identity, in *model.CategoryInput) (*model.CategoryDocument, error)

	// Replace fully replaces a category's editable fields.
	Replace(ctx context.Context, ident *model.Identity, id int64, in *model.CategoryInput) (*model.CategoryDocument, error)

	// Patch partially updates a category.
	Patch(ctx context.Context, ident *model.Identity, id int64, patch *model.CategoryPatch) (*model.CategoryDocument, error)

	// Delete removes a category; its products survive with the reference nullified.
	Delete(ctx context.Context, ident *model.Identity, id int64) error
}

// ProductService defines operations for product management. Reads are open;
// creation requires authentication and attributes ownership to the caller;
// mutation is owner-gated.
type ProductService interface {
	// List retrieves products matching the filter, newest first.
	List(ctx context.Context, filter model.ProductFilter) ([]model.ProductDocument, error)

	// ListMine retrieves the caller's products. Anonymous callers get an
	// empty list, not an error.
	ListMine(ctx context.Context, ident *model.Identity) ([]model.ProductDocument, error)

	// Get retrieves a single product.
	Get(ctx context.Context, id int64) (*model.ProductDocument, error)

	// Create creates a product owned by the caller, regardless of any owner
	// data in the request.
	Create(ctx context.Context, ident *model.Identity, in *model.ProductInput) (*model.ProductDocument, error)

	// Replace fully replaces a product's editable fields. Owner only.
	Replace(ctx context.Context, ident *model.Identity, id int64, in *model.ProductInput) (*model.ProductDocument, error)

	// Patch partially updates a product. Owner only.
	Patch(ctx context.Context, ident *model.Identity, id int64, patch *model.ProductPatch) (*model.ProductDocument, error)

	// Delete removes a product. Owner or admin.
	Delete(ctx context.Context, ident *model.Identity, id int64) error
}

// ReviewService defines operations for review management. Everything is
// open, mutation included; review authorship is a display label, not an
// access key.
type ReviewService interface {
	// List retrieves reviews, optionally narrowed to one product, newest first.
	List(ctx context.Context, productID *int64) ([]model.ReviewDocument, error)

	// ListByProduct retrieves the reviews for one product, newest first.
	// The product id is mandatory here; callers translate its absence into
	// an explicit error before reaching this method.
	ListByProduct(ctx context.Context, productID int64) ([]model.ReviewDocument, error)

	// Get retrieves a single review.
	Get(ctx context.Context, id int64) (*model.ReviewDocument, error)

	// Create creates a review. No authentication required.
	Create(ctx context.Context, in *model.ReviewInput) (*model.ReviewDocument, error)

	// Replace fully replaces a review's editable fields.
	Replace(ctx context.Context, id int64, in *model.ReviewInput) (*model.ReviewDocument, error)

	// Patch partially updates a review.
	Patch(ctx context.Context, id int64, patch *model.ReviewPatch) (*model.ReviewDocument, error)

	// Delete removes a review.
	Delete(ctx context.Context, id int64) error
}
