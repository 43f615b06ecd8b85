package service

import (
	"context"
	"fmt"

	"catalog/internal/model"
	"catalog/internal/repository"

	"github.com/rs/zerolog"
)

// reviewService implements ReviewService. Deliberately no permission
// predicates anywhere here: reviews are written and mutated by anyone, and
// the author field is a label rather than an access key.
type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository, logger zerolog.Logger) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "review").Logger(),
	}
}

// List retrieves reviews, optionally narrowed to one product, newest first.
func (s *reviewService) List(ctx context.Context, productID *int64) ([]model.ReviewDocument, error) {
	reviews, err := s.reviewRepo.List(ctx, productID)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list reviews")
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return documents(reviews), nil
}

// ListByProduct retrieves the reviews for one product, newest first. A
// nonexistent product simply has no reviews.
func (s *reviewService) ListByProduct(ctx context.Context, productID int64) ([]model.ReviewDocument, error) {
	reviews, err := s.reviewRepo.List(ctx, &productID)
	if err != nil {
		s.logger.Error().Err(err).
			Int64("product_id", productID).
			Msg("failed to list reviews by product")
		return nil, fmt.Errorf("failed to list reviews by product: %w", err)
	}

	return documents(reviews), nil
}

// Get retrieves a single review.
func (s *reviewService) Get(ctx context.Context, id int64) (*model.ReviewDocument, error) {
	rv, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	if rv == nil {
		return nil, model.ErrReviewNotFound
	}

	doc := rv.Document()
	return &doc, nil
}

// Create creates a review. No authentication required.
func (s *reviewService) Create(ctx context.Context, in *model.ReviewInput) (*model.ReviewDocument, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	product, err := s.resolveProduct(ctx, *in.Product)
	if err != nil {
		return nil, err
	}

	var rv model.Review
	in.Apply(&rv)

	if err := s.reviewRepo.Create(ctx, &rv); err != nil {
		s.logger.Error().Err(err).
			Int64("product_id", rv.ProductID).
			Msg("failed to create review")
		return nil, err
	}

	rv.ProductTitle = product.Title

	s.logger.Info().
		Int64("review_id", rv.ID).
		Int64("product_id", rv.ProductID).
		Int("rating", rv.Rating).
		Msg("review created")

	doc := rv.Document()
	return &doc, nil
}

// Replace fully replaces a review's editable fields.
func (s *reviewService) Replace(ctx context.Context, id int64, in *model.ReviewInput) (*model.ReviewDocument, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	rv, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	if rv == nil {
		return nil, model.ErrReviewNotFound
	}

	product, err := s.resolveProduct(ctx, *in.Product)
	if err != nil {
		return nil, err
	}

	in.Apply(rv)
	rv.ProductTitle = product.Title
	return s.save(ctx, rv)
}

// Patch partially updates a review.
func (s *reviewService) Patch(ctx context.Context, id int64, patch *model.ReviewPatch) (*model.ReviewDocument, error) {
	rv, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	if rv == nil {
		return nil, model.ErrReviewNotFound
	}

	patch.Apply(rv)

	merged := rv.Input()
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	if patch.Product != nil {
		product, err := s.resolveProduct(ctx, rv.ProductID)
		if err != nil {
			return nil, err
		}
		rv.ProductTitle = product.Title
	}

	return s.save(ctx, rv)
}

func (s *reviewService) save(ctx context.Context, rv *model.Review) (*model.ReviewDocument, error) {
	found, err := s.reviewRepo.Update(ctx, rv)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, model.ErrReviewNotFound
	}

	doc := rv.Document()
	return &doc, nil
}

// Delete removes a review. Anyone may do this; see the package-level note
// on reviewService.
func (s *reviewService) Delete(ctx context.Context, id int64) error {
	found, err := s.reviewRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return model.ErrReviewNotFound
	}

	s.logger.Info().Int64("review_id", id).Msg("review deleted")
	return nil
}

// resolveProduct checks the mandatory product reference. A dangling
// reference is a field-level validation error.
func (s *reviewService) resolveProduct(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product: %w", err)
	}
	if product == nil {
		return nil, &model.ValidationError{Fields: map[string]string{
			"product": fmt.Sprintf("Invalid product %d - object does not exist.", id),
		}}
	}
	return product, nil
}

func documents(reviews []model.Review) []model.ReviewDocument {
	docs := make([]model.ReviewDocument, 0, len(reviews))
	for i := range reviews {
		docs = append(docs, reviews[i].Document())
	}
	return docs
}
