package service

import (
	"context"
	"fmt"

	"catalog/internal/model"
	"catalog/internal/repository"

	"github.com/rs/zerolog"
)

// categoryService implements CategoryService.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       zerolog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo repository.CategoryRepository, logger zerolog.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger.With().Str("service", "category").Logger(),
	}
}

// List retrieves all categories.
func (s *categoryService) List(ctx context.Context) ([]model.CategoryDocument, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	docs := make([]model.CategoryDocument, 0, len(categories))
	for i := range categories {
		docs = append(docs, categories[i].Document())
	}
	return docs, nil
}

// Get retrieves a single category.
func (s *categoryService) Get(ctx context.Context, id int64) (*model.CategoryDocument, error) {
	c, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if c == nil {
		return nil, model.ErrCategoryNotFound
	}

	doc := c.Document()
	return &doc, nil
}

// Create creates a category. Requires authentication.
func (s *categoryService) Create(ctx context.Context, ident *model.Identity, in *model.CategoryInput) (*model.CategoryDocument, error) {
	if ident == nil {
		return nil, model.ErrUnauthenticated
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var c model.Category
	in.Apply(&c)

	if err := s.categoryRepo.Create(ctx, &c); err != nil {
		s.logger.Error().Err(err).Str("name", c.Name).Msg("failed to create category")
		return nil, err
	}

	s.logger.Info().
		Int64("category_id", c.ID).
		Str("user", ident.Username).
		Msg("category created")

	doc := c.Document()
	return &doc, nil
}

// Replace fully replaces a category's editable fields. Requires authentication.
func (s *categoryService) Replace(ctx context.Context, ident *model.Identity, id int64, in *model.CategoryInput) (*model.CategoryDocument, error) {
	if ident == nil {
		return nil, model.ErrUnauthenticated
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	c, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if c == nil {
		return nil, model.ErrCategoryNotFound
	}

	in.Apply(c)
	return s.save(ctx, c)
}

// Patch partially updates a category. Requires authentication.
func (s *categoryService) Patch(ctx context.Context, ident *model.Identity, id int64, patch *model.CategoryPatch) (*model.CategoryDocument, error) {
	if ident == nil {
		return nil, model.ErrUnauthenticated
	}

	c, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if c == nil {
		return nil, model.ErrCategoryNotFound
	}

	patch.Apply(c)

	// Re-validate the merged state so a patch cannot sneak past the rules
	// a full document is held to.
	merged := c.Input()
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	return s.save(ctx, c)
}

func (s *categoryService) save(ctx context.Context, c *model.Category) (*model.CategoryDocument, error) {
	found, err := s.categoryRepo.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, model.ErrCategoryNotFound
	}

	doc := c.Document()
	return &doc, nil
}

// Delete removes a category. Requires authentication. Products referencing
// the category survive with the reference nullified by storage.
func (s *categoryService) Delete(ctx context.Context, ident *model.Identity, id int64) error {
	if ident == nil {
		return model.ErrUnauthenticated
	}

	found, err := s.categoryRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return model.ErrCategoryNotFound
	}

	s.logger.Info().
		Int64("category_id", id).
		Str("user", ident.Username).
		Msg("category deleted")

	return nil
}
