package service

import (
	"context"
	"fmt"

	"catalog/internal/media"
	"catalog/internal/model"
	"catalog/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
	media        media.Resolver
	logger       zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
	mediaResolver media.Resolver,
	logger zerolog.Logger,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		media:        mediaResolver,
		logger:       logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves products matching the filter, newest first.
func (s *productService) List(ctx context.Context, filter model.ProductFilter) ([]model.ProductDocument, error) {
	products, err := s.productRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).
			Str("search", filter.Search).
			Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().
		Int("count", len(products)).
		Str("search", filter.Search).
		Msg("retrieved products")

	return s.documents(ctx, products), nil
}

// ListMine retrieves the caller's products. An anonymous caller gets an
// empty list with success, not an error.
func (s *productService) ListMine(ctx context.Context, ident *model.Identity) ([]model.ProductDocument, error) {
	if ident == nil {
		return []model.ProductDocument{}, nil
	}

	products, err := s.productRepo.ListByOwner(ctx, ident.ID)
	if err != nil {
		s.logger.Error().Err(err).
			Str("owner_id", ident.ID.String()).
			Msg("failed to list owned products")
		return nil, fmt.Errorf("failed to list owned products: %w", err)
	}

	return s.documents(ctx, products), nil
}

// Get retrieves a single product.
func (s *productService) Get(ctx context.Context, id int64) (*model.ProductDocument, error) {
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if p == nil {
		return nil, model.ErrProductNotFound
	}

	doc := s.document(ctx, p)
	return &doc, nil
}

// Create creates a product. The owner is unconditionally the authenticated
// caller; this is a security boundary, so any owner data a client supplies
// never survives to storage.
func (s *productService) Create(ctx context.Context, ident *model.Identity, in *model.ProductInput) (*model.ProductDocument, error) {
	if ident == nil {
		return nil, model.ErrUnauthenticated
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	category, err := s.resolveCategory(ctx, in.Category)
	if err != nil {
		return nil, err
	}

	// The identity provider owns user records; mirror the subject locally
	// so the ownership foreign key holds.
	if err := s.userRepo.Ensure(ctx, ident); err != nil {
		return nil, err
	}

	var p model.Product
	in.Apply(&p)
	p.OwnerID = ident.ID
	p.Owner = ident.Username
	p.Category = category

	if err := s.productRepo.Create(ctx, &p); err != nil {
		s.logger.Error().Err(err).Str("title", p.Title).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().
		Int64("product_id", p.ID).
		Str("owner", ident.Username).
		Msg("product created")

	doc := s.document(ctx, &p)
	return &doc, nil
}

// Replace fully replaces a product's editable fields. Owner only; the
// permission question is settled before the body is even looked at.
func (s *productService) Replace(ctx context.Context, ident *model.Identity, id int64, in *model.ProductInput) (*model.ProductDocument, error) {
	p, err := s.authorize(ctx, ident, id, false)
	if err != nil {
		return nil, err
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	category, err := s.resolveCategory(ctx, in.Category)
	if err != nil {
		return nil, err
	}

	in.Apply(p)
	p.Category = category
	return s.save(ctx, p)
}

// Patch partially updates a product. Owner only.
func (s *productService) Patch(ctx context.Context, ident *model.Identity, id int64, patch *model.ProductPatch) (*model.ProductDocument, error) {
	p, err := s.authorize(ctx, ident, id, false)
	if err != nil {
		return nil, err
	}

	patch.Apply(p)

	merged := p.Input()
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	category, err := s.resolveCategory(ctx, p.CategoryID)
	if err != nil {
		return nil, err
	}
	p.Category = category

	return s.save(ctx, p)
}

// Delete removes a product. Owner or admin; reviews cascade away in storage.
func (s *productService) Delete(ctx context.Context, ident *model.Identity, id int64) error {
	if _, err := s.authorize(ctx, ident, id, true); err != nil {
		return err
	}

	found, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return model.ErrProductNotFound
	}

	s.logger.Info().
		Int64("product_id", id).
		Str("user", ident.Username).
		Msg("product deleted")

	return nil
}

// authorize loads the product and enforces the write permission predicate:
// authenticated, and owner of the record (admins pass when adminOverride).
func (s *productService) authorize(ctx context.Context, ident *model.Identity, id int64, adminOverride bool) (*model.Product, error) {
	if ident == nil {
		return nil, model.ErrUnauthenticated
	}

	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if p == nil {
		return nil, model.ErrProductNotFound
	}

	if p.OwnerID != ident.ID && !(adminOverride && ident.Admin) {
		s.logger.Warn().
			Int64("product_id", id).
			Str("owner_id", p.OwnerID.String()).
			Str("caller_id", ident.ID.String()).
			Msg("write attempt by non-owner")
		return nil, model.ErrForbidden
	}

	return p, nil
}

// resolveCategory checks an optional category reference and returns the
// category for nesting. A dangling reference is a field-level validation
// error, exactly like any other malformed input.
func (s *productService) resolveCategory(ctx context.Context, id *int64) (*model.Category, error) {
	if id == nil {
		return nil, nil
	}

	category, err := s.categoryRepo.GetByID(ctx, *id)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}
	if category == nil {
		return nil, &model.ValidationError{Fields: map[string]string{
			"category": fmt.Sprintf("Invalid category %d - object does not exist.", *id),
		}}
	}

	return category, nil
}

func (s *productService) save(ctx context.Context, p *model.Product) (*model.ProductDocument, error) {
	found, err := s.productRepo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, model.ErrProductNotFound
	}

	doc := s.document(ctx, p)
	return &doc, nil
}

// document builds the transport representation, deriving image_url from the
// stored image reference. A resolver failure degrades to a null URL rather
// than failing the whole read.
func (s *productService) document(ctx context.Context, p *model.Product) model.ProductDocument {
	var imageURL *string
	if p.Image != nil {
		url, err := s.media.URL(ctx, *p.Image)
		if err != nil {
			s.logger.Warn().Err(err).
				Int64("product_id", p.ID).
				Msg("failed to resolve image URL")
		} else {
			imageURL = &url
		}
	}
	return p.Document(imageURL)
}

func (s *productService) documents(ctx context.Context, products []model.Product) []model.ProductDocument {
	docs := make([]model.ProductDocument, 0, len(products))
	for i := range products {
		docs = append(docs, s.document(ctx, &products[i]))
	}
	return docs
}
