package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalogue item. Every product has exactly one owner, the
// authenticated identity that created it; ownership drives write permission.
type Product struct {
	ID          int64           `json:"id" db:"id"`
	Title       string          `json:"title" db:"title"`
	Description string          `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	CategoryID  *int64          `json:"category_id" db:"category_id"`
	Category    *Category       `json:"category,omitempty"`
	OwnerID     uuid.UUID       `json:"owner_id" db:"owner_id"`
	Owner       string          `json:"owner"`
	Image       *string         `json:"image" db:"image"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// ProductFilter narrows a product listing. Filters of different kinds
// compose with AND; the search term matches title OR description,
// case-insensitively. Zero values match everything.
type ProductFilter struct {
	Search     string
	CategoryID *int64
}

// ProductDocument is the transport representation of a product. Category is
// nested read-only; the owner is rendered as a display string; image_url is
// derived from the stored image reference.
type ProductDocument struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Price       decimal.Decimal   `json:"price"`
	Category    *CategoryDocument `json:"category"`
	User        string            `json:"user"`
	Image       *string           `json:"image"`
	ImageURL    *string           `json:"image_url"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Document converts the product to its transport representation. imageURL
// is the resolved locator for the stored image reference, nil when the
// product has no image.
func (p *Product) Document(imageURL *string) ProductDocument {
	doc := ProductDocument{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		User:        p.Owner,
		Image:       p.Image,
		ImageURL:    imageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Category != nil {
		cd := p.Category.Document()
		doc.Category = &cd
	}
	return doc
}

// ProductInput is the client-editable portion of a product document. The
// owner and the timestamps are server-assigned and cannot be supplied here;
// anything a client sends for them is discarded during decoding.
type ProductInput struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    *int64           `json:"category"`
	Image       *string          `json:"image"`
}

// Validate checks the input and reports per-field errors. Price negativity
// is a convention, not a constraint, and is deliberately not checked.
func (in *ProductInput) Validate() error {
	fields := make(map[string]string)

	if in.Title == "" {
		fields["title"] = "This field is required."
	}
	if in.Description == "" {
		fields["description"] = "This field is required."
	}
	if in.Price == nil {
		fields["price"] = "This field is required."
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Apply copies the editable fields onto the product.
func (in *ProductInput) Apply(p *Product) {
	p.Title = in.Title
	p.Description = in.Description
	if in.Price != nil {
		p.Price = *in.Price
	}
	p.CategoryID = in.Category
	p.Image = in.Image
}

// ProductPatch is a partial-update document. Category and image are
// nullable, so an explicit null clears them while absence keeps them.
type ProductPatch struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    Optional[int64]  `json:"category"`
	Image       Optional[string] `json:"image"`
}

// Apply copies the present fields onto the product.
func (p *ProductPatch) Apply(prod *Product) {
	if p.Title != nil {
		prod.Title = *p.Title
	}
	if p.Description != nil {
		prod.Description = *p.Description
	}
	if p.Price != nil {
		prod.Price = *p.Price
	}
	if p.Category.Set {
		prod.CategoryID = p.Category.Value
	}
	if p.Image.Set {
		prod.Image = p.Image.Value
	}
}

// Input returns the merged state as an input document for re-validation.
func (p *Product) Input() ProductInput {
	price := p.Price
	return ProductInput{
		Title:       p.Title,
		Description: p.Description,
		Price:       &price,
		Category:    p.CategoryID,
		Image:       p.Image,
	}
}
