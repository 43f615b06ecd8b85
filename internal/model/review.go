package model

import "time"

// DefaultRating is assigned when a review omits its rating.
const DefaultRating = 5

// Review is customer feedback on a product. The author is a display label,
// not an identity reference; review mutation is deliberately not
// ownership-checked. Deleting a product cascades to its reviews.
type Review struct {
	ID           int64     `json:"id" db:"id"`
	ProductID    int64     `json:"product_id" db:"product_id"`
	ProductTitle string    `json:"product_title"`
	Author       string    `json:"author" db:"author"`
	Rating       int       `json:"rating" db:"rating"`
	Text         string    `json:"text" db:"text"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// ReviewDocument is the transport representation of a review. product_title
// is denormalised from the related product, read-only.
type ReviewDocument struct {
	ID           int64     `json:"id"`
	Product      int64     `json:"product"`
	ProductTitle string    `json:"product_title"`
	Author       string    `json:"author"`
	Rating       int       `json:"rating"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Document converts the review to its transport representation.
func (rv *Review) Document() ReviewDocument {
	return ReviewDocument{
		ID:           rv.ID,
		Product:      rv.ProductID,
		ProductTitle: rv.ProductTitle,
		Author:       rv.Author,
		Rating:       rv.Rating,
		Text:         rv.Text,
		CreatedAt:    rv.CreatedAt,
		UpdatedAt:    rv.UpdatedAt,
	}
}

// ReviewInput is the client-editable portion of a review document.
type ReviewInput struct {
	Product *int64 `json:"product"`
	Author  string `json:"author"`
	Rating  *int   `json:"rating"`
	Text    string `json:"text"`
}

// Validate checks the input and reports per-field errors. A rating outside
// 1..5 must never reach storage.
func (in *ReviewInput) Validate() error {
	fields := make(map[string]string)

	if in.Product == nil {
		fields["product"] = "This field is required."
	}
	if in.Author == "" {
		fields["author"] = "This field is required."
	}
	if in.Text == "" {
		fields["text"] = "This field is required."
	}
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		fields["rating"] = "Rating must be between 1 and 5."
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Apply copies the editable fields onto the review, defaulting the rating
// when omitted.
func (in *ReviewInput) Apply(rv *Review) {
	if in.Product != nil {
		rv.ProductID = *in.Product
	}
	rv.Author = in.Author
	if in.Rating != nil {
		rv.Rating = *in.Rating
	} else {
		rv.Rating = DefaultRating
	}
	rv.Text = in.Text
}

// ReviewPatch is a partial-update document; absent fields are unchanged.
type ReviewPatch struct {
	Product *int64  `json:"product"`
	Author  *string `json:"author"`
	Rating  *int    `json:"rating"`
	Text    *string `json:"text"`
}

// Apply copies the present fields onto the review.
func (p *ReviewPatch) Apply(rv *Review) {
	if p.Product != nil {
		rv.ProductID = *p.Product
	}
	if p.Author != nil {
		rv.Author = *p.Author
	}
	if p.Rating != nil {
		rv.Rating = *p.Rating
	}
	if p.Text != nil {
		rv.Text = *p.Text
	}
}

// Input returns the merged state as an input document for re-validation.
func (rv *Review) Input() ReviewInput {
	product := rv.ProductID
	rating := rv.Rating
	return ReviewInput{
		Product: &product,
		Author:  rv.Author,
		Rating:  &rating,
		Text:    rv.Text,
	}
}
