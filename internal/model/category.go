package model

// Category groups products. Deleting a category never deletes its products;
// their category reference is nullified by the storage layer.
type Category struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

// CategoryDocument is the transport representation of a category.
type CategoryDocument struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Document converts the category to its transport representation.
func (c *Category) Document() CategoryDocument {
	return CategoryDocument{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

// CategoryInput is the client-editable portion of a category document.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate checks the input and reports per-field errors.
func (in *CategoryInput) Validate() error {
	fields := make(map[string]string)

	if in.Name == "" {
		fields["name"] = "This field is required."
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Apply copies the editable fields onto the category.
func (in *CategoryInput) Apply(c *Category) {
	c.Name = in.Name
	c.Description = in.Description
}

// CategoryPatch is a partial-update document; absent fields are unchanged.
type CategoryPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Apply copies the present fields onto the category.
func (p *CategoryPatch) Apply(c *Category) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
}

// Input returns the merged state as an input document for re-validation.
func (c *Category) Input() CategoryInput {
	return CategoryInput{
		Name:        c.Name,
		Description: c.Description,
	}
}
