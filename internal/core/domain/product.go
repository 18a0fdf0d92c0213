package domain

import "time"

// Product is a catalog entry.
type Product struct {
	ID            int64     `json:"id" bson:"_id"`
	Name          string    `json:"name" bson:"name"`
	Brand         string    `json:"brand" bson:"brand"`
	Model         string    `json:"model" bson:"model"`
	Type          string    `json:"type" bson:"type"`
	Material      string    `json:"material" bson:"material"`
	Description   string    `json:"description" bson:"description"`
	Price         float64   `json:"price" bson:"price"`
	OriginalPrice *float64  `json:"originalPrice,omitempty" bson:"original_price,omitempty"`
	Stock         int       `json:"stock" bson:"stock"`
	Sizes         []string  `json:"sizes" bson:"sizes"`
	Colors        []string  `json:"colors" bson:"colors"`
	Image         string    `json:"image" bson:"image"`
	Discount      *int      `json:"discount,omitempty" bson:"discount,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

// ProductPatch is a partial update. Nil fields are left untouched.
type ProductPatch struct {
	Name          *string
	Brand         *string
	Model         *string
	Type          *string
	Material      *string
	Description   *string
	Price         *float64
	OriginalPrice *float64
	Stock         *int
	Sizes         []string
	Colors        []string
	Image         *string
	Discount      *int
}

// Apply copies the set fields of the patch onto p.
func (pp ProductPatch) Apply(p *Product) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Brand != nil {
		p.Brand = *pp.Brand
	}
	if pp.Model != nil {
		p.Model = *pp.Model
	}
	if pp.Type != nil {
		p.Type = *pp.Type
	}
	if pp.Material != nil {
		p.Material = *pp.Material
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.Price != nil {
		p.Price = *pp.Price
	}
	if pp.OriginalPrice != nil {
		v := *pp.OriginalPrice
		p.OriginalPrice = &v
	}
	if pp.Stock != nil {
		p.Stock = *pp.Stock
	}
	if pp.Sizes != nil {
		p.Sizes = append([]string(nil), pp.Sizes...)
	}
	if pp.Colors != nil {
		p.Colors = append([]string(nil), pp.Colors...)
	}
	if pp.Image != nil {
		p.Image = *pp.Image
	}
	if pp.Discount != nil {
		v := *pp.Discount
		p.Discount = &v
	}
}

// Validate rejects negative prices, stock and out-of-range discounts.
func (p *Product) Validate() error {
	switch {
	case p.Name == "":
		return invalidProduct("name is required")
	case p.Price < 0:
		return invalidProduct("price must not be negative")
	case p.OriginalPrice != nil && *p.OriginalPrice < 0:
		return invalidProduct("originalPrice must not be negative")
	case p.Stock < 0:
		return invalidProduct("stock must not be negative")
	case p.Discount != nil && (*p.Discount < 0 || *p.Discount > 100):
		return invalidProduct("discount must be between 0 and 100")
	}
	return nil
}
