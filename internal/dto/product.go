package dto

import (
	"time"

	"storefront/internal/domain"
)

type ProductResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description"`
	Price            int64     `json:"price"`
	ComparePrice     *int64    `json:"comparePrice"`
	Images           []string  `json:"images"`
	Embroidery       *string   `json:"embroidery"`
	Fabric           *string   `json:"fabric"`
	Craftsmanship    *string   `json:"craftsmanship"`
	CareInstructions *string   `json:"careInstructions"`
	DeliveryDays     int       `json:"deliveryDays"`
	SizeChart        *string   `json:"sizeChart"`
	InStock          bool      `json:"inStock"`
	StockQuantity    int       `json:"stockQuantity"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// ProductRequest creates a catalog entry. InStock defaults to true when
// omitted.
type ProductRequest struct {
	Name             string   `json:"name" validate:"min=2,max=255"`
	Slug             string   `json:"slug" validate:"min=2,max=191"`
	Description      string   `json:"description"`
	Price            int64    `json:"price" validate:"gt=0"`
	ComparePrice     *int64   `json:"comparePrice,omitempty" validate:"omitempty,gt=0"`
	Images           []string `json:"images" validate:"max=20"`
	Embroidery       *string  `json:"embroidery,omitempty"`
	Fabric           *string  `json:"fabric,omitempty"`
	Craftsmanship    *string  `json:"craftsmanship,omitempty"`
	CareInstructions *string  `json:"careInstructions,omitempty"`
	DeliveryDays     int      `json:"deliveryDays" validate:"gte=0"`
	SizeChart        *string  `json:"sizeChart,omitempty"`
	InStock          *bool    `json:"inStock,omitempty"`
	StockQuantity    int      `json:"stockQuantity" validate:"gte=0"`
}

// ProductPatchRequest updates only the fields present in the body.
type ProductPatchRequest struct {
	Name             *string   `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Slug             *string   `json:"slug,omitempty" validate:"omitempty,min=2,max=191"`
	Description      *string   `json:"description,omitempty"`
	Price            *int64    `json:"price,omitempty" validate:"omitempty,gt=0"`
	ComparePrice     *int64    `json:"comparePrice,omitempty" validate:"omitempty,gt=0"`
	Images           *[]string `json:"images,omitempty" validate:"omitempty,max=20"`
	Embroidery       *string   `json:"embroidery,omitempty"`
	Fabric           *string   `json:"fabric,omitempty"`
	Craftsmanship    *string   `json:"craftsmanship,omitempty"`
	CareInstructions *string   `json:"careInstructions,omitempty"`
	DeliveryDays     *int      `json:"deliveryDays,omitempty" validate:"omitempty,gt=0"`
	SizeChart        *string   `json:"sizeChart,omitempty"`
	InStock          *bool     `json:"inStock,omitempty"`
	StockQuantity    *int      `json:"stockQuantity,omitempty" validate:"omitempty,gte=0"`
}

func NewProductResponse(p domain.Product) ProductResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		Description:      p.Description,
		Price:            p.Price,
		ComparePrice:     p.ComparePrice,
		Images:           images,
		Embroidery:       p.Embroidery,
		Fabric:           p.Fabric,
		Craftsmanship:    p.Craftsmanship,
		CareInstructions: p.CareInstructions,
		DeliveryDays:     p.DeliveryDays,
		SizeChart:        p.SizeChart,
		InStock:          p.InStock,
		StockQuantity:    p.StockQuantity,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func NewProductListResponse(products []domain.Product) ProductListResponse {
	out := ProductListResponse{Products: make([]ProductResponse, 0, len(products))}
	for _, p := range products {
		out.Products = append(out.Products, NewProductResponse(p))
	}
	return out
}

func (r ProductRequest) ToDomain() domain.Product {
	inStock := true
	if r.InStock != nil {
		inStock = *r.InStock
	}
	return domain.Product{
		Name:             r.Name,
		Slug:             r.Slug,
		Description:      r.Description,
		Price:            r.Price,
		ComparePrice:     r.ComparePrice,
		Images:           r.Images,
		Embroidery:       r.Embroidery,
		Fabric:           r.Fabric,
		Craftsmanship:    r.Craftsmanship,
		CareInstructions: r.CareInstructions,
		DeliveryDays:     r.DeliveryDays,
		SizeChart:        r.SizeChart,
		InStock:          inStock,
		StockQuantity:    r.StockQuantity,
	}
}

func (r ProductPatchRequest) ToDomain() domain.ProductPatch {
	return domain.ProductPatch{
		Name:             r.Name,
		Slug:             r.Slug,
		Description:      r.Description,
		Price:            r.Price,
		ComparePrice:     r.ComparePrice,
		Images:           r.Images,
		Embroidery:       r.Embroidery,
		Fabric:           r.Fabric,
		Craftsmanship:    r.Craftsmanship,
		CareInstructions: r.CareInstructions,
		DeliveryDays:     r.DeliveryDays,
		SizeChart:        r.SizeChart,
		InStock:          r.InStock,
		StockQuantity:    r.StockQuantity,
	}
}
