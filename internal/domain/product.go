package domain

import "time"

type Product struct {
	ID               string
	Name             string
	Slug             string
	Description      string
	Price            int64
	ComparePrice     *int64
	Images           []string
	Embroidery       *string
	Fabric           *string
	Craftsmanship    *string
	CareInstructions *string
	DeliveryDays     int
	SizeChart        *string
	InStock          bool
	StockQuantity    int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ProductPatch holds the fields an operator update sets; nil means unchanged.
type ProductPatch struct {
	Name             *string
	Slug             *string
	Description      *string
	Price            *int64
	ComparePrice     *int64
	Images           *[]string
	Embroidery       *string
	Fabric           *string
	Craftsmanship    *string
	CareInstructions *string
	DeliveryDays     *int
	SizeChart        *string
	InStock          *bool
	StockQuantity    *int
}
