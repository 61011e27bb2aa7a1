package dto

// CheckoutRequest is the materialized cart plus delivery details submitted
// at checkout.
type CheckoutRequest struct {
	FullName string         `json:"fullName" validate:"min=2,max=150"`
	Phone    string         `json:"phone" validate:"min=10,max=30"`
	WhatsApp *string        `json:"whatsapp,omitempty" validate:"omitempty,max=30"`
	Address  string         `json:"address" validate:"min=10,max=500"`
	City     string         `json:"city" validate:"min=2,max=100"`
	State    string         `json:"state" validate:"min=2,max=100"`
	Pincode  string         `json:"pincode" validate:"min=5,max=12"`
	Notes    *string        `json:"notes,omitempty" validate:"omitempty,max=2000"`
	Items    []CheckoutItem `json:"items" validate:"min=1,max=100,dive"`
}

type CheckoutItem struct {
	ProductID string `json:"productId" validate:"required,max=64"`
	Size      string `json:"size" validate:"required,oneof=XS S M L XL XXL"`
	Quantity  int    `json:"quantity" validate:"gt=0,lte=1000"`
	Price     int64  `json:"price" validate:"gt=0,lte=10000000"`
}

type CheckoutResponse struct {
	OrderID string `json:"orderId"`
	ID      string `json:"id"`
}
