package dto

type ContactRequest struct {
	Name    string  `json:"name" validate:"min=2,max=150"`
	Email   string  `json:"email" validate:"required,email,max=191"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Message string  `json:"message" validate:"min=10,max=5000"`
}

type ContactResponse struct {
	OK bool `json:"ok"`
}
