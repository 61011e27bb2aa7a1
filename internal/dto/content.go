package dto

type ContentRequest struct {
	Key     string `json:"key" validate:"required,max=100"`
	Content string `json:"content"`
}
