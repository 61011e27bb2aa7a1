package dto

import (
	"time"

	"storefront/internal/domain"
)

type OrderResponse struct {
	ID        string              `json:"id"`
	OrderID   string              `json:"orderId"`
	Status    string              `json:"status"`
	FullName  string              `json:"fullName"`
	Phone     string              `json:"phone"`
	WhatsApp  *string             `json:"whatsapp"`
	Address   string              `json:"address"`
	City      string              `json:"city"`
	State     string              `json:"state"`
	Pincode   string              `json:"pincode"`
	Notes     *string             `json:"notes"`
	Total     int64               `json:"total"`
	CreatedAt time.Time           `json:"createdAt"`
	Items     []OrderItemResponse `json:"items"`
	Outreach  *OutreachResponse   `json:"outreach,omitempty"`
}

type OrderItemResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Size        string `json:"size"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
}

type OutreachResponse struct {
	WhatsAppURL string `json:"whatsAppUrl"`
	SMSTemplate string `json:"smsTemplate"`
}

type StatsResponse struct {
	Total      int   `json:"total"`
	Pending    int   `json:"pending"`
	Confirmed  int   `json:"confirmed"`
	Dispatched int   `json:"dispatched"`
	Delivered  int   `json:"delivered"`
	Cancelled  int   `json:"cancelled"`
	Revenue    int64 `json:"revenue"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Stats  StatsResponse   `json:"stats"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Confirmed Dispatched Delivered Cancelled"`
}

func NewOrderResponse(o domain.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Size:        item.Size,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	return OrderResponse{
		ID:        o.ID,
		OrderID:   o.OrderCode,
		Status:    string(o.Status),
		FullName:  o.FullName,
		Phone:     o.Phone,
		WhatsApp:  o.WhatsApp,
		Address:   o.Address,
		City:      o.City,
		State:     o.State,
		Pincode:   o.Pincode,
		Notes:     o.Notes,
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
		Items:     items,
	}
}
