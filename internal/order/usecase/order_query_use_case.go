package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"storefront/internal/auth/authctx"
	"storefront/internal/domain"
	"storefront/internal/dto"
	apperrors "storefront/internal/errors"
	"storefront/internal/order/ordercode"
	"storefront/internal/report"
)

type OrderQueryUseCase struct {
	orders OrderRepository
	items  OrderItemRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewOrderQueryUseCase(orders OrderRepository, items OrderItemRepository, logger *zap.Logger) *OrderQueryUseCase {
	return &OrderQueryUseCase{
		orders: orders,
		items:  items,
		logger: logger,
		now:    time.Now,
	}
}

// LookupByCode is the public order-tracking lookup; codes are matched
// case-insensitively.
func (uc *OrderQueryUseCase) LookupByCode(ctx context.Context, code string) (*dto.OrderResponse, error) {
	normalized := ordercode.Normalize(code)
	if normalized == "" {
		return nil, apperrors.NewNotFoundError("order not found")
	}

	order, err := uc.orders.FindByCode(ctx, normalized)
	if err != nil {
		return nil, apperrors.Translate("loading order", err)
	}

	orders := []domain.Order{*order}
	if err := attachItems(ctx, uc.items, orders); err != nil {
		return nil, apperrors.Translate("loading order items", err)
	}

	resp := dto.NewOrderResponse(orders[0])
	return &resp, nil
}

// GetByID returns the operator view of one order, including the outreach
// text staff send by hand.
func (uc *OrderQueryUseCase) GetByID(ctx context.Context, session *domain.Session, id string) (*dto.OrderResponse, error) {
	if err := authctx.Authorize(session, uc.now()); err != nil {
		return nil, err
	}

	order, err := uc.orders.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Translate("loading order", err)
	}

	orders := []domain.Order{*order}
	if err := attachItems(ctx, uc.items, orders); err != nil {
		return nil, apperrors.Translate("loading order items", err)
	}

	resp := dto.NewOrderResponse(orders[0])
	outreach := Outreach(orders[0])
	resp.Outreach = &outreach
	return &resp, nil
}

// ListOrders returns the filtered orders newest first. Stats always cover
// the whole order set, independent of the filter.
func (uc *OrderQueryUseCase) ListOrders(ctx context.Context, session *domain.Session, filter domain.OrderFilter) (*dto.OrderListResponse, error) {
	if err := authctx.Authorize(session, uc.now()); err != nil {
		return nil, err
	}

	if filter.Status != "" && !filter.Status.Valid() {
		return nil, apperrors.NewValidationError("validation failed", apperrors.ValidationDetail{
			Field:   "status",
			Message: fmt.Sprintf("status must be one of %s", statusList()),
		})
	}

	var (
		orders []domain.Order
		totals []domain.StatusTotal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = uc.orders.List(gctx, filter)
		if err != nil {
			return err
		}
		return attachItems(gctx, uc.items, orders)
	})
	g.Go(func() error {
		var err error
		totals, err = uc.orders.StatusTotals(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("listing orders failed", zap.Error(err))
		return nil, apperrors.Translate("listing orders", err)
	}

	resp := &dto.OrderListResponse{
		Orders: make([]dto.OrderResponse, 0, len(orders)),
		Stats:  statsResponse(report.FromTotals(totals)),
	}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, dto.NewOrderResponse(o))
	}

	return resp, nil
}

// Export renders every order, newest first, as CSV and returns the
// attachment filename alongside the bytes.
func (uc *OrderQueryUseCase) Export(ctx context.Context, session *domain.Session) ([]byte, string, error) {
	now := uc.now()
	if err := authctx.Authorize(session, now); err != nil {
		return nil, "", err
	}

	orders, err := uc.orders.List(ctx, domain.OrderFilter{})
	if err != nil {
		return nil, "", apperrors.Translate("loading orders for export", err)
	}
	if err := attachItems(ctx, uc.items, orders); err != nil {
		return nil, "", apperrors.Translate("loading order items for export", err)
	}

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, orders); err != nil {
		return nil, "", apperrors.NewStorageError("rendering export", err)
	}

	uc.logger.Info("orders exported", zap.Int("orderCount", len(orders)))
	return buf.Bytes(), report.Filename(now), nil
}

// Outreach builds the WhatsApp link and SMS text for manual follow-up.
// Nothing is sent.
func Outreach(o domain.Order) dto.OutreachResponse {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, o.ContactNumber())

	return dto.OutreachResponse{
		WhatsAppURL: "https://wa.me/91" + digits,
		SMSTemplate: fmt.Sprintf("Hi %s, Your order %s has been confirmed. We will dispatch shortly.", o.FullName, o.OrderCode),
	}
}

func statsResponse(s report.Stats) dto.StatsResponse {
	return dto.StatsResponse{
		Total:      s.Total,
		Pending:    s.Pending,
		Confirmed:  s.Confirmed,
		Dispatched: s.Dispatched,
		Delivered:  s.Delivered,
		Cancelled:  s.Cancelled,
		Revenue:    s.Revenue,
	}
}

func statusList() string {
	names := make([]string, len(domain.OrderStatuses))
	for i, st := range domain.OrderStatuses {
		names[i] = string(st)
	}
	return "[" + strings.Join(names, " ") + "]"
}
