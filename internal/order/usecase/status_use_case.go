package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"storefront/internal/auth/authctx"
	"storefront/internal/domain"
	"storefront/internal/dto"
	apperrors "storefront/internal/errors"
)

type StatusUseCase struct {
	orders   OrderRepository
	items    OrderItemRepository
	policy   domain.TransitionPolicy
	recorder Recorder
	logger   *zap.Logger
	now      func() time.Time
}

func NewStatusUseCase(
	orders OrderRepository,
	items OrderItemRepository,
	policy domain.TransitionPolicy,
	recorder Recorder,
	logger *zap.Logger,
) *StatusUseCase {
	if policy == nil {
		policy = domain.PermissiveTransitions{}
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &StatusUseCase{
		orders:   orders,
		items:    items,
		policy:   policy,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// TransitionStatus sets the status of order id and nothing else.
// Concurrent updates to the same order are last-write-wins.
func (uc *StatusUseCase) TransitionStatus(ctx context.Context, session *domain.Session, id string, status string) (*dto.OrderResponse, error) {
	if err := authctx.Authorize(session, uc.now()); err != nil {
		return nil, err
	}

	target := domain.OrderStatus(status)
	if !target.Valid() {
		return nil, apperrors.NewValidationError("validation failed", apperrors.ValidationDetail{
			Field:   "status",
			Message: fmt.Sprintf("status must be one of %s", statusList()),
		})
	}

	current, err := uc.orders.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Translate("loading order", err)
	}

	if !uc.policy.Allowed(current.Status, target) {
		return nil, apperrors.NewValidationError("validation failed", apperrors.ValidationDetail{
			Field:   "status",
			Message: fmt.Sprintf("cannot move order from %s to %s", current.Status, target),
		})
	}

	if err := uc.orders.UpdateStatus(ctx, id, target); err != nil {
		uc.logger.Error("failed to update order status", zap.String("id", id), zap.Error(err))
		return nil, apperrors.Translate("updating order status", err)
	}

	uc.recorder.ObserveStatusChange(string(target))
	uc.logger.Info("order status updated",
		zap.String("id", id),
		zap.String("orderCode", current.OrderCode),
		zap.String("from", string(current.Status)),
		zap.String("to", string(target)),
		zap.String("sessionId", session.ID),
	)

	updated, err := uc.orders.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Translate("reloading order", err)
	}

	orders := []domain.Order{*updated}
	if err := attachItems(ctx, uc.items, orders); err != nil {
		return nil, apperrors.Translate("loading order items", err)
	}

	resp := dto.NewOrderResponse(orders[0])
	return &resp, nil
}
