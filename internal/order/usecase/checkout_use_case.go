package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/dto"
	apperrors "storefront/internal/errors"
	"storefront/internal/validation"
)

type CheckoutOptions struct {
	MaxRetryAttempts int
	// VerifyCatalogPrice rejects lines whose asserted price differs from
	// the current catalog price.
	VerifyCatalogPrice bool
}

type CheckoutUseCase struct {
	checkoutSvc CheckoutService
	codes       CodeGenerator
	catalog     CatalogReader
	recorder    Recorder
	logger      *zap.Logger
	opts        CheckoutOptions
	now         func() time.Time
}

func NewCheckoutUseCase(
	checkoutSvc CheckoutService,
	codes CodeGenerator,
	catalog CatalogReader,
	recorder Recorder,
	logger *zap.Logger,
	opts CheckoutOptions,
) *CheckoutUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if opts.MaxRetryAttempts < 1 {
		opts.MaxRetryAttempts = 1
	}
	return &CheckoutUseCase{
		checkoutSvc: checkoutSvc,
		codes:       codes,
		catalog:     catalog,
		recorder:    recorder,
		logger:      logger,
		opts:        opts,
		now:         time.Now,
	}
}

func (uc *CheckoutUseCase) Submit(ctx context.Context, req dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	req = normalizeCheckout(req)

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	if uc.opts.VerifyCatalogPrice {
		if err := uc.verifyPrices(ctx, req.Items); err != nil {
			return nil, err
		}
	}

	orderID := uuid.Must(uuid.NewV7()).String()
	items := make([]domain.OrderItem, len(req.Items))
	for i, line := range req.Items {
		items[i] = domain.OrderItem{
			ID:        uuid.Must(uuid.NewV7()).String(),
			OrderID:   orderID,
			ProductID: line.ProductID,
			Size:      line.Size,
			Quantity:  line.Quantity,
			Price:     line.Price,
		}
	}

	total, err := domain.ItemsTotal(items)
	if err != nil {
		var overflow *domain.TotalOverflowError
		if !errors.As(err, &overflow) {
			return nil, err
		}
		return nil, apperrors.NewValidationError("validation failed", apperrors.ValidationDetail{
			Field:   "items[" + strconv.Itoa(overflow.Index) + "]",
			Message: "line amount exceeds the maximum order total",
		})
	}

	order := domain.Order{
		ID:        orderID,
		Status:    domain.OrderStatusPending,
		FullName:  req.FullName,
		Phone:     req.Phone,
		WhatsApp:  req.WhatsApp,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		Pincode:   req.Pincode,
		Notes:     req.Notes,
		Total:     total,
		CreatedAt: uc.now().UTC().Truncate(time.Millisecond),
		Items:     items,
	}

	for attempt := 1; attempt <= uc.opts.MaxRetryAttempts; attempt++ {
		order.OrderCode = uc.codes.Next()

		err := uc.checkoutSvc.CreateOrder(ctx, order)
		if err == nil {
			uc.recorder.ObserveOrderCreated()
			uc.logger.Info("order placed",
				zap.String("orderCode", order.OrderCode),
				zap.String("id", order.ID),
				zap.Int64("total", order.Total),
				zap.Int("attempt", attempt),
			)
			return &dto.CheckoutResponse{OrderID: order.OrderCode, ID: order.ID}, nil
		}

		if _, ok := apperrors.IsConflictError(err); ok && attempt < uc.opts.MaxRetryAttempts {
			uc.logger.Warn("order code collision, retrying with a fresh code",
				zap.Int("attempt", attempt),
				zap.Int("maxAttempts", uc.opts.MaxRetryAttempts),
			)
			continue
		}

		return nil, apperrors.Translate("creating order", err)
	}

	return nil, apperrors.NewConflictError("could not allocate a unique order code")
}

func (uc *CheckoutUseCase) verifyPrices(ctx context.Context, lines []dto.CheckoutItem) error {
	ids := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}

	products, missing, err := uc.catalog.GetProductsByIDs(ctx, ids)
	if err != nil {
		return apperrors.Translate("loading catalog prices", err)
	}

	prices := make(map[string]int64, len(products))
	for _, p := range products {
		prices[p.ID] = p.Price
	}
	unknown := make(map[string]struct{}, len(missing))
	for _, id := range missing {
		unknown[id] = struct{}{}
	}

	var details []apperrors.ValidationDetail
	for i, line := range lines {
		field := "items[" + strconv.Itoa(i) + "]"
		if _, ok := unknown[line.ProductID]; ok {
			details = append(details, apperrors.ValidationDetail{
				Field:   field + ".productId",
				Message: fmt.Sprintf("product %s does not exist", line.ProductID),
			})
			continue
		}
		if price := prices[line.ProductID]; price != line.Price {
			details = append(details, apperrors.ValidationDetail{
				Field:   field + ".price",
				Message: fmt.Sprintf("price %d does not match current price %d", line.Price, price),
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

func normalizeCheckout(req dto.CheckoutRequest) dto.CheckoutRequest {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Address = strings.TrimSpace(req.Address)
	req.City = strings.TrimSpace(req.City)
	req.State = strings.TrimSpace(req.State)
	req.Pincode = strings.TrimSpace(req.Pincode)
	req.WhatsApp = optional(req.WhatsApp)
	req.Notes = optional(req.Notes)
	return req
}

func optional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
