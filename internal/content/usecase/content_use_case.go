package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"storefront/internal/auth/authctx"
	"storefront/internal/domain"
	"storefront/internal/dto"
	apperrors "storefront/internal/errors"
	"storefront/internal/validation"
)

// DefaultKeys is what the public endpoint returns when no keys are asked for.
var DefaultKeys = []string{"hero_title", "hero_subtext", "hero_image"}

// Defaults fill in keys that have never been edited.
var Defaults = map[string]string{
	"hero_title":    "The Sapphire Heirloom",
	"hero_subtext":  "Hand-finished embroidery. Timeless Kashmiri artistry.",
	"hero_image":    "/hero.jpg",
	"instagram_url": "https://www.instagram.com/",
	"shipping_policy": "We dispatch all orders within 5-7 working days of order confirmation. " +
		"Delivery is typically 3-7 business days after dispatch. Cash on Delivery is available for all orders.",
	"returns_policy": "Items may be returned within 7 days of delivery, unworn and with tags attached. " +
		"Embroidered and custom pieces are final sale unless defective.",
	"privacy_policy": "We collect only the information needed to process your order and never sell it to third parties.",
	"terms_policy":   "All orders are subject to availability. Prices are in INR and include applicable taxes.",
}

type Repository interface {
	FindByKeys(ctx context.Context, keys []string) (map[string]string, error)
	FindAll(ctx context.Context) (map[string]string, error)
	Upsert(ctx context.Context, key, content string) error
}

type ContentUseCase struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewContentUseCase(repo Repository, logger *zap.Logger) *ContentUseCase {
	return &ContentUseCase{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Get resolves each key to its stored value, then its default. Keys with
// neither are left out.
func (uc *ContentUseCase) Get(ctx context.Context, keys []string) (map[string]string, error) {
	keys = cleanKeys(keys)
	if len(keys) == 0 {
		keys = DefaultKeys
	}

	stored, err := uc.repo.FindByKeys(ctx, keys)
	if err != nil {
		return nil, apperrors.Translate("loading site content", err)
	}

	content := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := stored[k]; ok {
			content[k] = v
		} else if v, ok := Defaults[k]; ok {
			content[k] = v
		}
	}
	return content, nil
}

// All returns only what operators have stored.
func (uc *ContentUseCase) All(ctx context.Context, session *domain.Session) (map[string]string, error) {
	if err := authctx.Authorize(session, uc.now()); err != nil {
		return nil, err
	}

	content, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Translate("loading site content", err)
	}
	return content, nil
}

func (uc *ContentUseCase) Set(ctx context.Context, session *domain.Session, req dto.ContentRequest) error {
	if err := authctx.Authorize(session, uc.now()); err != nil {
		return err
	}

	req.Key = strings.TrimSpace(req.Key)
	if err := validation.Struct(req); err != nil {
		return err
	}

	if err := uc.repo.Upsert(ctx, req.Key, req.Content); err != nil {
		return apperrors.Translate("saving site content", err)
	}

	uc.logger.Info("site content updated", zap.String("key", req.Key))
	return nil
}

func cleanKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
