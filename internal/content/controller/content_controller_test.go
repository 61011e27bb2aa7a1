package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/dto"
	apperrors "storefront/internal/errors"
)

type mockContentUseCase struct {
	GetFunc func(ctx context.Context, keys []string) (map[string]string, error)
	AllFunc func(ctx context.Context, session *domain.Session) (map[string]string, error)
	SetFunc func(ctx context.Context, session *domain.Session, req dto.ContentRequest) error
}

func (m *mockContentUseCase) Get(ctx context.Context, keys []string) (map[string]string, error) {
	return m.GetFunc(ctx, keys)
}

func (m *mockContentUseCase) All(ctx context.Context, session *domain.Session) (map[string]string, error) {
	return m.AllFunc(ctx, session)
}

func (m *mockContentUseCase) Set(ctx context.Context, session *domain.Session, req dto.ContentRequest) error {
	return m.SetFunc(ctx, session, req)
}

func TestGetContent_SplitsKeys(t *testing.T) {
	var got []string
	ctrl := NewController(&mockContentUseCase{
		GetFunc: func(ctx context.Context, keys []string) (map[string]string, error) {
			got = keys
			return map[string]string{"hero_title": "T"}, nil
		},
	}, zap.NewNop())

	rec := httptest.NewRecorder()
	ctrl.GetContent(rec, httptest.NewRequest(http.MethodGet, "/api/content?keys=hero_title,shipping_policy", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"hero_title", "shipping_policy"}, got)
	assert.JSONEq(t, `{"hero_title":"T"}`, rec.Body.String())
}

func TestGetContent_NoKeys(t *testing.T) {
	var got []string
	ctrl := NewController(&mockContentUseCase{
		GetFunc: func(ctx context.Context, keys []string) (map[string]string, error) {
			got = keys
			return map[string]string{}, nil
		},
	}, zap.NewNop())

	rec := httptest.NewRecorder()
	ctrl.GetContent(rec, httptest.NewRequest(http.MethodGet, "/api/content", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, got)
}

func TestSetContent_Unauthorized(t *testing.T) {
	ctrl := NewController(&mockContentUseCase{
		SetFunc: func(ctx context.Context, session *domain.Session, req dto.ContentRequest) error {
			return apperrors.NewUnauthorizedError()
		},
	}, zap.NewNop())

	rec := httptest.NewRecorder()
	ctrl.SetContent(rec, httptest.NewRequest(http.MethodPost, "/api/admin/content", strings.NewReader(`{"key":"hero_title","content":"x"}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSetContent_OK(t *testing.T) {
	ctrl := NewController(&mockContentUseCase{
		SetFunc: func(ctx context.Context, session *domain.Session, req dto.ContentRequest) error {
			return nil
		},
	}, zap.NewNop())

	rec := httptest.NewRecorder()
	ctrl.SetContent(rec, httptest.NewRequest(http.MethodPost, "/api/admin/content", strings.NewReader(`{"key":"hero_title","content":"x"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}
