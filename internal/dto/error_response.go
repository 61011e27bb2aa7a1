package dto

import (
	"time"

	apperrors "storefront/internal/errors"
)

type ErrorResponse struct {
	TraceID   string                       `json:"traceId,omitempty"`
	Error     string                       `json:"error"`
	Message   string                       `json:"message"`
	Details   []apperrors.ValidationDetail `json:"details,omitempty"`
	Timestamp time.Time                    `json:"timestamp"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}
