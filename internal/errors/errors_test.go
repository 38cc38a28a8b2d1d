package errors

import (
	"net/http"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusFromErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "validation",
			err:  NewError("bad vat rate").WithHint("VAT rate must be 11 or 12").Mark(ErrValidation),
			want: http.StatusBadRequest,
		},
		{
			name: "invalid operation",
			err:  NewError("nope").Mark(ErrInvalidOperation),
			want: http.StatusBadRequest,
		},
		{
			name: "not found",
			err:  WithError(errors.New("missing")).Mark(ErrNotFound),
			want: http.StatusNotFound,
		},
		{
			name: "notification",
			err:  WithError(errors.New("broker down")).WithHint("Failed to publish tax notification").Mark(ErrNotification),
			want: http.StatusServiceUnavailable,
		},
		{
			name: "system",
			err:  NewError("publisher down").Mark(ErrSystem),
			want: http.StatusInternalServerError,
		},
		{
			name: "unmarked",
			err:  errors.New("plain"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromErr(tt.err))
		})
	}
}

func TestBuilderKeepsHintsAndDetails(t *testing.T) {
	err := NewError("withholding scheme is invalid").
		WithHint("Withholding scheme must be one of pph22, pph23, custom").
		WithReportableDetails(map[string]any{"withholding": "pph21"}).
		Mark(ErrValidation)

	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
	assert.Contains(t, errors.GetAllHints(err), "Withholding scheme must be one of pph22, pph23, custom")
	assert.NotEmpty(t, errors.GetAllSafeDetails(err))
}

func TestInternalErrorMessages(t *testing.T) {
	assert.Equal(t, "validation_error: validation error", ErrValidation.Error())

	wrapped := &InternalError{Code: ErrCodeSystemError, Message: "system error", Err: errors.New("boom")}
	assert.Equal(t, "system_error: boom", wrapped.Error())
	assert.True(t, wrapped.Is(ErrSystem))
}

func TestCodeFromErr(t *testing.T) {
	assert.Equal(t, ErrCodeValidation, CodeFromErr(NewError("x").Mark(ErrValidation)))
	assert.Equal(t, ErrCodeNotification, CodeFromErr(NewError("x").Mark(ErrNotification)))
	assert.Equal(t, ErrCodeSystemError, CodeFromErr(errors.New("plain")))
}
