package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"log/slog"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "with cause",
			err:  NewParsingError("bad row", fmt.Errorf("field count mismatch")),
			want: "[PARSING] bad row: field count mismatch",
		},
		{
			name: "without cause",
			err:  NewMissingFileError("orders_dataset.csv not found", nil),
			want: "[MISSING_FILE] orders_dataset.csv not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := NewParsingError("wrapper", cause)

	assert.True(t, stderrors.Is(err, cause))

	var appErr *AppError
	wrapped := fmt.Errorf("outer: %w", err)
	require.True(t, stderrors.As(wrapped, &appErr))
	assert.Equal(t, ErrTypeParsing, appErr.Type)
}

func TestAppError_WithContext(t *testing.T) {
	err := NewMissingFileError("missing", nil).
		WithContext("file", "orders_dataset.csv").
		WithContext("dir", "/data")

	assert.Equal(t, "orders_dataset.csv", err.Context["file"])
	assert.Equal(t, "/data", err.Context["dir"])
}

func TestErrorHandler_ErrorToProblem(t *testing.T) {
	handler := NewErrorHandler(slog.Default())
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{
			name:       "missing file maps to 500",
			err:        NewMissingFileError("orders_dataset.csv not found", nil),
			wantStatus: http.StatusInternalServerError,
			wantType:   TypeMissingFile,
		},
		{
			name:       "parse error maps to 500",
			err:        NewParsingError("malformed csv", nil),
			wantStatus: http.StatusInternalServerError,
			wantType:   TypeParsing,
		},
		{
			name:       "validation maps to 400",
			err:        NewValidationError("start must not be after end", nil),
			wantStatus: http.StatusBadRequest,
			wantType:   TypeValidation,
		},
		{
			name:       "unknown error maps to generic 500",
			err:        fmt.Errorf("boom"),
			wantStatus: http.StatusInternalServerError,
			wantType:   TypeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problem := handler.ErrorToProblem(tt.err, req)
			assert.Equal(t, tt.wantStatus, problem.Status)
			assert.Equal(t, tt.wantType, problem.Type)
		})
	}
}

func TestProblemDetails_MarshalJSON(t *testing.T) {
	problem := NewProblemDetails(
		http.StatusBadRequest, TypeValidation, "Validation Failed", "bad date", "/api/dashboard",
	).WithExtension("trace_id", "abc-123")

	data, err := problem.MarshalJSON()
	require.NoError(t, err)

	assert.Contains(t, string(data), `"status":400`)
	assert.Contains(t, string(data), `"trace_id":"abc-123"`)
	assert.Contains(t, string(data), `"detail":"bad date"`)
}
