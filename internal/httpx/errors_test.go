package httpx

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without internal err",
			err:  NewAppError(http.StatusBadRequest, CodeParamMissing, "param missing", nil),
			want: "code=2001, message=param missing",
		},
		{
			name: "error with internal err",
			err:  NewAppError(http.StatusInternalServerError, CodeInternalError, "internal error", errors.New("db locked")),
			want: "code=5001, message=internal error, err=db locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrAlreadyExists(t *testing.T) {
	err := ErrAlreadyExists("")
	if err.HTTPStatus != http.StatusConflict {
		t.Errorf("Expected HTTP status %d, got %d", http.StatusConflict, err.HTTPStatus)
	}
	if err.Code != CodeAlreadyExists {
		t.Errorf("Expected code %d, got %d", CodeAlreadyExists, err.Code)
	}
	if err.Message != "resource already exists" {
		t.Errorf("Expected default message, got '%s'", err.Message)
	}
}

func TestErrNotFound(t *testing.T) {
	err := ErrNotFound("origin not found")
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("Expected HTTP status %d, got %d", http.StatusNotFound, err.HTTPStatus)
	}
	if err.Message != "origin not found" {
		t.Errorf("Expected custom message, got '%s'", err.Message)
	}
}

func TestErrParamMissing(t *testing.T) {
	err := ErrParamMissing("field 'name' is required")
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("Expected HTTP status %d, got %d", http.StatusBadRequest, err.HTTPStatus)
	}
	if err.Code != CodeParamMissing {
		t.Errorf("Expected code %d, got %d", CodeParamMissing, err.Code)
	}
}

func TestErrDatabaseError_WrapsInternal(t *testing.T) {
	inner := errors.New("disk I/O error")
	err := ErrDatabaseError("", inner)
	if err.Err != inner {
		t.Error("Expected internal error to be preserved")
	}
	if err.Code != CodeDatabaseError {
		t.Errorf("Expected code %d, got %d", CodeDatabaseError, err.Code)
	}
}
