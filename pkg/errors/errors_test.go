package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructors_StatusAndCode(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"invalid input", InvalidInput("credentials required"), CodeInvalidInput, http.StatusBadRequest},
		{"unauthorized", Unauthorized("invalid credentials"), CodeUnauthorized, http.StatusUnauthorized},
		{"forbidden", Forbidden("invalid token"), CodeForbidden, http.StatusForbidden},
		{"not found", NotFound("Room"), CodeNotFound, http.StatusNotFound},
		{"not found with id", NotFoundWithID("Booking", "999"), CodeNotFound, http.StatusNotFound},
		{"conflict", Conflict("Room 101 already exists"), CodeConflict, http.StatusConflict},
		{"validation", Validation("Room validation failed", nil), CodeValidation, http.StatusUnprocessableEntity},
		{"internal", Internal("store failure", errors.New("boom")), CodeInternal, http.StatusInternalServerError},
		{"timeout", Timeout("request timed out"), CodeTimeout, http.StatusGatewayTimeout},
		{"too large", TooLarge("Request body too large"), CodeTooLarge, http.StatusRequestEntityTooLarge},
		{"already exists", AlreadyExists("User", "email", "ana@hotelmiranda.com"), CodeConflict, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", tt.err.Code, tt.wantCode)
			}
			if tt.err.StatusCode() != tt.wantStatus {
				t.Errorf("status = %d, want %d", tt.err.StatusCode(), tt.wantStatus)
			}
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without underlying error",
			appErr:   &AppError{Code: CodeNotFound, Message: "Room not found"},
			expected: "NOT_FOUND: Room not found",
		},
		{
			name: "with underlying error",
			appErr: &AppError{
				Code:    CodeInternal,
				Message: "internal error",
				Err:     errors.New("connection refused"),
			},
			expected: "INTERNAL_ERROR: internal error (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appErr.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	appErr := Internal("wrapped", originalErr)

	if !errors.Is(appErr, originalErr) {
		t.Errorf("errors.Is should see the wrapped error")
	}
}

func TestNotFoundWithID_Details(t *testing.T) {
	err := NotFoundWithID("Booking", "999")

	if err.Message != "Booking not found" {
		t.Errorf("unexpected message %q", err.Message)
	}
	if err.Details["id"] != "999" || err.Details["resource"] != "Booking" {
		t.Errorf("unexpected details %v", err.Details)
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NotFound("User")

	if got := AsAppError(appErr); got != appErr {
		t.Errorf("AsAppError() should return the same AppError")
	}

	wrapped := fmt.Errorf("service layer: %w", appErr)
	if got := AsAppError(wrapped); got != appErr {
		t.Errorf("AsAppError() should unwrap to the AppError")
	}

	regularErr := errors.New("regular error")
	result := AsAppError(regularErr)
	if result.Code != CodeInternal {
		t.Errorf("AsAppError() should map plain errors to internal, got %s", result.Code)
	}
	if result.Err != regularErr {
		t.Errorf("AsAppError() should keep the original error")
	}
}

func TestAlreadyExists(t *testing.T) {
	err := AlreadyExists("Room", "roomNumber", 101)

	if err.Message != "Room with roomNumber 101 already exists" {
		t.Errorf("unexpected message %q", err.Message)
	}
	if err.Details["field"] != "roomNumber" {
		t.Errorf("unexpected details %v", err.Details)
	}
	if _, ok := err.Details["value"]; ok {
		t.Errorf("value must not be echoed in details")
	}
}

func TestHasCode(t *testing.T) {
	conflict := Conflict("duplicate")

	if !HasCode(fmt.Errorf("wrap: %w", conflict), CodeConflict) {
		t.Errorf("HasCode() should look through wrapping")
	}
	if HasCode(conflict, CodeNotFound) {
		t.Errorf("HasCode() matched the wrong code")
	}
}

func TestAppError_ToJSONHidesCause(t *testing.T) {
	err := Internal("Failed to retrieve room", errors.New("mongo: secret host unreachable"))

	var body map[string]any
	if jsonErr := json.Unmarshal(err.ToJSON(), &body); jsonErr != nil {
		t.Fatalf("ToJSON() produced invalid JSON: %v", jsonErr)
	}
	if body["message"] != "Failed to retrieve room" {
		t.Errorf("unexpected message %v", body["message"])
	}
	if body["code"] != CodeInternal {
		t.Errorf("unexpected code %v", body["code"])
	}
	if _, ok := body["details"]; ok {
		t.Errorf("details should be omitted when empty")
	}
	for _, v := range body {
		if s, ok := v.(string); ok && s == "mongo: secret host unreachable" {
			t.Errorf("cause leaked into response body")
		}
	}
}
