package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestConstructorsStatusAndCode(t *testing.T) {
	tests := []struct {
		name       string
		err        *Error
		wantCode   Code
		wantStatus int
	}{
		{"video unavailable", VideoUnavailable("abc123def45"), CodeVideoUnavailable, http.StatusNotFound},
		{"transcripts disabled", TranscriptsDisabled("abc123def45"), CodeTranscriptsDisabled, http.StatusNotFound},
		{"no transcript found", NoTranscriptFound("abc123def45"), CodeNoTranscriptFound, http.StatusNotFound},
		{"language not available", LanguageNotAvailable("abc123def45", "de", []string{"en"}), CodeLanguageNotAvailable, http.StatusNotFound},
		{"ip blocked", IPBlocked(), CodeIPBlocked, http.StatusForbidden},
		{"invalid format", InvalidFormat("xml"), CodeInvalidFormat, http.StatusBadRequest},
		{"network error", NetworkError(errors.New("dial tcp: refused")), CodeNetworkError, http.StatusBadGateway},
		{"timeout", Timeout(errors.New("deadline exceeded")), CodeTimeout, http.StatusGatewayTimeout},
		{"internal", Internal(errors.New("boom")), CodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.wantCode {
				t.Errorf("expected code %s, got %s", tc.wantCode, tc.err.Code)
			}
			if tc.err.HTTPStatus != tc.wantStatus {
				t.Errorf("expected status %d, got %d", tc.wantStatus, tc.err.HTTPStatus)
			}
		})
	}
}

func TestErrorStringIncludesCause(t *testing.T) {
	err := NetworkError(errors.New("connection reset"))
	if !strings.Contains(err.Error(), "NETWORK_ERROR") {
		t.Errorf("error string should contain code, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "connection reset") {
		t.Errorf("error string should contain cause, got %q", err.Error())
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NetworkError(cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is should match the wrapped cause")
	}
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", TranscriptsDisabled("abc123def45"))
	appErr, ok := As(wrapped)
	if !ok {
		t.Fatal("expected As to find *Error in wrapped chain")
	}
	if appErr.Code != CodeTranscriptsDisabled {
		t.Errorf("expected TRANSCRIPTS_DISABLED, got %s", appErr.Code)
	}

	if _, ok := As(errors.New("plain")); ok {
		t.Error("expected As to fail for a plain error")
	}
}

func TestToResponseOmitsCause(t *testing.T) {
	err := NetworkError(errors.New("secret internal detail"))
	body, jsonErr := json.Marshal(err.ToResponse())
	if jsonErr != nil {
		t.Fatalf("unexpected error: %v", jsonErr)
	}
	if strings.Contains(string(body), "secret internal detail") {
		t.Errorf("response body leaked cause: %s", body)
	}
	if !strings.Contains(string(body), `"code":"NETWORK_ERROR"`) {
		t.Errorf("response body missing code: %s", body)
	}
}

func TestIPBlockedHintsAtProxy(t *testing.T) {
	err := IPBlocked()
	if !strings.Contains(err.Message, "PROXY_USERNAME") {
		t.Errorf("IP_BLOCKED message should recommend proxy configuration, got %q", err.Message)
	}
}
