package twitter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a classified upstream failure. Status is the HTTP status the
// facade surfaces to its own caller, not the upstream response status.
type APIError struct {
	Message string
	Status  int
}

func (e *APIError) Error() string {
	return e.Message
}

// errUpstreamRequest wraps a transport-level failure (connection refused,
// timeout) as a 502. The upstream service never classified these; see the
// design notes for the chosen policy.
func errUpstreamRequest(err error) *APIError {
	return &APIError{
		Message: fmt.Sprintf("upstream request failed: %v", err),
		Status:  http.StatusBadGateway,
	}
}

// errUpstreamDecode wraps a non-JSON or structurally unreadable upstream body
// as a 502.
func errUpstreamDecode(err error) *APIError {
	return &APIError{
		Message: fmt.Sprintf("upstream returned invalid JSON: %v", err),
		Status:  http.StatusBadGateway,
	}
}

// checkV1 classifies a v1.1 response body. Only object payloads carry an
// error envelope; array payloads (the user timeline) are always valid. An
// object with a non-null errors array yields a 500 built from the first
// error, falling back to "Unknown error"/"Unknown" when the array is empty
// or the first element is incomplete.
func checkV1(body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}

	var envelope struct {
		Errors []struct {
			Message *string `json:"message"`
			Code    any     `json:"code"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return errUpstreamDecode(err)
	}
	if envelope.Errors == nil {
		return nil
	}

	message := "Unknown error"
	code := any("Unknown")
	if len(envelope.Errors) > 0 {
		first := envelope.Errors[0]
		if first.Message != nil {
			message = *first.Message
		}
		if first.Code != nil {
			code = first.Code
		}
	}
	return &APIError{
		Message: fmt.Sprintf("Twitter V1 API error: %s (code: %v)", message, code),
		Status:  http.StatusInternalServerError,
	}
}

// checkV2 classifies a v2 response body. An Unauthorized title maps to 401;
// any other payload carrying a non-null errors value maps to 500 with
// title/detail fallbacks.
func checkV2(body []byte) error {
	var envelope struct {
		Title  *string         `json:"title"`
		Detail *string         `json:"detail"`
		Errors json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return errUpstreamDecode(err)
	}

	if envelope.Title != nil && *envelope.Title == "Unauthorized" {
		return &APIError{
			Message: "Twitter API error: Unauthorized",
			Status:  http.StatusUnauthorized,
		}
	}

	if len(envelope.Errors) > 0 && !bytes.Equal(envelope.Errors, []byte("null")) {
		title := "Unknown error"
		if envelope.Title != nil {
			title = *envelope.Title
		}
		detail := "Unknown reason"
		if envelope.Detail != nil {
			detail = *envelope.Detail
		}
		return &APIError{
			Message: fmt.Sprintf("Twitter API error: %s: %s", title, detail),
			Status:  http.StatusInternalServerError,
		}
	}

	return nil
}
