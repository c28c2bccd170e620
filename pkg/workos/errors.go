package workos

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ConfigurationError reports a precondition the caller did not meet, such as
// requesting the API key before setting it or passing an empty argument.
// Nothing is sent over the wire when it is returned.
type ConfigurationError struct {
	Message string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return "invalid input: " + e.Message
}

// RequestError is returned when the API answers with a status outside 2xx.
type RequestError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int

	// Status is the HTTP status text (e.g. "404 Not Found")
	Status string

	// Code is the machine readable error code from the body, when present
	Code string

	// Message is the human readable explanation from the body, when present
	Message string
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status: %s", e.Status)
	}
	if e.Code == "" {
		return fmt.Sprintf("request failed with status: %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("request failed with status: %s: %s: %s", e.Status, e.Code, e.Message)
}

// DeserializationError is returned when a successful response body does not
// match the expected shape, including unknown enum values.
type DeserializationError struct {
	Err error
}

// Error implements the error interface.
func (e *DeserializationError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

// Unwrap returns the underlying decoder error.
func (e *DeserializationError) Unwrap() error { return e.Err }

// errorBody covers both error shapes the API uses: the management endpoints
// answer with code/message, the OAuth endpoints with error/error_description.
type errorBody struct {
	Code             string `json:"code"`
	Message          string `json:"message"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// parseErrorResponse turns a non-2xx response into a *RequestError, keeping
// whatever detail the body carries. The body is optional.
func parseErrorResponse(resp *http.Response, body []byte) error {
	reqErr := &RequestError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
	}
	if reqErr.Status == "" {
		reqErr.Status = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return reqErr
	}

	switch {
	case eb.Code != "" || eb.Message != "":
		reqErr.Code = eb.Code
		reqErr.Message = eb.Message
	case eb.Error != "":
		reqErr.Code = eb.Error
		reqErr.Message = eb.ErrorDescription
	}

	return reqErr
}
