// Package types holds the wire shapes shared by every API endpoint.
package types

// SuccessEnvelope wraps a successful payload under a "data" key so clients
// can distinguish it from an error body without inspecting the status code.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the client-facing error: a stable machine code, a message
// safe to display, and optional structured details for codes that allow them.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps an APIError under an "error" key.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
