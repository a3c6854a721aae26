package dto

// APIResponse is the envelope returned by every endpoint. Exactly one
// of Data or Error is set.
type APIResponse struct {
	Data  interface{}  `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}
