package models

// APIError is the safe-for-display error payload of the response envelope.
// It never carries raw internal error strings or stack traces.
type APIError struct {
	Message string `json:"message"`
}

// Envelope is the uniform JSON response body returned by every endpoint.
//
//	{status: bool, message: string, data: any|null, error: {message}|null}
//
// Status is true for successful responses and false for every failure path.
type Envelope struct {
	Status  bool      `json:"status"`
	Message string    `json:"message"`
	Data    any       `json:"data"`
	Error   *APIError `json:"error"`
}
