package handlers

import "shoepay_app_echo/internal/yagout"

// FailedResponse is the error envelope for the direct-API and hosted
// endpoints.
type FailedResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   any    `json:"error,omitempty"`
}

// LinkErrorResponse is the error envelope for the link endpoints; the
// generated order id is included so the client can correlate a retry.
type LinkErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   any    `json:"error,omitempty"`
	OrderID string `json:"order_id"`
}

// DecryptTestRequest is the body of POST /test/decrypt.
type DecryptTestRequest struct {
	EncryptedData string `json:"encryptedData"`
}

type DecryptTestResponse struct {
	Success       bool               `json:"success"`
	EncryptedData string             `json:"encrypted_data"`
	DecryptedData string             `json:"decrypted_data"`
	ParseResult   yagout.ParseResult `json:"parse_result"`
	Timestamp     string             `json:"timestamp"`
}

type DecryptTestError struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

type HealthResponse struct {
	Message   string `json:"message"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
