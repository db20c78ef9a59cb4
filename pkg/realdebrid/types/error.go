package types

// ErrorResponse is the body the API sends with a failed request.
type ErrorResponse struct {
	Message string `json:"error"`
	Code    int    `json:"error_code"`
}
