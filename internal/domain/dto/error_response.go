package dto

import "time"

// ErrorResponse is the JSON body returned for any non-2xx API response.
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid from, expected YYYY-MM-DD"`
	ErrorDetails string    `json:"error_details,omitempty" example:"parsing time \"2025/01/15\""`
	Timestamp    time.Time `json:"timestamp" example:"2025-01-20T10:00:00Z"`
}

// Error renders "message" or "message: details".
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current UTC time.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
