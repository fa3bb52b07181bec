package models

// SubmitResponse is the optional JSON body returned by the update endpoints.
//
// Success is a pointer so that a body without the flag can be told apart from
// an explicit "success": false.
type SubmitResponse struct {
	Success *bool  `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
}

// NewSubmitResponse builds a response body with an explicit success flag.
func NewSubmitResponse(success bool, message string) SubmitResponse {
	return SubmitResponse{Success: &success, Message: message}
}
