package response

// StatusResponse is the success envelope: {"error": false, "message": "..."}.
type StatusResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

func OK(message string) StatusResponse {
	return StatusResponse{Error: false, Message: message}
}
