package external

// APIErrorResponse is the error body returned by the task backend.
// Backends in the wild answer with either "message" or "error".
type APIErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Text returns the most specific message available.
func (r *APIErrorResponse) Text() string {
	if r == nil {
		return ""
	}
	if r.Message != "" {
		return r.Message
	}
	return r.Error
}
