package request

// LoginRequest is the request body for signing in
type LoginRequest struct {
	Handle string `json:"handle"`
	Secret string `json:"secret"`
	Role   string `json:"role"`
}
