package request

// LoginRequest carries no validation tags: missing fields simply fail the
// email lookup.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
