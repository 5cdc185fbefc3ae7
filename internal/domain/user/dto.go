package user

// The backend speaks Portuguese field names; they stay on the wire as-is.

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// CreateRequest is the payload for registering a new account. Password is
// write-only: accepted here, never returned.
type CreateRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// UpdateRequest allows a partial name/email change. The password is not
// altered through this path.
type UpdateRequest struct {
	Name  string `json:"nome"`
	Email string `json:"email"`
}
