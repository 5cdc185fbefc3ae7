package user

// User is one account record as the backend returns it. The backend assigns
// the identifier and the creation timestamp; the password is never echoed back.
type User struct {
	ID        int    `json:"id"`
	Name      string `json:"nome"`
	Email     string `json:"email"`
	CreatedAt string `json:"data_criacao,omitempty"`
}
