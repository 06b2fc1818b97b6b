package dto

type RegisterUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// UpdateUserRequest edits display fields; empty fields are left unchanged.
type UpdateUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
