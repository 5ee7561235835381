package models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminUser is the single configured admin identity. There is no user
// table; the values come from the environment.
type AdminUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
