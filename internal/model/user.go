package model

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account able to sign in to the admin area
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Do not expose password hash in JSON responses
	Role         string `json:"role"`
}

// CreateUserRequest carries the plaintext password; it is hashed by the repository
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=user admin"`
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// NewUser builds the stored record. The caller supplies the already hashed password.
func NewUser(id int, req CreateUserRequest, passwordHash string) User {
	role := req.Role
	if role == "" {
		role = RoleUser
	}
	return User{
		ID:           id,
		Username:     req.Username,
		PasswordHash: passwordHash,
		Role:         role,
	}
}
