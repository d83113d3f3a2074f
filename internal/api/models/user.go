package models

// User represents a row in the users table. Rows are never updated or
// deleted after creation.
type User struct {
	ID           int64  `db:"id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
}

// RegisterRequest carries the registration form fields. The tags encode
// the account policy: short alphanumeric username, long password.
type RegisterRequest struct {
	Username string `form:"username" validate:"required,min=3,max=10,alphanum"`
	Password string `form:"password" validate:"required,min=12,max=70"`
}

// LoginRequest carries the login form fields. Emptiness is the only
// structural check here; everything beyond that is an authentication
// concern and must not leak which part was wrong.
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}
