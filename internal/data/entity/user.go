package entity

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	Base
	Email         string   `db:"email"`
	Name          string   `db:"name"`
	PasswordHash  string   `db:"password"`
	Role          UserRole `db:"role"`
	EmailVerified bool     `db:"email_verified"`
	IsActive      bool     `db:"is_active"`
}
