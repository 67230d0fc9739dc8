package user

type Role string

const (
	RoleAdmin    Role = "ADMIN"    // Office administration
	RoleEmployee Role = "EMPLOYEE" // Regular employee
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

type User struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         Role    `json:"role"`
	PasswordHash string  `json:"password_hash"`
	Department   *string `json:"department,omitempty"`
	JobTitle     *string `json:"job_title,omitempty"`
}

// IsAdmin checks if user belongs to office administration
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsEmployee checks if user is a regular employee
func (u User) IsEmployee() bool {
	return u.Role == RoleEmployee
}
