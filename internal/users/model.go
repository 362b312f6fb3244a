package users

import (
	"time"

	"github.com/Suleymanaz/DB-TECHv2/internal/rbac"
)

// User is an account belonging to a tenant company. SUPER_ADMIN users carry
// no company of their own and act across tenants.
type User struct {
	ID           int64     `json:"id"`
	CompanyID    int64     `json:"company_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         rbac.Role `json:"role"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Company is a tenant. All catalog, trading and reporting data hangs off a
// company id.
type Company struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
