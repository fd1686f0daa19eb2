package entities

import "time"

type Tenant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"` // active|suspended
	CreatedAt time.Time `json:"created_at"`
}

// Role values carried in identity tokens.
const (
	RoleManager = "Manager"
	RoleAuditor = "Auditor"
	RoleMember  = "Member"
)

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	TenantID     uint       `gorm:"index;uniqueIndex:ux_user_email" json:"-"`
	Email        string     `gorm:"uniqueIndex:ux_user_email" json:"email"`
	PasswordHash string     `json:"-"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Phone        string     `json:"phone"`
	Department   string     `json:"department"`
	Role         string     `json:"role"`   // Manager|Auditor|Member
	Status       string     `json:"status"` // active|inactive
	LastActive   *time.Time `json:"last_active"`
	CreatedAt    time.Time  `json:"created_at"`
}

// FullName is what auditor_name on a plan is matched against.
func (u User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Email
	}
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

type Department struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TenantID  uint      `gorm:"index" json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
