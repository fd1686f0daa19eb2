package repository

import "audir/entities"

type UserRepository interface {
	FindByID(tenantID, id uint) (*entities.User, error)
	FindByEmail(tenantID uint, email string) (*entities.User, error)
	// FindByEmailAnyTenant backs login, where the tenant is not yet known.
	FindByEmailAnyTenant(email string) (*entities.User, error)
	List(tenantID uint) ([]entities.User, error)
	ListByDepartment(tenantID uint, department string) ([]entities.User, error)
	Create(u *entities.User) error
	TouchLastActive(u *entities.User) error
}
