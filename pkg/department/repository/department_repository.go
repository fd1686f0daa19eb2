package repository

import "audir/entities"

type DepartmentRepository interface {
	List(tenantID uint) ([]entities.Department, error)
	Create(d *entities.Department) error
}
