package repositoryImp

import (
	"gorm.io/gorm"

	"audir/entities"
	"audir/pkg/department/repository"
)

type departmentRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.DepartmentRepository { return &departmentRepo{db} }

func (r *departmentRepo) List(tenantID uint) ([]entities.Department, error) {
	var out []entities.Department
	if err := r.db.Where("tenant_id = ?", tenantID).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *departmentRepo) Create(d *entities.Department) error { return r.db.Create(d).Error }
