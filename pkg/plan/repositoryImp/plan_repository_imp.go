package repositoryImp

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"audir/entities"
	"audir/pkg/apperr"
	"audir/pkg/plan/repository"
)

type planRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlanRepository { return &planRepo{db} }

func (r *planRepo) ResolveByCode(tenantID uint, code string) (*entities.AuditPlan, error) {
	var p entities.AuditPlan
	err := r.db.Where("tenant_id = ? AND code = ?", tenantID, code).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("audit plan %q: %w", code, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *planRepo) ResolveByID(tenantID, id uint) (*entities.AuditPlan, error) {
	var p entities.AuditPlan
	err := r.db.Where("tenant_id = ? AND id = ?", tenantID, id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("audit plan %d: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *planRepo) List(tenantID uint) ([]entities.AuditPlan, error) {
	var out []entities.AuditPlan
	if err := r.db.Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *planRepo) Create(p *entities.AuditPlan) error { return r.db.Create(p).Error }

func (r *planRepo) Update(p *entities.AuditPlan) error { return r.db.Save(p).Error }
