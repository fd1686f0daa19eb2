package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"audir/entities"
	"audir/pkg/template/repository"
)

type templateRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TemplateRepository { return &templateRepo{db} }

func (r *templateRepo) QuestionCount(tenantID uint, name string) (int, error) {
	t, err := r.FindByName(tenantID, name)
	if err != nil {
		return 0, err
	}
	if t == nil {
		return 0, nil
	}
	return len(t.Questions), nil
}

func (r *templateRepo) FindByName(tenantID uint, name string) (*entities.AuditTemplate, error) {
	var t entities.AuditTemplate
	err := r.db.Where("tenant_id = ? AND name = ?", tenantID, name).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *templateRepo) List(tenantID uint) ([]entities.AuditTemplate, error) {
	var out []entities.AuditTemplate
	if err := r.db.Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *templateRepo) Create(t *entities.AuditTemplate) error { return r.db.Create(t).Error }
