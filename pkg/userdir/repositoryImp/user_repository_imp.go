package repositoryImp

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"audir/entities"
	"audir/pkg/apperr"
	"audir/pkg/userdir/repository"
)

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) FindByID(tenantID, id uint) (*entities.User, error) {
	var u entities.User
	err := r.db.Where("tenant_id = ? AND id = ?", tenantID, id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %d: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByEmail(tenantID uint, email string) (*entities.User, error) {
	var u entities.User
	err := r.db.Where("tenant_id = ? AND email = ?", tenantID, strings.ToLower(email)).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %s: %w", email, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByEmailAnyTenant(email string) (*entities.User, error) {
	var u entities.User
	err := r.db.Where("email = ?", strings.ToLower(email)).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %s: %w", email, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) List(tenantID uint) ([]entities.User, error) {
	var out []entities.User
	if err := r.db.Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *userRepo) ListByDepartment(tenantID uint, department string) ([]entities.User, error) {
	var out []entities.User
	err := r.db.
		Where("tenant_id = ? AND LOWER(TRIM(department)) = ? AND status = ?",
			tenantID, strings.ToLower(strings.TrimSpace(department)), "active").
		Order("first_name ASC, last_name ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *userRepo) Create(u *entities.User) error {
	u.Email = strings.ToLower(u.Email)
	return r.db.Create(u).Error
}

func (r *userRepo) TouchLastActive(u *entities.User) error {
	now := time.Now()
	u.LastActive = &now
	return r.db.Model(u).Update("last_active", now).Error
}
