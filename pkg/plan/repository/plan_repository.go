package repository

import "audir/entities"

type PlanRepository interface {
	ResolveByCode(tenantID uint, code string) (*entities.AuditPlan, error)
	ResolveByID(tenantID, id uint) (*entities.AuditPlan, error)
	List(tenantID uint) ([]entities.AuditPlan, error)
	Create(p *entities.AuditPlan) error
	Update(p *entities.AuditPlan) error
}
