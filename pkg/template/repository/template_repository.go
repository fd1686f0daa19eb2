package repository

import "audir/entities"

type TemplateRepository interface {
	// QuestionCount returns the checklist length for the template named by
	// a plan's audit_type; 0 when the template is missing.
	QuestionCount(tenantID uint, name string) (int, error)
	FindByName(tenantID uint, name string) (*entities.AuditTemplate, error)
	List(tenantID uint) ([]entities.AuditTemplate, error)
	Create(t *entities.AuditTemplate) error
}
