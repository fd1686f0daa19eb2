package repositoryImp

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"audir/entities"
	"audir/pkg/apperr"
	"audir/pkg/nc/repository"
)

type ncRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.NcRepository { return &ncRepo{db} }

func (r *ncRepo) EnsureForAnswer(tenantID uint, answerID string) (*entities.NcRecord, error) {
	rec := &entities.NcRecord{
		TenantID: tenantID,
		AnswerID: answerID,
		Status:   entities.NcAssigned,
	}
	// DO NOTHING on the (tenant, answer) key: racing submits both land here
	// and exactly one row survives.
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "answer_id"}},
		DoNothing: true,
	}).Create(rec).Error
	if err != nil {
		return nil, err
	}
	return r.mustFind(tenantID, answerID)
}

func (r *ncRepo) FindByAnswer(tenantID uint, answerID string) (*entities.NcRecord, error) {
	var rec entities.NcRecord
	err := r.db.Where("tenant_id = ? AND answer_id = ?", tenantID, answerID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("nc record for answer %s: %w", answerID, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ncRepo) mustFind(tenantID uint, answerID string) (*entities.NcRecord, error) {
	rec, err := r.FindByAnswer(tenantID, answerID)
	if err != nil {
		return nil, fmt.Errorf("nc upsert readback: %w", err)
	}
	return rec, nil
}

func (r *ncRepo) Save(rec *entities.NcRecord) error { return r.db.Save(rec).Error }

func (r *ncRepo) ClearAssignee(tenantID uint, answerID string) error {
	return r.db.Model(&entities.NcRecord{}).
		Where("tenant_id = ? AND answer_id = ?", tenantID, answerID).
		Update("assigned_user_id", nil).Error
}

func (r *ncRepo) ListJoined(tenantID uint) ([]repository.RegisterRow, error) {
	var rows []repository.RegisterRow
	err := r.db.Table("nc_records").
		Select(`nc_records.answer_id,
			answers.asset_number,
			answers.question_index,
			answers.question_text,
			answers.response,
			answers.assigned_nc,
			answers.note,
			answers.updated_at AS submitted_at,
			audit_plans.code AS audit_code,
			audit_plans.audit_type,
			audit_plans.audit_subtype,
			audit_plans.start_date,
			audit_plans.end_date,
			audit_plans.auditor_name,
			nc_records.root_cause,
			nc_records.containment_action,
			nc_records.corrective_action,
			nc_records.preventive_action,
			nc_records.evidence_name,
			nc_records.assigned_user_id,
			users.first_name AS assigned_user_first_name,
			users.last_name AS assigned_user_last_name,
			users.email AS assigned_user_email,
			nc_records.status AS nc_status`).
		Joins("JOIN answers ON answers.id = nc_records.answer_id AND answers.tenant_id = nc_records.tenant_id").
		Joins("JOIN audit_plans ON audit_plans.id = answers.audit_plan_id AND audit_plans.tenant_id = nc_records.tenant_id").
		Joins("LEFT JOIN users ON users.id = nc_records.assigned_user_id AND users.tenant_id = nc_records.tenant_id").
		Where("nc_records.tenant_id = ?", tenantID).
		Order("audit_plans.code ASC, answers.asset_number ASC, answers.question_index ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ncRepo) HasOpenForPlan(tenantID, planID uint) (bool, error) {
	return r.existsWithStatus(tenantID, planID,
		[]string{entities.NcAssigned, entities.NcInProgress, entities.NcRework})
}

func (r *ncRepo) HasPendingReviewForPlan(tenantID, planID uint) (bool, error) {
	return r.existsWithStatus(tenantID, planID, []string{entities.NcResolutionSubmitted})
}

func (r *ncRepo) existsWithStatus(tenantID, planID uint, statuses []string) (bool, error) {
	var n int64
	err := r.db.Table("nc_records").
		Joins("JOIN answers ON answers.id = nc_records.answer_id AND answers.tenant_id = nc_records.tenant_id").
		Where("nc_records.tenant_id = ? AND answers.audit_plan_id = ? AND nc_records.status IN ?",
			tenantID, planID, statuses).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
