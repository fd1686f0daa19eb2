package repositoryImp

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"audir/entities"
	"audir/pkg/answer/repository"
	"audir/pkg/apperr"
)

type answerRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AnswerRepository { return &answerRepo{db} }

// slotKey is the unique tuple; a conflict on it means "replace", not "fail".
var slotKey = []clause.Column{
	{Name: "tenant_id"},
	{Name: "audit_plan_id"},
	{Name: "asset_number"},
	{Name: "question_index"},
}

func (r *answerRepo) Upsert(a *entities.Answer) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: slotKey,
		DoUpdates: clause.AssignmentColumns([]string{
			"question_text",
			"response",
			"response_is_negative",
			"assigned_nc",
			"note",
			"evidence_name",
			"evidence_data_url",
			"status",
			"updated_at",
		}),
	}).Create(a).Error
}

func (r *answerRepo) FindBySlot(tenantID, planID uint, asset, question int) (*entities.Answer, error) {
	var a entities.Answer
	err := r.db.
		Where("tenant_id = ? AND audit_plan_id = ? AND asset_number = ? AND question_index = ?",
			tenantID, planID, asset, question).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("answer slot (%d,%d): %w", asset, question, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *answerRepo) FindByID(tenantID uint, id string) (*entities.Answer, error) {
	var a entities.Answer
	err := r.db.Where("tenant_id = ? AND id = ?", tenantID, id).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("answer %s: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *answerRepo) ListByPlan(tenantID, planID uint) ([]entities.Answer, error) {
	var out []entities.Answer
	err := r.db.
		Where("tenant_id = ? AND audit_plan_id = ?", tenantID, planID).
		Order("asset_number ASC, question_index ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *answerRepo) UpdateAssignedNc(tenantID uint, answerID, department string) error {
	res := r.db.Model(&entities.Answer{}).
		Where("tenant_id = ? AND id = ?", tenantID, answerID).
		Update("assigned_nc", department)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("answer %s: %w", answerID, apperr.ErrNotFound)
	}
	return nil
}

func (r *answerRepo) CountSubmittedByAsset(tenantID, planID uint) (map[int]int, error) {
	type row struct {
		AssetNumber int
		N           int
	}
	var rows []row
	err := r.db.Model(&entities.Answer{}).
		Select("asset_number, COUNT(*) AS n").
		Where("tenant_id = ? AND audit_plan_id = ? AND status = ?", tenantID, planID, entities.AnswerSubmitted).
		Group("asset_number").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[int]int, len(rows))
	for _, r := range rows {
		out[r.AssetNumber] = r.N
	}
	return out, nil
}

func (r *answerRepo) HasUnresolvedNegative(tenantID, planID uint) (bool, error) {
	var n int64
	err := r.db.Table("answers").
		Joins("LEFT JOIN nc_records ON nc_records.answer_id = answers.id AND nc_records.tenant_id = answers.tenant_id").
		Where("answers.tenant_id = ? AND answers.audit_plan_id = ? AND answers.status = ? AND answers.response_is_negative = ? AND nc_records.id IS NULL",
			tenantID, planID, entities.AnswerSubmitted, true).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
