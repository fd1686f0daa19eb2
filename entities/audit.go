package entities

import "time"

type AuditTemplate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TenantID  uint      `gorm:"index" json:"-"`
	Name      string    `json:"name"`
	Note      string    `json:"note"`
	Tags      []string  `gorm:"serializer:json" json:"tags"`
	Questions []string  `gorm:"serializer:json" json:"questions"`
	CreatedAt time.Time `json:"created_at"`
}

type AuditPlan struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	TenantID     uint      `gorm:"index;uniqueIndex:ux_plan_code" json:"-"`
	Code         string    `gorm:"uniqueIndex:ux_plan_code" json:"code"`
	StartDate    string    `json:"start_date"` // YYYY-MM-DD
	EndDate      string    `json:"end_date"`   // YYYY-MM-DD
	AuditType    string    `json:"audit_type"` // template name
	AuditSubtype string    `json:"audit_subtype"`
	AuditorName  string    `json:"auditor_name"`
	Department   string    `json:"department"`
	LocationCity string    `json:"location_city"`
	Site         string    `json:"site"`
	Country      string    `json:"country"`
	Region       string    `json:"region"`
	AuditNote    string    `json:"audit_note"`
	ResponseType string    `json:"response_type"`
	AssetScope   []int     `gorm:"serializer:json" json:"asset_scope"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
