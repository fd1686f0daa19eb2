package database

import (
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"audir/entities"
)

func open(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return db
}

func TestMigrateFreshDatabase(t *testing.T) {
	db := open(t)
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for _, tbl := range []string{"tenants", "users", "departments", "audit_templates", "audit_plans", "answers", "nc_records"} {
		if !db.Migrator().HasTable(tbl) {
			t.Errorf("table %s missing", tbl)
		}
	}
}

// Databases written before the slot constraint existed can hold several rows
// per (tenant, plan, asset, question). Migrate must drop the older ones so
// the unique index can be created.
func TestMigrateDedupesLegacyAnswerSlots(t *testing.T) {
	db := open(t)
	err := db.Exec(`CREATE TABLE answers (
		id text PRIMARY KEY,
		tenant_id integer,
		audit_plan_id integer,
		asset_number integer,
		question_index integer,
		question_text text,
		response text,
		response_is_negative numeric,
		assigned_nc text,
		note text,
		evidence_name text,
		evidence_data_url text,
		status text,
		created_at datetime,
		updated_at datetime)`).Error
	if err != nil {
		t.Fatalf("create legacy table: %v", err)
	}

	insert := `INSERT INTO answers (id, tenant_id, audit_plan_id, asset_number, question_index, response, status)
		VALUES (?, 1, 1, 1, 0, ?, 'Submitted')`
	for _, row := range [][2]string{{"a-old", "Yes"}, {"a-mid", "Maybe"}, {"a-new", "No"}} {
		if err := db.Exec(insert, row[0], row[1]).Error; err != nil {
			t.Fatalf("seed %s: %v", row[0], err)
		}
	}
	// a second slot that is already clean
	if err := db.Exec(`INSERT INTO answers (id, tenant_id, audit_plan_id, asset_number, question_index, response, status)
		VALUES ('b-only', 1, 1, 1, 1, 'Yes', 'Submitted')`).Error; err != nil {
		t.Fatalf("seed clean slot: %v", err)
	}

	if err := Migrate(db); err != nil {
		t.Fatalf("migrate over legacy data: %v", err)
	}

	var n int64
	db.Model(&entities.Answer{}).Count(&n)
	if n != 2 {
		t.Fatalf("expected 2 rows after dedupe, got %d", n)
	}
	var survivor entities.Answer
	if err := db.Where("question_index = ?", 0).First(&survivor).Error; err != nil {
		t.Fatalf("load survivor: %v", err)
	}
	if survivor.ID != "a-new" {
		t.Fatalf("kept %q, want the latest write a-new", survivor.ID)
	}

	// the unique index now guards the slot
	dup := entities.Answer{ID: "c-dup", TenantID: 1, AuditPlanID: 1, AssetNumber: 1, QuestionIndex: 0, Status: "Saved"}
	if err := db.Create(&dup).Error; err == nil {
		t.Fatalf("duplicate slot insert succeeded after migration")
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := open(t)
	for i := 0; i < 3; i++ {
		if err := Migrate(db); err != nil {
			t.Fatalf("migrate pass %d: %v", i, err)
		}
	}
}
