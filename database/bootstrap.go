// database/bootstrap.go
package database

import (
	"fmt"
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"audir/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	if err := Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	return db
}

// Migrate runs the duplicate cleanup BEFORE AutoMigrate so the unique slot
// index on audit answers can be created on databases written before the
// constraint existed.
func Migrate(db *gorm.DB) error {
	if err := dedupeAnswerSlots(db); err != nil {
		return err
	}
	return db.AutoMigrate(
		&entities.Tenant{},
		&entities.User{},
		&entities.Department{},
		&entities.AuditTemplate{},
		&entities.AuditPlan{},
		&entities.Answer{},
		&entities.NcRecord{},
	)
}

// dedupeAnswerSlots removes older duplicates of the same
// (tenant, plan, asset, question) slot, keeping the latest write. Early
// schemas had no uniqueness on the slot, so long-lived databases can hold
// several rows per tuple.
func dedupeAnswerSlots(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='answers'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	var dupes int64
	if err := db.Raw(`
SELECT COUNT(*) - COUNT(DISTINCT tenant_id || '|' || audit_plan_id || '|' || asset_number || '|' || question_index)
FROM answers`).Scan(&dupes).Error; err != nil {
		return fmt.Errorf("count duplicate slots: %w", err)
	}
	if dupes == 0 {
		return nil
	}

	log.Printf("[db] removing %d duplicate answer rows", dupes)
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Exec(`
DELETE FROM answers
WHERE rowid NOT IN (
  SELECT MAX(rowid) FROM answers
  GROUP BY tenant_id, audit_plan_id, asset_number, question_index
)`).Error
	})
}
