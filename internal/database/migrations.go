package database

import (
	"telon/internal/models"

	logger "github.com/Bparsons0904/goLogger"
)

// MigrateModels runs GORM AutoMigrate for all models
func (db *DB) MigrateModels() error {
	log := logger.New("database").Function("MigrateModels")
	log.Info("Starting database migration")

	modelsToMigrate := []interface{}{
		&models.User{},
		&models.Play{},
		&models.Question{},
		&models.QuestionOption{},
		&models.Performance{},
	}

	for _, model := range modelsToMigrate {
		if err := db.SQL.AutoMigrate(model); err != nil {
			return log.Err("failed to migrate model", err, "model", model)
		}
	}

	log.Info("Database migration completed successfully")
	return nil
}

// CreateIndexes creates the conditional unique indexes GORM cannot express
// through struct tags. Uniqueness of question/option order and performance
// uid only applies to rows that are not soft deleted, so a plain unique
// index would block reuse of an order held by a trashed sibling.
func (db *DB) CreateIndexes() error {
	log := logger.New("database").Function("CreateIndexes")
	log.Info("Creating partial unique indexes")

	indexes := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_questions_play_order_active ON questions (play_id, "order") WHERE deleted_at IS NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_question_options_question_order_active ON question_options (question_id, "order") WHERE deleted_at IS NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_performances_uid_active ON performances (uid) WHERE deleted_at IS NULL`,
	}

	for _, indexSQL := range indexes {
		if err := db.SQL.Exec(indexSQL).Error; err != nil {
			return log.Err("failed to create index", err, "sql", indexSQL)
		}
	}

	log.Info("Partial unique indexes created")
	return nil
}
