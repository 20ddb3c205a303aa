package database

import (
	"lunara/internal/logger"
)

// CreateIndexes creates the partial and composite indexes GORM's AutoMigrate
// does not generate from struct tags.
func (db *DB) CreateIndexes() error {
	log := logger.New("database").Function("CreateIndexes")
	log.Info("Creating additional database indexes")

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_check_ins_user_recent ON check_ins(user_id, checked_in_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_cycle_entries_user_recent ON cycle_entries(user_id, recorded_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_content_items_active_type ON content_items(is_active, content_type)",
	}

	for _, indexSQL := range indexes {
		if err := db.SQL.Exec(indexSQL).Error; err != nil {
			log.Warn("Failed to create index", "sql", indexSQL, "error", err)
			// Continue with other indexes even if one fails
		}
	}

	log.Info("Additional database indexes created")
	return nil
}
