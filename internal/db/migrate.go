package db

import (
	"embed"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies the embedded goose migrations. Cascading deletes live in the
// schema itself (ON DELETE CASCADE on both message foreign keys), so deleting a
// thread or a message subtree never needs application-level traversal.
func Migrate(gormDB *gorm.DB, logger *zap.Logger) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return err
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err == nil {
		logger.Info("Database migrations applied", zap.Int64("version", version))
	}
	return nil
}
