package db

import (
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"threadboard/internal/config"
)

func Connect(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	sqlDB, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		return nil, err
	}

	// Postgres may still be starting when the container comes up.
	for i := 0; i < 10; i++ {
		if err = sqlDB.Ping(); err == nil {
			break
		}
		logger.Warn("Waiting for database",
			zap.Int("attempt", i+1),
			zap.Error(err),
		)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, err
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	logger.Info("Connected to PostgreSQL",
		zap.String("host", cfg.DBHost),
		zap.String("database", cfg.DBName),
	)

	return gormDB, nil
}
