package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/autoshop-manager/internal/config"
	"github.com/BruksfildServices01/autoshop-manager/internal/logging"
)

// NewDB abre o pool de conexões e aplica as migrations pendentes.
func NewDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	if err := Migrate(cfg.DBUrl, logger); err != nil {
		return nil, err
	}

	db, err := Open(cfg.DBUrl, logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DBMaxOpen)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdle)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxAge)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	logger.Info("database connected", zap.String("url", logging.SanitizeURL(cfg.DBUrl)))
	return db, nil
}

// Open conecta sem aplicar migrations nem ajustar o pool.
func Open(url string, logger *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(url), &gorm.Config{
		PrepareStmt: true,
		Logger: gormlogger.New(
			zap.NewStdLog(logger.Named("gorm")),
			gormlogger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	return db, nil
}
