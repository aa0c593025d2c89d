package migration

import (
	"fmt"

	"gorm.io/gorm"

	"itdesk/internal/infrastructure/persistence/models"
	"itdesk/internal/shared/logger"
)

// AutoMigrateModels returns every model the schema consists of.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TicketModel{},
		&models.JobCounterModel{},
		&models.MasterDataModel{},
		&models.SettingModel{},
		&models.ArticleModel{},
	}
}

// GormAutoMigrateStrategy derives the schema from model structs. Used in
// development where migration scripts would only slow iteration down.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}

	s.logger.Infow("starting GORM auto migration", "models", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	s.logger.Infow("auto migration completed successfully")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
