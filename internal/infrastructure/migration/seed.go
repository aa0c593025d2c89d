package migration

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"itdesk/internal/domain/masterdata"
	"itdesk/internal/domain/setting"
	"itdesk/internal/infrastructure/persistence/models"
	"itdesk/internal/shared/logger"
)

// PasswordHasher hashes the bootstrap admin password before it is stored.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Seed writes the default settings rows and, when no admin password hash is
// stored yet, hashes and stores the bootstrap password. Existing rows are
// never overwritten, so re-running seed after an admin has customized
// settings is safe.
func Seed(db *gorm.DB, hasher PasswordHasher, bootstrapPassword string) error {
	log := logger.NewLogger().With("component", "migration.seed")

	rows := make([]models.SettingModel, 0, len(setting.Defaults())+1)
	for key, value := range setting.Defaults() {
		rows = append(rows, models.SettingModel{Key: key, Value: value})
	}

	if bootstrapPassword != "" {
		hash, err := hasher.Hash(bootstrapPassword)
		if err != nil {
			return fmt.Errorf("failed to hash bootstrap admin password: %w", err)
		}
		rows = append(rows, models.SettingModel{Key: setting.KeyAdminPasswordHash, Value: hash})
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoNothing: true,
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}

	if err := seedMasterData(db); err != nil {
		return err
	}

	log.Infow("defaults seeded", "settings", len(rows))
	return nil
}

// defaultMasterData mirrors the option lists the intake form falls back to
// when the master data store is empty.
func defaultMasterData() []models.MasterDataModel {
	entries := map[masterdata.Type][]string{
		masterdata.TypeBranch:    {"สำนักงานที่ดินจังหวัด", "สาขาบางละมุง", "สาขาศรีราชา"},
		masterdata.TypeDept:      {"ฝ่ายทะเบียน", "ฝ่ายรังวัด", "ฝ่ายจัดการ"},
		masterdata.TypeAssetType: {"Computer / Laptop", "Printer / Scanner", "Network / Wi-Fi", "Software / OS"},
	}

	var rows []models.MasterDataModel
	for itemType, values := range entries {
		for _, value := range values {
			rows = append(rows, models.MasterDataModel{
				Type:     itemType.String(),
				Value:    value,
				IsActive: true,
			})
		}
	}
	return rows
}

func seedMasterData(db *gorm.DB) error {
	rows := defaultMasterData()

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "type"}, {Name: "value"}},
		DoNothing: true,
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to seed master data: %w", err)
	}
	return nil
}
