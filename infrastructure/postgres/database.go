package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"desa-profil-backend/domain/models"
)

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func NewDatabase(config DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		config.Host, config.User, config.Password, config.DBName, config.Port, config.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.HeroSection{},
		&models.Official{},
		&models.VillageProfile{},
		&models.VillageDemographics{},
		&models.TouristDestination{},
		&models.DestinationImage{},
		&models.DestinationUMKM{},
		&models.News{},
	); err != nil {
		return fmt.Errorf("failed to run auto migrations: %v", err)
	}

	// Constraints AutoMigrate cannot express: delete-cascade FKs for the
	// destination child tables and the ordered-read indexes.
	if err := runManualMigrations(db); err != nil {
		return fmt.Errorf("failed to run manual migrations: %v", err)
	}

	return nil
}

func runManualMigrations(db *gorm.DB) error {
	migrations := []string{
		`DO $$ BEGIN
			ALTER TABLE destination_images ADD CONSTRAINT fk_destination_images_destination
				FOREIGN KEY (destination_id) REFERENCES tourist_destinations(id) ON DELETE CASCADE;
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
		`DO $$ BEGIN
			ALTER TABLE destination_umkm ADD CONSTRAINT fk_destination_umkm_destination
				FOREIGN KEY (destination_id) REFERENCES tourist_destinations(id) ON DELETE CASCADE;
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`,

		`CREATE INDEX IF NOT EXISTS idx_destination_images_order
			ON destination_images(destination_id, display_order)`,
		`CREATE INDEX IF NOT EXISTS idx_destination_umkm_order
			ON destination_umkm(destination_id, display_order)`,
		`CREATE INDEX IF NOT EXISTS idx_officials_display_order ON officials(display_order)`,
		`CREATE INDEX IF NOT EXISTS idx_hero_sections_active_order
			ON hero_sections(display_order) WHERE is_active = true`,
		`CREATE INDEX IF NOT EXISTS idx_news_published
			ON news(published_at DESC) WHERE status = 'published'`,
	}

	for _, sql := range migrations {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("migration failed: %v", err)
		}
	}

	return nil
}
