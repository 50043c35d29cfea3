package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/NovaLinkServices/salon-scheduler/internal/config"
	"github.com/NovaLinkServices/salon-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Salon{},
		&models.User{},
		&models.Service{},
		&models.Client{},
		&models.Appointment{},
		&models.Notification{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE salons
        SET timezone = 'America/Sao_Paulo'
        WHERE timezone IS NULL OR timezone = ''
    `)

	if err := db.Exec(btreeGistDDL).Error; err != nil {
		log.Fatalf("failed to create btree_gist extension: %v", err)
	}
	if err := db.Exec(noOverlapConstraintDDL).Error; err != nil {
		log.Fatalf("failed to create appointments_no_overlap constraint: %v", err)
	}

	return db
}

const btreeGistDDL = `CREATE EXTENSION IF NOT EXISTS btree_gist`

// Database-side backstop for the booking race: two live appointments of the
// same service must never overlap, no matter how they were inserted. The
// start/end columns migrate as timestamptz, so the range must be tstzrange.
const noOverlapConstraintDDL = `
    DO $$ BEGIN
        ALTER TABLE appointments
            ADD CONSTRAINT appointments_no_overlap
            EXCLUDE USING gist (
                service_id WITH =,
                tstzrange(start_time, end_time) WITH &&
            )
            WHERE (NOT is_cancelled AND NOT is_deleted);
    EXCEPTION
        WHEN duplicate_table THEN NULL;
        WHEN duplicate_object THEN NULL;
    END $$
`
