package database

import (
	"fmt"
	"time"

	"clinic-portal-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	AutoMigrate     bool
}

// Initialize opens a Postgres connection and creates the schema from GORM
// models. After migration it installs the appointment exclusion constraint:
// validation is check-then-act, so the database has to be the final arbiter
// against two concurrent bookings of the same doctor/date/time range.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	if !opts.AutoMigrate {
		opts.AutoMigrate = true
	}

	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// Required extensions: pgcrypto for gen_random_uuid(), btree_gist so the
	// exclusion constraint can mix equality (doctor, date) with range overlap.
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error

	if opts.AutoMigrate {
		all := []interface{}{
			&models.Specialty{},
			&models.Doctor{},
			&models.Patient{},
			&models.Contract{},
			&models.ScheduleTemplate{},
			&models.Appointment{},
			&models.AuditEvent{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
		if err := installBookingConstraint(db); err != nil {
			return nil, fmt.Errorf("install booking constraint: %w", err)
		}
	}

	return db, nil
}

// installBookingConstraint rejects, at write time, any two appointments for
// the same doctor and date whose [start_minute, end_minute) ranges overlap
// while both are in an active state. Cancelled and completed rows do not
// occupy the calendar.
func installBookingConstraint(db *gorm.DB) error {
	// Re-adding is not idempotent, so drop first. Migrations run at startup
	// before the server accepts traffic.
	if err := db.Exec(`ALTER TABLE appointments DROP CONSTRAINT IF EXISTS appointments_no_overlap`).Error; err != nil {
		return err
	}
	return db.Exec(`
		ALTER TABLE appointments
		ADD CONSTRAINT appointments_no_overlap
		EXCLUDE USING gist (
			doctor_id WITH =,
			date WITH =,
			int4range(start_minute, end_minute) WITH &&
		)
		WHERE (state IN ('scheduled', 'confirmed'))
	`).Error
}
