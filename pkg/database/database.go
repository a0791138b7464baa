// Package database stores scan reports in a SQLite file through gorm.
package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/moyu-x/filehasher/pkg/logger"
)

const batchSize = 500

// rootsSeparator joins the scanned roots into one column.
const rootsSeparator = "\n"

type ScanRun struct {
	ID              string    `gorm:"primaryKey;size:36"`
	Roots           string    `gorm:"not null"`
	Algorithm       string    `gorm:"not null"`
	DetectType      bool      `gorm:"not null"`
	TotalFiles      int64     `gorm:"not null"`
	TotalSize       int64     `gorm:"not null"`
	RedundancyFiles int64     `gorm:"not null"`
	RedundancySize  int64     `gorm:"not null"`
	ElapsedMillis   int64     `gorm:"not null"`
	CreatedAt       time.Time `gorm:"not null"`
}

func (ScanRun) TableName() string {
	return "scan_runs"
}

// RootList splits Roots back into the scanned directories.
func (r *ScanRun) RootList() []string {
	if r.Roots == "" {
		return nil
	}
	return strings.Split(r.Roots, rootsSeparator)
}

type DuplicateRecord struct {
	ID            int64  `gorm:"primaryKey"`
	RunID         string `gorm:"size:36;index;not null"`
	Hash          string `gorm:"index;not null"`
	OriginalPath  string `gorm:"not null"`
	DuplicatePath string `gorm:"not null"`
	Size          int64  `gorm:"not null"`
	FileType      string
}

func (DuplicateRecord) TableName() string {
	return "duplicates"
}

type Database struct {
	db *gorm.DB
}

// NewRun prepares a run row with a fresh id.
func NewRun(roots []string, algorithm string, detectType bool) *ScanRun {
	return &ScanRun{
		ID:         uuid.NewString(),
		Roots:      strings.Join(roots, rootsSeparator),
		Algorithm:  algorithm,
		DetectType: detectType,
		CreatedAt:  time.Now(),
	}
}

func NewDatabase(dbPath string) (*Database, error) {
	logger.Get().Debug().Msgf("opening report database: %s", dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := createSchema(db); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Database{db: db}, nil
}

func createSchema(db *gorm.DB) error {
	return db.AutoMigrate(&ScanRun{}, &DuplicateRecord{})
}

// SaveRun writes the run and its duplicates in one transaction.
func (d *Database) SaveRun(run *ScanRun, dups []DuplicateRecord) error {
	err := d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(run).Error; err != nil {
			return fmt.Errorf("insert run: %w", err)
		}

		if len(dups) == 0 {
			return nil
		}
		for i := range dups {
			dups[i].RunID = run.ID
		}
		if err := tx.CreateInBatches(dups, batchSize).Error; err != nil {
			return fmt.Errorf("insert duplicates: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Get().Debug().Msgf("saved run %s with %d duplicates", run.ID, len(dups))
	return nil
}

// Runs lists stored runs, newest first.
func (d *Database) Runs() ([]ScanRun, error) {
	var runs []ScanRun
	if err := d.db.Order("created_at DESC").Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	return runs, nil
}

// Duplicates lists the duplicates of a run ordered by duplicate path.
func (d *Database) Duplicates(runID string) ([]DuplicateRecord, error) {
	var dups []DuplicateRecord
	err := d.db.Where("run_id = ?", runID).Order("duplicate_path").Find(&dups).Error
	if err != nil {
		return nil, fmt.Errorf("query duplicates: %w", err)
	}
	return dups, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
