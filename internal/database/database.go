package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"grihaplan/server/internal/project"
)

var ErrProjectNotFound = errors.New("project not found")

// ProjectRecord is the persisted form of a planning session. Geometry
// and buildings are stored as a JSON payload; the relational shape only
// needs name-based lookup.
type ProjectRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;not null"`
	City      string `gorm:"not null"`
	Payload   string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Database struct {
	db *gorm.DB
}

// NewDatabase opens (or creates) the sqlite database and migrates the
// schema.
func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.AutoMigrate(&ProjectRecord{}); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	return &Database{db: db}, nil
}

// Close releases the underlying connection pool.
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveProject upserts a project by name.
func (d *Database) SaveProject(p project.Project) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("serializing project: %w", err)
	}

	var existing ProjectRecord
	err = d.db.Where("name = ?", p.Name).First(&existing).Error
	switch {
	case err == nil:
		existing.City = string(p.City)
		existing.Payload = string(payload)
		return d.db.Save(&existing).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		record := ProjectRecord{
			Name:    p.Name,
			City:    string(p.City),
			Payload: string(payload),
		}
		return d.db.Create(&record).Error
	default:
		return err
	}
}

// LoadProject fetches a project by name.
func (d *Database) LoadProject(name string) (project.Project, error) {
	var record ProjectRecord
	if err := d.db.Where("name = ?", name).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, err
	}

	var p project.Project
	if err := json.Unmarshal([]byte(record.Payload), &p); err != nil {
		return project.Project{}, fmt.Errorf("deserializing project %q: %w", name, err)
	}
	return p, nil
}

// ListProjects returns saved project names, most recently updated first.
func (d *Database) ListProjects() ([]string, error) {
	var records []ProjectRecord
	if err := d.db.Order("updated_at desc").Find(&records).Error; err != nil {
		return nil, err
	}
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	return names, nil
}

// DeleteProject removes a saved project by name.
func (d *Database) DeleteProject(name string) error {
	result := d.db.Where("name = ?", name).Delete(&ProjectRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}
