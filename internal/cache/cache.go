// Package cache is the driver's build-history store.
//
// spec.md marks SQLite as an out-of-scope "external collaborator"
// binding, and the teacher repo (btouchard/gmx) only ever mentions
// gorm.io/gorm and gorm.io/driver/sqlite as *string literals* its code
// generator writes into someone else's generated program — the
// compiler itself never imports them. SPEC_FULL.md turns that into a
// real dependency: a small SQLite-backed table recording every
// compilation this binary has run, so a repeat invocation with an
// unchanged input and an output file that is still present can skip
// Lex/Parse/Lower/Emit altogether.
package cache

import (
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Run is one recorded compilation.
type Run struct {
	ID         uint `gorm:"primaryKey"`
	RunID      string
	InputPath  string `gorm:"index"`
	InputHash  string `gorm:"index"`
	OutputPath string
	Phase      string // last phase reached; Success tells whether it completed
	Success    bool
	DurationMs int64
	CreatedAt  time.Time
}

// Cache wraps a *gorm.DB open against a local SQLite file.
type Cache struct {
	db *gorm.DB
}

// Open opens (creating if necessary) the SQLite database at path and
// ensures the Run table exists.
func Open(path string) (*Cache, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, err
	}
	return &Cache{db: db}, nil
}

// Lookup returns the most recent successful run for (inputHash,
// outputPath), if any. On a hit the driver skips every phase when the
// output file still exists.
func (c *Cache) Lookup(inputHash, outputPath string) (*Run, bool) {
	var run Run
	err := c.db.Where("input_hash = ? AND output_path = ? AND success = ?", inputHash, outputPath, true).
		Order("created_at desc").First(&run).Error
	if err != nil {
		return nil, false
	}
	return &run, true
}

// Record inserts a new row describing one compilation.
func (c *Cache) Record(run Run) error {
	run.CreatedAt = time.Now()
	return c.db.Create(&run).Error
}

// Close releases the underlying *sql.DB connection.
func (c *Cache) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
