// Package store keeps the chord index: which sounding sets occur where in
// which MIDI files.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jsphweid/tonal/model"
)

const errStoreNil = "store is nil"

type Store struct {
	DB *gorm.DB
	db *sql.DB
}

type File struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Path        string `gorm:"uniqueIndex"`
	RunID       string `gorm:"type:varchar(36);index"`
	HasMetadata bool
	CreatedAt   time.Time
}

type Occurrence struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	FileID   uint   `gorm:"index"`
	OffsetMs uint32
	NotesKey string `gorm:"index"`
	Symbol   string `gorm:"index"`
}

// Match groups the occurrences found in one file.
type Match struct {
	FileID      uint
	Path        string
	HasMetadata bool
	Offsets     []uint32
}

type Stats struct {
	Files       int64
	Occurrences int64
	Symbols     int64
}

func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "creating db dir")
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "opening sqlite db")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "getting sql.DB from gorm")
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&File{}, &Occurrence{}); err != nil {
		sqlDB.Close()
		return nil, errors.Wrap(err, "auto migrate")
	}
	return &Store{DB: db, db: sqlDB}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// NewRunID tags every file written by one indexing run.
func NewRunID() string {
	return uuid.NewString()
}

// CreateChordKey is the canonical text form of a set of note numbers,
// e.g. "60-64-67".
func CreateChordKey(notes []uint8) string {
	sorted := append([]uint8(nil), notes...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	parts := make([]string, len(sorted))
	for i, note := range sorted {
		parts[i] = fmt.Sprintf("%v", note)
	}
	return strings.Join(parts, "-")
}

// AddFile records the chords of one file, replacing whatever an earlier run
// stored for the same path.
func (s *Store) AddFile(path, runID string, hasMetadata bool, events []model.ChordEvent) (uint, error) {
	if s == nil || s.DB == nil {
		return 0, errors.New(errStoreNil)
	}
	var id uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var f File
		err := tx.Where("path = ?", path).First(&f).Error
		switch {
		case err == nil:
			if err := tx.Where("file_id = ?", f.ID).Delete(&Occurrence{}).Error; err != nil {
				return errors.Wrap(err, "clearing old occurrences")
			}
			f.RunID, f.HasMetadata = runID, hasMetadata
			if err := tx.Save(&f).Error; err != nil {
				return errors.Wrap(err, "updating file")
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			f = File{Path: path, RunID: runID, HasMetadata: hasMetadata}
			if err := tx.Create(&f).Error; err != nil {
				return errors.Wrap(err, "creating file")
			}
		default:
			return errors.Wrap(err, "querying file")
		}
		id = f.ID

		rows := make([]Occurrence, 0, len(events))
		for _, e := range events {
			rows = append(rows, Occurrence{
				FileID:   f.ID,
				OffsetMs: e.OffsetMs,
				NotesKey: CreateChordKey(e.Notes),
				Symbol:   e.Symbol,
			})
		}
		if len(rows) == 0 {
			return nil
		}
		return errors.Wrap(tx.CreateInBatches(rows, 500).Error, "batch insert occurrences")
	})
	return id, err
}

// SearchSymbol finds occurrences of a chord symbol as printed by chord.Chord.
func (s *Store) SearchSymbol(symbol string, limit int) ([]Match, error) {
	return s.search("symbol = ?", symbol, limit)
}

// SearchNotes finds occurrences of exactly these note numbers.
func (s *Store) SearchNotes(notes []uint8, limit int) ([]Match, error) {
	return s.search("notes_key = ?", CreateChordKey(notes), limit)
}

func (s *Store) search(where string, arg any, limit int) ([]Match, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New(errStoreNil)
	}
	q := s.DB.Where(where, arg).Order("file_id, offset_ms")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []Occurrence
	if err := q.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "querying occurrences")
	}
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]uint, 0)
	byFile := make(map[uint]*Match)
	for _, r := range rows {
		m, ok := byFile[r.FileID]
		if !ok {
			m = &Match{FileID: r.FileID}
			byFile[r.FileID] = m
			ids = append(ids, r.FileID)
		}
		m.Offsets = append(m.Offsets, r.OffsetMs)
	}

	var files []File
	if err := s.DB.Where("id IN ?", ids).Find(&files).Error; err != nil {
		return nil, errors.Wrap(err, "querying files")
	}
	for _, f := range files {
		byFile[f.ID].Path = f.Path
		byFile[f.ID].HasMetadata = f.HasMetadata
	}

	out := make([]Match, 0, len(ids))
	for _, id := range ids {
		out = append(out, *byFile[id])
	}
	return out, nil
}

func (s *Store) Stats() (Stats, error) {
	if s == nil || s.DB == nil {
		return Stats{}, errors.New(errStoreNil)
	}
	var st Stats
	if err := s.DB.Model(&File{}).Count(&st.Files).Error; err != nil {
		return Stats{}, errors.Wrap(err, "counting files")
	}
	if err := s.DB.Model(&Occurrence{}).Count(&st.Occurrences).Error; err != nil {
		return Stats{}, errors.Wrap(err, "counting occurrences")
	}
	if err := s.DB.Model(&Occurrence{}).Distinct("symbol").Count(&st.Symbols).Error; err != nil {
		return Stats{}, errors.Wrap(err, "counting symbols")
	}
	return st, nil
}
