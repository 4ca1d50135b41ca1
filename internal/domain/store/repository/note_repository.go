package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"sachify/internal/domain/entity"
)

// ErrUnavailable is returned by every operation when the server came up
// without a database connection (degraded mode).
var ErrUnavailable = errors.New("note store is unavailable")

type DefaultNoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository wraps the given connection. A nil db is allowed and
// puts the repository in degraded mode.
func NewNoteRepository(db *gorm.DB) *DefaultNoteRepository {
	return &DefaultNoteRepository{db: db}
}

// Insert validates and persists a new note. The store assigns ID,
// CreatedAt and UpdatedAt.
func (d *DefaultNoteRepository) Insert(note *entity.Note) error {
	if d.db == nil {
		return ErrUnavailable
	}
	if err := note.Validate(); err != nil {
		return err
	}
	return d.db.Create(note).Error
}

// FindByID returns nil, nil when no note has the given id.
func (d *DefaultNoteRepository) FindByID(id int) (*entity.Note, error) {
	if d.db == nil {
		return nil, ErrUnavailable
	}

	var note entity.Note
	err := d.db.First(&note, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Update validates and saves a full replacement of an existing note.
// The caller keeps ID and CreatedAt from the stored row; UpdatedAt is
// refreshed by gorm on save.
func (d *DefaultNoteRepository) Update(note *entity.Note) error {
	if d.db == nil {
		return ErrUnavailable
	}
	if err := note.Validate(); err != nil {
		return err
	}
	return d.db.Save(note).Error
}

func (d *DefaultNoteRepository) Delete(note *entity.Note) error {
	if d.db == nil {
		return ErrUnavailable
	}
	return d.db.Delete(note).Error
}

// Count returns how many notes match the filter.
func (d *DefaultNoteRepository) Count(filter entity.NoteFilter) (int64, error) {
	if d.db == nil {
		return 0, ErrUnavailable
	}

	var total int64
	err := applyFilter(d.db.Model(&entity.Note{}), filter).Count(&total).Error
	return total, err
}

// FindAll returns one page of matching notes, newest first.
func (d *DefaultNoteRepository) FindAll(filter entity.NoteFilter, offset, limit int) ([]*entity.Note, error) {
	if d.db == nil {
		return nil, ErrUnavailable
	}

	var notes []*entity.Note
	err := applyFilter(d.db.Model(&entity.Note{}), filter).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// Search matches q as a case-insensitive substring against any of the
// note's text fields, newest first. The full match set is returned.
func (d *DefaultNoteRepository) Search(q string) ([]*entity.Note, error) {
	if d.db == nil {
		return nil, ErrUnavailable
	}

	pattern := likePattern(q)
	var notes []*entity.Note
	err := d.db.Model(&entity.Note{}).
		Where(
			"LOWER(company_name) LIKE ? OR LOWER(subject) LIKE ? OR LOWER(participants) LIKE ? OR LOWER(ai_summary) LIKE ? OR LOWER(notes) LIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		).
		Order("created_at DESC, id DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// applyFilter translates a NoteFilter into WHERE clauses. Supplied
// fields are ANDed; text fields use LOWER(...) LIKE so the behavior is
// the same on Postgres and SQLite.
func applyFilter(tx *gorm.DB, filter entity.NoteFilter) *gorm.DB {
	if filter.CompanyName != "" {
		tx = tx.Where("LOWER(company_name) LIKE ?", likePattern(filter.CompanyName))
	}
	if filter.Subject != "" {
		tx = tx.Where("LOWER(subject) LIKE ?", likePattern(filter.Subject))
	}
	if filter.Date != "" {
		tx = tx.Where("date = ?", filter.Date)
	}
	if filter.Participants != "" {
		tx = tx.Where("LOWER(participants) LIKE ?", likePattern(filter.Participants))
	}
	return tx
}

func likePattern(q string) string {
	return "%" + strings.ToLower(q) + "%"
}
