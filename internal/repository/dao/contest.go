package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

var ErrContestNotFound = errors.New("contest not found")

type Contest struct {
	ID uint `gorm:"primaryKey"`

	Title        string `gorm:"not null"`
	Content      string
	Tags         []string `gorm:"serializer:json"`
	Sponsor      string
	Intro        string
	Details      string
	Start        string `gorm:"column:starts_on"`
	End          string `gorm:"column:ends_on"`
	Category     string
	File         string
	Host         string
	Contact      string
	ContactEmail string

	NumReads   int `gorm:"not null;default:0"`
	NumAnswers int `gorm:"not null;default:0"`

	AuthorID uint `gorm:"index;not null"`
	Author   User `gorm:"foreignKey:AuthorID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// searchColumns is the OR-list a free-text term is matched against.
// Tags are deliberately not part of the search surface.
var searchColumns = []string{
	"title", "content", "sponsor", "intro", "details", "category",
	"starts_on", "ends_on", "file", "host", "contact", "contact_email",
}

// editableColumns is the full-replace update surface. Counters, author and
// timestamps are never written through Update.
var editableColumns = []string{
	"title", "content", "tags", "sponsor", "intro", "details",
	"starts_on", "ends_on", "category", "file", "host", "contact",
	"contact_email",
}

type ContestDAO struct {
	db *gorm.DB
}

func NewContestDAO(db *gorm.DB) *ContestDAO {
	return &ContestDAO{
		db: db,
	}
}

func searchScope(term string) func(tx *gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if term == "" {
			return tx
		}

		pattern := "%" + term + "%"
		conds := make([]string, 0, len(searchColumns))
		args := make([]interface{}, 0, len(searchColumns))
		for _, col := range searchColumns {
			conds = append(conds, col+" ILIKE ?")
			args = append(args, pattern)
		}

		return tx.Where(strings.Join(conds, " OR "), args...)
	}
}

// FindPage returns the page-th slice (1-based) of contests matching term,
// newest first, with authors resolved, plus the total match count.
func (d *ContestDAO) FindPage(ctx context.Context, term string, page, limit int) ([]Contest, int64, error) {
	var total int64
	err := d.db.WithContext(ctx).
		Model(&Contest{}).
		Scopes(searchScope(term)).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var contests []Contest
	err = d.db.WithContext(ctx).
		Scopes(searchScope(term)).
		Preload("Author").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&contests).Error
	if err != nil {
		return nil, 0, err
	}

	return contests, total, nil
}

func (d *ContestDAO) FindByID(ctx context.Context, id uint) (Contest, error) {
	var contest Contest

	result := d.db.WithContext(ctx).Preload("Author").First(&contest, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Contest{}, ErrContestNotFound
		}

		return Contest{}, result.Error
	}

	return contest, nil
}

func (d *ContestDAO) Insert(ctx context.Context, contest Contest) (Contest, error) {
	result := d.db.WithContext(ctx).Create(&contest)
	if result.Error != nil {
		return Contest{}, result.Error
	}

	return contest, nil
}

// Update overwrites every editable column from contest, zero values
// included. Counters and the author reference are untouched.
func (d *ContestDAO) Update(ctx context.Context, contest Contest) (Contest, error) {
	result := d.db.WithContext(ctx).
		Model(&Contest{ID: contest.ID}).
		Select(editableColumns).
		Updates(contest)
	if result.Error != nil {
		return Contest{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Contest{}, ErrContestNotFound
	}

	return d.FindByID(ctx, contest.ID)
}

// Delete removes the contest and its answers in one transaction. Deleting
// an id that matches nothing is a no-op, not an error.
func (d *ContestDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contest_id = ?", id).Delete(&Answer{}).Error; err != nil {
			return err
		}

		return tx.Delete(&Contest{}, id).Error
	})
}

// IncrementReads bumps num_reads store-side so concurrent views cannot
// lose updates.
func (d *ContestDAO) IncrementReads(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).
		Model(&Contest{}).
		Where("id = ?", id).
		UpdateColumn("num_reads", gorm.Expr("num_reads + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContestNotFound
	}

	return nil
}
