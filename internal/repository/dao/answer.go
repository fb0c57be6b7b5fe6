package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Answer struct {
	ID uint `gorm:"primaryKey"`

	ContestID uint `gorm:"index;not null"`
	AuthorID  uint `gorm:"not null"`
	Author    User `gorm:"foreignKey:AuthorID"`

	Content string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

// InsertAnswer creates the answer and bumps the parent's num_answers in the
// same transaction, so no committed answer is ever missing its increment.
func (d *ContestDAO) InsertAnswer(ctx context.Context, answer Answer) (Answer, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&answer).Error; err != nil {
			return err
		}

		result := tx.Model(&Contest{}).
			Where("id = ?", answer.ContestID).
			UpdateColumn("num_answers", gorm.Expr("num_answers + ?", 1))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrContestNotFound
		}

		return nil
	})
	if err != nil {
		return Answer{}, err
	}

	return answer, nil
}

func (d *ContestDAO) FindAnswersByContestID(ctx context.Context, contestID uint) ([]Answer, error) {
	var answers []Answer

	err := d.db.WithContext(ctx).
		Where("contest_id = ?", contestID).
		Preload("Author").
		Order("created_at ASC").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}

	return answers, nil
}
