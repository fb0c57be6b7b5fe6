package repository

import (
	"context"
	"fmt"

	"contestboard/internal/domain"
	"contestboard/internal/repository/dao"
)

var ErrContestNotFound = dao.ErrContestNotFound

type ContestDAO interface {
	FindPage(ctx context.Context, term string, page, limit int) ([]dao.Contest, int64, error)
	FindByID(ctx context.Context, id uint) (dao.Contest, error)
	Insert(ctx context.Context, contest dao.Contest) (dao.Contest, error)
	Update(ctx context.Context, contest dao.Contest) (dao.Contest, error)
	Delete(ctx context.Context, id uint) error
	IncrementReads(ctx context.Context, id uint) error
	InsertAnswer(ctx context.Context, answer dao.Answer) (dao.Answer, error)
	FindAnswersByContestID(ctx context.Context, contestID uint) ([]dao.Answer, error)
}

type ContestRepository struct {
	dao ContestDAO
}

func NewContestRepository(dao ContestDAO) *ContestRepository {
	return &ContestRepository{
		dao: dao,
	}
}

func (r *ContestRepository) FindPage(ctx context.Context, term string, page, limit int) ([]domain.Contest, int64, error) {
	found, total, err := r.dao.FindPage(ctx, term, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.FindPage -> %w", err)
	}

	contests := make([]domain.Contest, len(found))
	for i, c := range found {
		contests[i] = r.daoToDomain(c)
	}

	return contests, total, nil
}

func (r *ContestRepository) GetByID(ctx context.Context, id uint) (domain.Contest, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Contest{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ContestRepository) Create(ctx context.Context, contest domain.Contest) (domain.Contest, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(contest))
	if err != nil {
		return domain.Contest{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ContestRepository) Update(ctx context.Context, contest domain.Contest) (domain.Contest, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(contest))
	if err != nil {
		return domain.Contest{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ContestRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ContestRepository) IncrementReads(ctx context.Context, id uint) error {
	if err := r.dao.IncrementReads(ctx, id); err != nil {
		return fmt.Errorf("r.dao.IncrementReads -> %w", err)
	}

	return nil
}

func (r *ContestRepository) CreateAnswer(ctx context.Context, answer domain.Answer) (domain.Answer, error) {
	created, err := r.dao.InsertAnswer(ctx, dao.Answer{
		ContestID: answer.ContestID,
		AuthorID:  answer.AuthorID,
		Content:   answer.Content,
	})
	if err != nil {
		return domain.Answer{}, fmt.Errorf("r.dao.InsertAnswer -> %w", err)
	}

	return r.answerDaoToDomain(created), nil
}

func (r *ContestRepository) FindAnswers(ctx context.Context, contestID uint) ([]domain.Answer, error) {
	found, err := r.dao.FindAnswersByContestID(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAnswersByContestID -> %w", err)
	}

	answers := make([]domain.Answer, len(found))
	for i, a := range found {
		answers[i] = r.answerDaoToDomain(a)
	}

	return answers, nil
}

func (r *ContestRepository) domainToDao(c domain.Contest) dao.Contest {
	return dao.Contest{
		ID:           c.ID,
		Title:        c.Title,
		Content:      c.Content,
		Tags:         c.Tags,
		Sponsor:      c.Sponsor,
		Intro:        c.Intro,
		Details:      c.Details,
		Start:        c.Start,
		End:          c.End,
		Category:     c.Category,
		File:         c.File,
		Host:         c.Host,
		Contact:      c.Contact,
		ContactEmail: c.ContactEmail,
		NumReads:     c.NumReads,
		NumAnswers:   c.NumAnswers,
		AuthorID:     c.AuthorID,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (r *ContestRepository) daoToDomain(c dao.Contest) domain.Contest {
	return domain.Contest{
		ID:           c.ID,
		Title:        c.Title,
		Content:      c.Content,
		Tags:         c.Tags,
		Sponsor:      c.Sponsor,
		Intro:        c.Intro,
		Details:      c.Details,
		Start:        c.Start,
		End:          c.End,
		Category:     c.Category,
		File:         c.File,
		Host:         c.Host,
		Contact:      c.Contact,
		ContactEmail: c.ContactEmail,
		NumReads:     c.NumReads,
		NumAnswers:   c.NumAnswers,
		AuthorID:     c.AuthorID,
		Author:       userDaoToDomain(c.Author),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (r *ContestRepository) answerDaoToDomain(a dao.Answer) domain.Answer {
	return domain.Answer{
		ID:        a.ID,
		ContestID: a.ContestID,
		AuthorID:  a.AuthorID,
		Author:    userDaoToDomain(a.Author),
		Content:   a.Content,
		CreatedAt: a.CreatedAt,
	}
}
