package service

import (
	"context"
	"errors"
	"fmt"

	"contestboard/internal/domain"
	"contestboard/internal/repository"
)

var ErrContestNotFound = repository.ErrContestNotFound

type ContestRepository interface {
	FindPage(ctx context.Context, term string, page, limit int) ([]domain.Contest, int64, error)
	GetByID(ctx context.Context, id uint) (domain.Contest, error)
	Create(ctx context.Context, contest domain.Contest) (domain.Contest, error)
	Update(ctx context.Context, contest domain.Contest) (domain.Contest, error)
	Delete(ctx context.Context, id uint) error
	IncrementReads(ctx context.Context, id uint) error
	CreateAnswer(ctx context.Context, answer domain.Answer) (domain.Answer, error)
	FindAnswers(ctx context.Context, contestID uint) ([]domain.Answer, error)
}

type ContestService struct {
	repo ContestRepository
}

func NewContestService(repo ContestRepository) *ContestService {
	return &ContestService{
		repo: repo,
	}
}

func (s *ContestService) ListContests(ctx context.Context, term string, page, limit int) (domain.ContestPage, error) {
	contests, total, err := s.repo.FindPage(ctx, term, page, limit)
	if err != nil {
		return domain.ContestPage{}, fmt.Errorf("s.repo.FindPage -> %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return domain.ContestPage{
		Contests:   contests,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *ContestService) GetContest(ctx context.Context, id uint) (domain.Contest, error) {
	contest, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrContestNotFound) {
			return domain.Contest{}, ErrContestNotFound
		}

		return domain.Contest{}, fmt.Errorf("s.repo.GetByID -> %w", err)
	}

	return contest, nil
}

// ViewContest resolves a contest with its answers and counts the view.
// The returned contest already reflects the increment.
func (s *ContestService) ViewContest(ctx context.Context, id uint) (domain.Contest, []domain.Answer, error) {
	contest, err := s.GetContest(ctx, id)
	if err != nil {
		return domain.Contest{}, nil, err
	}

	if err = s.repo.IncrementReads(ctx, id); err != nil {
		return domain.Contest{}, nil, fmt.Errorf("s.repo.IncrementReads -> %w", err)
	}
	contest.NumReads++

	answers, err := s.repo.FindAnswers(ctx, id)
	if err != nil {
		return domain.Contest{}, nil, fmt.Errorf("s.repo.FindAnswers -> %w", err)
	}

	return contest, answers, nil
}

func (s *ContestService) CreateContest(ctx context.Context, contest domain.Contest, authorID uint) (domain.Contest, error) {
	contest.AuthorID = authorID

	created, err := s.repo.Create(ctx, contest)
	if err != nil {
		return domain.Contest{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// UpdateContest overwrites every editable field with fields, empty values
// included. Fields absent from the request end up empty, not preserved.
func (s *ContestService) UpdateContest(ctx context.Context, id uint, fields domain.Contest) (domain.Contest, error) {
	if _, err := s.GetContest(ctx, id); err != nil {
		return domain.Contest{}, err
	}

	fields.ID = id
	updated, err := s.repo.Update(ctx, fields)
	if err != nil {
		return domain.Contest{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ContestService) DeleteContest(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *ContestService) CreateAnswer(ctx context.Context, contestID, authorID uint, content string) (domain.Answer, error) {
	if _, err := s.GetContest(ctx, contestID); err != nil {
		return domain.Answer{}, err
	}

	created, err := s.repo.CreateAnswer(ctx, domain.Answer{
		ContestID: contestID,
		AuthorID:  authorID,
		Content:   content,
	})
	if err != nil {
		return domain.Answer{}, fmt.Errorf("s.repo.CreateAnswer -> %w", err)
	}

	return created, nil
}
