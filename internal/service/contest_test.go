package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contestboard/internal/domain"
)

type fakeContestRepository struct {
	findPageFunc       func(ctx context.Context, term string, page, limit int) ([]domain.Contest, int64, error)
	getByIDFunc        func(ctx context.Context, id uint) (domain.Contest, error)
	createFunc         func(ctx context.Context, contest domain.Contest) (domain.Contest, error)
	updateFunc         func(ctx context.Context, contest domain.Contest) (domain.Contest, error)
	deleteFunc         func(ctx context.Context, id uint) error
	incrementReadsFunc func(ctx context.Context, id uint) error
	createAnswerFunc   func(ctx context.Context, answer domain.Answer) (domain.Answer, error)
	findAnswersFunc    func(ctx context.Context, contestID uint) ([]domain.Answer, error)
}

func (f *fakeContestRepository) FindPage(ctx context.Context, term string, page, limit int) ([]domain.Contest, int64, error) {
	if f.findPageFunc != nil {
		return f.findPageFunc(ctx, term, page, limit)
	}
	return nil, 0, errors.New("not implemented")
}

func (f *fakeContestRepository) GetByID(ctx context.Context, id uint) (domain.Contest, error) {
	if f.getByIDFunc != nil {
		return f.getByIDFunc(ctx, id)
	}
	return domain.Contest{}, errors.New("not implemented")
}

func (f *fakeContestRepository) Create(ctx context.Context, contest domain.Contest) (domain.Contest, error) {
	if f.createFunc != nil {
		return f.createFunc(ctx, contest)
	}
	return domain.Contest{}, errors.New("not implemented")
}

func (f *fakeContestRepository) Update(ctx context.Context, contest domain.Contest) (domain.Contest, error) {
	if f.updateFunc != nil {
		return f.updateFunc(ctx, contest)
	}
	return domain.Contest{}, errors.New("not implemented")
}

func (f *fakeContestRepository) Delete(ctx context.Context, id uint) error {
	if f.deleteFunc != nil {
		return f.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func (f *fakeContestRepository) IncrementReads(ctx context.Context, id uint) error {
	if f.incrementReadsFunc != nil {
		return f.incrementReadsFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func (f *fakeContestRepository) CreateAnswer(ctx context.Context, answer domain.Answer) (domain.Answer, error) {
	if f.createAnswerFunc != nil {
		return f.createAnswerFunc(ctx, answer)
	}
	return domain.Answer{}, errors.New("not implemented")
}

func (f *fakeContestRepository) FindAnswers(ctx context.Context, contestID uint) ([]domain.Answer, error) {
	if f.findAnswersFunc != nil {
		return f.findAnswersFunc(ctx, contestID)
	}
	return nil, errors.New("not implemented")
}

func TestContestService_ListContests(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		limit          int
		wantTotalPages int
	}{
		{name: "partial last page", total: 23, limit: 10, wantTotalPages: 3},
		{name: "exact fit", total: 20, limit: 10, wantTotalPages: 2},
		{name: "single page", total: 3, limit: 10, wantTotalPages: 1},
		{name: "empty", total: 0, limit: 10, wantTotalPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeContestRepository{
				findPageFunc: func(ctx context.Context, term string, page, limit int) ([]domain.Contest, int64, error) {
					return []domain.Contest{}, tt.total, nil
				},
			}
			svc := NewContestService(repo)

			page, err := svc.ListContests(context.Background(), "", 2, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.total, page.Total)
			assert.Equal(t, 2, page.Page)
			assert.Equal(t, tt.limit, page.Limit)
			assert.Equal(t, tt.wantTotalPages, page.TotalPages)
		})
	}
}

func TestContestService_ListContests_PassesTerm(t *testing.T) {
	var gotTerm string
	repo := &fakeContestRepository{
		findPageFunc: func(ctx context.Context, term string, page, limit int) ([]domain.Contest, int64, error) {
			gotTerm = term
			return nil, 0, nil
		},
	}
	svc := NewContestService(repo)

	_, err := svc.ListContests(context.Background(), "golang", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "golang", gotTerm)
}

func TestContestService_ViewContest(t *testing.T) {
	incremented := false
	repo := &fakeContestRepository{
		getByIDFunc: func(ctx context.Context, id uint) (domain.Contest, error) {
			return domain.Contest{ID: id, Title: "Weekly Round", NumReads: 7}, nil
		},
		incrementReadsFunc: func(ctx context.Context, id uint) error {
			incremented = true
			return nil
		},
		findAnswersFunc: func(ctx context.Context, contestID uint) ([]domain.Answer, error) {
			return []domain.Answer{{ID: 1, ContestID: contestID}}, nil
		},
	}
	svc := NewContestService(repo)

	contest, answers, err := svc.ViewContest(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, incremented)
	assert.Equal(t, 8, contest.NumReads)
	assert.Len(t, answers, 1)
}

func TestContestService_ViewContest_NotFound(t *testing.T) {
	incremented := false
	repo := &fakeContestRepository{
		getByIDFunc: func(ctx context.Context, id uint) (domain.Contest, error) {
			return domain.Contest{}, ErrContestNotFound
		},
		incrementReadsFunc: func(ctx context.Context, id uint) error {
			incremented = true
			return nil
		},
	}
	svc := NewContestService(repo)

	_, _, err := svc.ViewContest(context.Background(), 42)
	assert.ErrorIs(t, err, ErrContestNotFound)
	assert.False(t, incremented, "missing contest must not be counted")
}

func TestContestService_CreateContest_SetsAuthor(t *testing.T) {
	var got domain.Contest
	repo := &fakeContestRepository{
		createFunc: func(ctx context.Context, contest domain.Contest) (domain.Contest, error) {
			got = contest
			contest.ID = 1
			return contest, nil
		},
	}
	svc := NewContestService(repo)

	created, err := svc.CreateContest(context.Background(), domain.Contest{Title: "Spring Hack"}, 9)
	require.NoError(t, err)
	assert.Equal(t, uint(9), got.AuthorID)
	assert.Equal(t, uint(1), created.ID)
}

func TestContestService_UpdateContest(t *testing.T) {
	var got domain.Contest
	repo := &fakeContestRepository{
		getByIDFunc: func(ctx context.Context, id uint) (domain.Contest, error) {
			return domain.Contest{ID: id, Title: "Old", Tags: []string{"keep"}}, nil
		},
		updateFunc: func(ctx context.Context, contest domain.Contest) (domain.Contest, error) {
			got = contest
			return contest, nil
		},
	}
	svc := NewContestService(repo)

	// Empty fields overwrite. Omitted tags become nil, not the old value.
	updated, err := svc.UpdateContest(context.Background(), 5, domain.Contest{Title: "New"})
	require.NoError(t, err)
	assert.Equal(t, uint(5), got.ID)
	assert.Equal(t, "New", got.Title)
	assert.Nil(t, got.Tags)
	assert.Equal(t, "New", updated.Title)
}

func TestContestService_UpdateContest_NotFound(t *testing.T) {
	updateCalled := false
	repo := &fakeContestRepository{
		getByIDFunc: func(ctx context.Context, id uint) (domain.Contest, error) {
			return domain.Contest{}, ErrContestNotFound
		},
		updateFunc: func(ctx context.Context, contest domain.Contest) (domain.Contest, error) {
			updateCalled = true
			return contest, nil
		},
	}
	svc := NewContestService(repo)

	_, err := svc.UpdateContest(context.Background(), 5, domain.Contest{Title: "New"})
	assert.ErrorIs(t, err, ErrContestNotFound)
	assert.False(t, updateCalled)
}

func TestContestService_CreateAnswer(t *testing.T) {
	var got domain.Answer
	repo := &fakeContestRepository{
		getByIDFunc: func(ctx context.Context, id uint) (domain.Contest, error) {
			return domain.Contest{ID: id}, nil
		},
		createAnswerFunc: func(ctx context.Context, answer domain.Answer) (domain.Answer, error) {
			got = answer
			answer.ID = 3
			return answer, nil
		},
	}
	svc := NewContestService(repo)

	created, err := svc.CreateAnswer(context.Background(), 7, 11, "my solution")
	require.NoError(t, err)
	assert.Equal(t, uint(7), got.ContestID)
	assert.Equal(t, uint(11), got.AuthorID)
	assert.Equal(t, "my solution", got.Content)
	assert.Equal(t, uint(3), created.ID)
}

func TestContestService_CreateAnswer_MissingParent(t *testing.T) {
	createCalled := false
	repo := &fakeContestRepository{
		getByIDFunc: func(ctx context.Context, id uint) (domain.Contest, error) {
			return domain.Contest{}, ErrContestNotFound
		},
		createAnswerFunc: func(ctx context.Context, answer domain.Answer) (domain.Answer, error) {
			createCalled = true
			return answer, nil
		},
	}
	svc := NewContestService(repo)

	_, err := svc.CreateAnswer(context.Background(), 7, 11, "my solution")
	assert.ErrorIs(t, err, ErrContestNotFound)
	assert.False(t, createCalled)
}
