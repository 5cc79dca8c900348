package usecase_test

import (
	"context"
	"testing"

	"pr-metrics-dashboard/internal/domain"
	"pr-metrics-dashboard/internal/mocks"
	"pr-metrics-dashboard/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSimilarityUseCase_StoreEmbeddings(t *testing.T) {
	// Setup
	ctx := context.Background()
	repo := &mocks.SimilarityRepository{}
	prRepo := &mocks.PRRepository{}
	uc := usecase.NewSimilarityUseCase(repo, prRepo, silentLogger())

	embeddings := []domain.Embedding{
		{PRNumber: 1, Vector: []float64{1, 0}},
		{PRNumber: 2, Vector: []float64{0, 1}},
	}
	stored := []domain.Embedding{
		embeddings[0],
		embeddings[1],
		{PRNumber: 3, Vector: []float64{1, 0}},
	}

	// Mock expectations
	repo.On("UpsertEmbedding", ctx, embeddings[0]).Return(nil)
	repo.On("UpsertEmbedding", ctx, embeddings[1]).Return(nil)
	prRepo.On("GetByNumber", ctx, int64(1)).Return(&domain.PullRequest{Number: 1, Merged: true, Domain: "Finance"}, nil)
	prRepo.On("GetByNumber", ctx, int64(2)).Return(&domain.PullRequest{Number: 2, Merged: false, Domain: "Finance"}, nil)
	repo.On("DomainEmbeddings", ctx, "Finance").Return(stored, nil).Once()
	repo.On("ReplacePairs", ctx, int64(1), mock.Anything).Return(nil)

	// Execute
	n, err := uc.StoreEmbeddings(ctx, embeddings)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	pairs := repo.Calls[len(repo.Calls)-1].Arguments.Get(2).([]domain.SimilarityPair)
	require.Len(t, pairs, 2)
	assert.Equal(t, domain.SimilarityPair{PRA: 1, PRB: 2, Domain: "Finance", Score: 0}, pairs[0])
	assert.Equal(t, int64(1), pairs[1].PRA)
	assert.Equal(t, int64(3), pairs[1].PRB)
	assert.InDelta(t, 1.0, pairs[1].Score, 1e-9)

	repo.AssertExpectations(t)
	prRepo.AssertExpectations(t)
}

func TestSimilarityUseCase_StoreEmbeddings_ValidationErrors(t *testing.T) {
	uc := usecase.NewSimilarityUseCase(&mocks.SimilarityRepository{}, &mocks.PRRepository{}, silentLogger())

	testCases := []struct {
		name       string
		embeddings []domain.Embedding
	}{
		{"Empty", nil},
		{"Missing number", []domain.Embedding{{Vector: []float64{1}}}},
		{"Duplicate", []domain.Embedding{{PRNumber: 1, Vector: []float64{1}}, {PRNumber: 1, Vector: []float64{1}}}},
		{"Dimension mismatch", []domain.Embedding{{PRNumber: 1, Vector: []float64{1}}, {PRNumber: 2, Vector: []float64{1, 2}}}},
		{"Zero vector", []domain.Embedding{{PRNumber: 1, Vector: []float64{0, 0}}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.StoreEmbeddings(context.Background(), tc.embeddings)
			assert.ErrorIs(t, err, domain.ErrInvalidEmbedding)
		})
	}
}

func TestSimilarityUseCase_RefreshForPRs_NoVector(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.SimilarityRepository{}
	prRepo := &mocks.PRRepository{}
	uc := usecase.NewSimilarityUseCase(repo, prRepo, silentLogger())

	prRepo.On("GetByNumber", ctx, int64(5)).Return(&domain.PullRequest{Number: 5, Merged: true, Domain: "Others"}, nil)
	repo.On("DomainEmbeddings", ctx, "Others").Return([]domain.Embedding{{PRNumber: 6, Vector: []float64{1}}}, nil)

	require.NoError(t, uc.RefreshForPRs(ctx, []int64{5}))
	repo.AssertNotCalled(t, "ReplacePairs", mock.Anything, mock.Anything, mock.Anything)
}

func TestSimilarityUseCase_Stats(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.SimilarityRepository{}
	uc := usecase.NewSimilarityUseCase(repo, &mocks.PRRepository{}, silentLogger())

	_, err := uc.Stats(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	stats := &domain.SimilarityStats{PRNumber: 4, Count: 2, Average: 0.5}
	repo.On("Stats", ctx, int64(4), 5).Return(stats, nil)
	repo.On("Stats", ctx, int64(8), 5).Return(nil, domain.ErrSimilarityNotFound)

	got, err := uc.Stats(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, stats, got)

	_, err = uc.Stats(ctx, 8)
	assert.ErrorIs(t, err, domain.ErrSimilarityNotFound)
}
