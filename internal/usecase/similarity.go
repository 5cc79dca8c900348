package usecase

import (
	"context"
	"fmt"

	"pr-metrics-dashboard/internal/domain"

	"github.com/sirupsen/logrus"
)

const similarityTop = 5

// SimilarityUseCase считает попарное сходство задач внутри домена.
type SimilarityUseCase struct {
	repo   domain.SimilarityRepository
	prRepo domain.PRRepository
	logger *logrus.Logger
}

// NewSimilarityUseCase создает новый экземпляр SimilarityUseCase.
func NewSimilarityUseCase(repo domain.SimilarityRepository, prRepo domain.PRRepository, logger *logrus.Logger) *SimilarityUseCase {
	return &SimilarityUseCase{
		repo:   repo,
		prRepo: prRepo,
		logger: logger,
	}
}

// StoreEmbeddings сохраняет векторы и пересчитывает пары для этих PR.
func (uc *SimilarityUseCase) StoreEmbeddings(ctx context.Context, embeddings []domain.Embedding) (int, error) {
	// Валидация входных данных
	if len(embeddings) == 0 {
		return 0, fmt.Errorf("%w: no embeddings", domain.ErrInvalidEmbedding)
	}
	dim := len(embeddings[0].Vector)
	seen := make(map[int64]struct{}, len(embeddings))
	for _, e := range embeddings {
		if e.PRNumber <= 0 {
			return 0, fmt.Errorf("%w: pr_number is required", domain.ErrInvalidEmbedding)
		}
		if _, dup := seen[e.PRNumber]; dup {
			return 0, fmt.Errorf("%w: duplicate pr_number %d", domain.ErrInvalidEmbedding, e.PRNumber)
		}
		seen[e.PRNumber] = struct{}{}
		if len(e.Vector) == 0 || len(e.Vector) != dim {
			return 0, fmt.Errorf("%w: pr #%d has %d dimensions, expected %d", domain.ErrInvalidEmbedding, e.PRNumber, len(e.Vector), dim)
		}
		if _, err := domain.CosineSimilarity(e.Vector, e.Vector); err != nil {
			return 0, fmt.Errorf("pr #%d: %w", e.PRNumber, err)
		}
	}

	numbers := make([]int64, 0, len(embeddings))
	for _, e := range embeddings {
		if err := uc.repo.UpsertEmbedding(ctx, e); err != nil {
			return 0, err
		}
		numbers = append(numbers, e.PRNumber)
	}

	if err := uc.RefreshForPRs(ctx, numbers); err != nil {
		return 0, err
	}
	return len(embeddings), nil
}

// RefreshForPRs пересчитывает пары для смерженных PR с векторами.
// PR без вектора или не смерженные пропускаются.
func (uc *SimilarityUseCase) RefreshForPRs(ctx context.Context, numbers []int64) error {
	byDomain := map[string][]domain.Embedding{}

	for _, number := range numbers {
		pr, err := uc.prRepo.GetByNumber(ctx, number)
		if err != nil {
			return err
		}
		if !pr.Merged {
			continue
		}

		embeddings, ok := byDomain[pr.Domain]
		if !ok {
			embeddings, err = uc.repo.DomainEmbeddings(ctx, pr.Domain)
			if err != nil {
				return err
			}
			byDomain[pr.Domain] = embeddings
		}

		pairs, err := similarityPairs(number, pr.Domain, embeddings)
		if err != nil {
			uc.logger.WithError(err).WithField("pr_number", number).Warn("Skipping similarity refresh")
			continue
		}
		if pairs == nil {
			continue
		}
		if err := uc.repo.ReplacePairs(ctx, number, pairs); err != nil {
			return err
		}
	}
	return nil
}

// similarityPairs сравнивает вектор PR со всеми остальными векторами домена.
// nil - у PR нет вектора.
func similarityPairs(number int64, domainName string, embeddings []domain.Embedding) ([]domain.SimilarityPair, error) {
	var target []float64
	for _, e := range embeddings {
		if e.PRNumber == number {
			target = e.Vector
			break
		}
	}
	if target == nil {
		return nil, nil
	}

	pairs := make([]domain.SimilarityPair, 0, len(embeddings)-1)
	for _, e := range embeddings {
		if e.PRNumber == number {
			continue
		}
		score, err := domain.CosineSimilarity(target, e.Vector)
		if err != nil {
			return nil, err
		}
		a, b := number, e.PRNumber
		if a > b {
			a, b = b, a
		}
		pairs = append(pairs, domain.SimilarityPair{PRA: a, PRB: b, Domain: domainName, Score: score})
	}
	return pairs, nil
}

// Stats возвращает сводку сходства для PR.
func (uc *SimilarityUseCase) Stats(ctx context.Context, prNumber int64) (*domain.SimilarityStats, error) {
	if prNumber <= 0 {
		return nil, fmt.Errorf("%w: pr number must be positive", domain.ErrInvalidRequest)
	}
	return uc.repo.Stats(ctx, prNumber, similarityTop)
}
