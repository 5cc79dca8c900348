package domain

import (
	"context"
	"fmt"
	"math"
)

// Embedding - вектор задачи, посчитанный внешней моделью.
type Embedding struct {
	PRNumber int64
	Vector   []float64
	Model    string
}

// SimilarityPair - оценка сходства двух задач, PRA < PRB.
type SimilarityPair struct {
	PRA    int64
	PRB    int64
	Domain string
	Score  float64
}

// SimilarTask - соседняя задача и ее оценка.
type SimilarTask struct {
	PRNumber int64
	Score    float64
}

// SimilarityStats - сводка сходства задачи с остальными в домене.
type SimilarityStats struct {
	PRNumber int64
	Count    int
	Average  float64
	Max      float64
	Min      float64
	Top      []SimilarTask
}

// CosineSimilarity считает косинусное сходство двух векторов одной размерности.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: dimensions %d and %d", ErrInvalidEmbedding, len(a), len(b))
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0, fmt.Errorf("%w: zero vector", ErrInvalidEmbedding)
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb)), nil
}

// SimilarityRepository хранит векторы и попарные оценки.
type SimilarityRepository interface {
	UpsertEmbedding(ctx context.Context, e Embedding) error
	DomainEmbeddings(ctx context.Context, domain string) ([]Embedding, error)
	ReplacePairs(ctx context.Context, prNumber int64, pairs []SimilarityPair) error
	Stats(ctx context.Context, prNumber int64, top int) (*SimilarityStats, error)
}
