package domain_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"pr-metrics-dashboard/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPError(t *testing.T) {
	httpErr, ok := domain.ToHTTPError(fmt.Errorf("%w: unknown domain %q", domain.ErrInvalidFilter, "payroll"))
	assert.True(t, ok)
	assert.Equal(t, "INVALID_FILTER", httpErr.Code)
	assert.Contains(t, httpErr.Message, "payroll")

	httpErr, ok = domain.ToHTTPError(fmt.Errorf("lookup: %w", domain.ErrDeveloperNotFound))
	assert.True(t, ok)
	assert.Equal(t, "NOT_FOUND", httpErr.Code)
	assert.Equal(t, "developer not found", httpErr.Message)

	_, ok = domain.ToHTTPError(errors.New("connection refused"))
	assert.False(t, ok)
}

func TestPage_Normalize(t *testing.T) {
	p, err := domain.Page{}.Normalize()
	assert.NoError(t, err)
	assert.Equal(t, domain.DefaultPageLimit, p.Limit)

	_, err = domain.Page{Limit: domain.MaxPageLimit + 1}.Normalize()
	assert.ErrorIs(t, err, domain.ErrInvalidPagination)

	_, err = domain.Page{Limit: -1}.Normalize()
	assert.ErrorIs(t, err, domain.ErrInvalidPagination)

	_, err = domain.Page{Limit: 10, Offset: -5}.Normalize()
	assert.ErrorIs(t, err, domain.ErrInvalidPagination)
}

func TestParseDimension(t *testing.T) {
	for in, expected := range map[string]domain.Dimension{
		"domains":   domain.DimensionDomain,
		"trainers":  domain.DimensionDeveloper,
		"developer": domain.DimensionDeveloper,
		"reviewers": domain.DimensionReviewer,
		"interface": domain.DimensionInterface,
		"pod-leads": domain.DimensionPodLead,
	} {
		d, err := domain.ParseDimension(in)
		assert.NoError(t, err, in)
		assert.Equal(t, expected, d, in)
	}

	_, err := domain.ParseDimension("teams")
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}

func TestCosineSimilarity(t *testing.T) {
	s, err := domain.CosineSimilarity([]float64{1, 0}, []float64{1, 0})
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, s, 1e-9)

	s, err = domain.CosineSimilarity([]float64{1, 0}, []float64{0, 2})
	assert.NoError(t, err)
	assert.InDelta(t, 0.0, s, 1e-9)

	s, err = domain.CosineSimilarity([]float64{1, 1}, []float64{-1, -1})
	assert.NoError(t, err)
	assert.InDelta(t, -1.0, s, 1e-9)

	_, err = domain.CosineSimilarity([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, domain.ErrInvalidEmbedding)

	_, err = domain.CosineSimilarity([]float64{0, 0}, []float64{1, 2})
	assert.ErrorIs(t, err, domain.ErrInvalidEmbedding)
}

func TestPullRequest_Validate(t *testing.T) {
	valid := validPR()
	assert.NoError(t, valid.Validate())

	noTitle := validPR()
	noTitle.Title = ""
	assert.ErrorIs(t, noTitle.Validate(), domain.ErrMalformedRecord)

	noNumber := validPR()
	noNumber.Number = 0
	assert.ErrorIs(t, noNumber.Validate(), domain.ErrMalformedRecord)

	badState := validPR()
	badState.State = "draft"
	assert.ErrorIs(t, badState.Validate(), domain.ErrMalformedRecord)

	var nilPR *domain.PullRequest
	assert.ErrorIs(t, nilPR.Validate(), domain.ErrMalformedRecord)
}

func validPR() *domain.PullRequest {
	return &domain.PullRequest{
		Number:    7,
		Title:     "bob-finance-1-hard-1718000000",
		State:     domain.PRStateOpen,
		UpdatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}
