package handler

import (
	"net/http"

	"pr-metrics-dashboard/api"
	"pr-metrics-dashboard/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type SimilarityHandler struct {
	*BaseHandler
	similarityUseCase domain.SimilarityUseCase
}

func NewSimilarityHandler(similarityUseCase domain.SimilarityUseCase, logger *logrus.Logger) *SimilarityHandler {
	return &SimilarityHandler{
		BaseHandler:       NewBaseHandler(logger),
		similarityUseCase: similarityUseCase,
	}
}

// PutSimilarityEmbeddings сохраняет векторы задач и пересчитывает сходство.
func (h *SimilarityHandler) PutSimilarityEmbeddings(c echo.Context) error {
	var req api.PutSimilarityEmbeddingsJSONBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind embeddings request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", "invalid request body"))
	}

	logEntry := h.logRequest(c, "store_embeddings").WithField("count", len(req.Embeddings))

	embeddings := make([]domain.Embedding, len(req.Embeddings))
	for i, e := range req.Embeddings {
		embeddings[i] = domain.Embedding{PRNumber: e.PrNumber, Vector: e.Vector, Model: deref(e.Model)}
	}

	stored, err := h.similarityUseCase.StoreEmbeddings(c.Request().Context(), embeddings)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to store embeddings")
	}

	logEntry.Info("Embeddings stored")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"stored": stored,
	})
}

// GetSimilarity отдает сводку сходства задачи.
func (h *SimilarityHandler) GetSimilarity(c echo.Context, number int64) error {
	logEntry := h.logRequest(c, "get_similarity").WithField("pr_number", number)

	stats, err := h.similarityUseCase.Stats(c.Request().Context(), number)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get similarity")
	}
	return c.JSON(http.StatusOK, toAPISimilarity(stats))
}
