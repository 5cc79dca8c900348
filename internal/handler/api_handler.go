package handler

import (
	"pr-metrics-dashboard/api"
	"pr-metrics-dashboard/internal/domain"

	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*StatsHandler
	*UserHandler
	*PRHandler
	*SyncHandler
	*HierarchyHandler
	*SimilarityHandler
}

func NewAPIHandler(
	dashboardUseCase domain.DashboardUseCase,
	aggregationUseCase domain.AggregationUseCase,
	syncUseCase domain.SyncUseCase,
	hierarchyUseCase domain.HierarchyUseCase,
	similarityUseCase domain.SimilarityUseCase,
	logger *logrus.Logger,
) api.ServerInterface {

	return &APIHandler{
		StatsHandler:      NewStatsHandler(dashboardUseCase, aggregationUseCase, logger),
		UserHandler:       NewUserHandler(dashboardUseCase, aggregationUseCase, logger),
		PRHandler:         NewPRHandler(dashboardUseCase, logger),
		SyncHandler:       NewSyncHandler(syncUseCase, logger),
		HierarchyHandler:  NewHierarchyHandler(hierarchyUseCase, logger),
		SimilarityHandler: NewSimilarityHandler(similarityUseCase, logger),
	}
}
