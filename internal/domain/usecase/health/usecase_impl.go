package health

import (
	"context"

	"taskboard/internal/domain/gateway/api"
	"taskboard/internal/domain/gateway/db"
	"taskboard/internal/domain/model"
)

type healthUseCase struct {
	apiGateway         api.TaskGateway
	preferencesGateway db.PreferencesGateway
}

func NewHealthUseCase(apiGateway api.TaskGateway, preferencesGateway db.PreferencesGateway) UseCase {
	return &healthUseCase{
		apiGateway:         apiGateway,
		preferencesGateway: preferencesGateway,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	backendHealth := useCase.apiGateway.Health(ctx)
	preferencesHealth := useCase.preferencesGateway.Health(ctx)

	overallStatus := model.StatusUp
	if backendHealth.Status != model.StatusUp || preferencesHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:      overallStatus,
		Backend:     backendHealth,
		Preferences: preferencesHealth,
	}
}
