package preferences

import (
	"context"

	"go.uber.org/zap"

	"taskboard/internal/domain/gateway/db"
	"taskboard/internal/domain/model"
	"taskboard/pkg/log"
	"taskboard/pkg/msg"
)

type preferencesUseCase struct {
	gateway db.PreferencesGateway
	profile string
}

func NewPreferencesUseCase(gateway db.PreferencesGateway, profile string) UseCase {
	if profile == "" {
		profile = "default"
	}
	return &preferencesUseCase{
		gateway: gateway,
		profile: profile,
	}
}

// Load never fails; a broken store yields the zero view.
func (useCase *preferencesUseCase) Load(ctx context.Context) model.ViewPreferences {
	prefs, err := useCase.gateway.Load(ctx, useCase.profile)
	if err != nil {
		log.Warn(msg.GetMessage("preferences.load-failed", useCase.profile), zap.Error(err))
		return model.ViewPreferences{}
	}
	if !prefs.SortCriteria.IsValid() {
		prefs.SortCriteria = model.SortNone
		prefs.SortValue = ""
	}
	return prefs
}

func (useCase *preferencesUseCase) Save(ctx context.Context, prefs model.ViewPreferences) {
	if err := useCase.gateway.Save(ctx, useCase.profile, prefs); err != nil {
		log.Warn(msg.GetMessage("preferences.save-failed", useCase.profile), zap.Error(err))
	}
}
