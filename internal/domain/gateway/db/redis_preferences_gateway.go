package db

import (
	"context"
	"time"

	"taskboard/internal/domain/model"
	"taskboard/pkg/redis"
)

const preferencesKeyPrefix = "taskboard:prefs:"

type RedisPreferencesGateway struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPreferencesGateway(client *redis.Client, ttl time.Duration) *RedisPreferencesGateway {
	return &RedisPreferencesGateway{client: client, ttl: ttl}
}

func preferencesKey(profile string) string {
	return preferencesKeyPrefix + profile
}

func (gateway *RedisPreferencesGateway) Load(ctx context.Context, profile string) (model.ViewPreferences, error) {
	var prefs model.ViewPreferences
	if _, err := gateway.client.GetJSON(ctx, preferencesKey(profile), &prefs); err != nil {
		return model.ViewPreferences{}, err
	}
	return prefs, nil
}

func (gateway *RedisPreferencesGateway) Save(ctx context.Context, profile string, prefs model.ViewPreferences) error {
	if prefs.IsZero() {
		return gateway.client.Delete(ctx, preferencesKey(profile))
	}
	return gateway.client.SetJSON(ctx, preferencesKey(profile), prefs, gateway.ttl)
}

func (gateway *RedisPreferencesGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	details, err := gateway.client.HealthCheck(ctx)
	if err != nil {
		details["error"] = err.Error()
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}
