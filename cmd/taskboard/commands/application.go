package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"taskboard/configs"
	"taskboard/internal/domain/gateway/api"
	"taskboard/internal/domain/gateway/db"
	"taskboard/internal/domain/usecase/board"
	"taskboard/internal/domain/usecase/health"
	"taskboard/internal/domain/usecase/preferences"
	"taskboard/internal/domain/usecase/taskform"
	taskhttp "taskboard/pkg/http"
	"taskboard/pkg/log"
	"taskboard/pkg/msg"
	"taskboard/pkg/redis"
	"taskboard/pkg/resource"
)

// defaultProperties apply when a key is missing from the properties file or
// when the file itself is missing.
var defaultProperties = map[string]any{
	"app.name":                       "taskboard",
	"app.log.file":                   "taskboard.log",
	"app.log.level":                  "info",
	"app.backend.url":                "http://localhost:5000",
	"app.backend.timeout":            "30s",
	"app.backend.connection-timeout": "5s",
	"app.board.refresh-interval":     "",
	"app.preferences.enabled":        false,
	"app.preferences.profile":        "default",
	"app.preferences.ttl":            "720h",
	"app.redis.host":                 "localhost",
	"app.redis.port":                 6379,
	"app.redis.password":             "",
	"app.redis.database":             0,
}

// application wires gateways and use cases from the loaded properties.
type application struct {
	board       board.UseCase
	preferences preferences.UseCase
	health      health.UseCase

	redisClient *redis.Client
}

// bootstrap loads properties and messages, applies flag overrides and points
// the logger at the configured file.
func bootstrap(opts *rootOptions) error {
	resource.SetDefaults(defaultProperties)

	path := opts.configPath
	if path == "" {
		path = configs.Env.PropertiesFilePath
	}
	configErr := resource.Init(path)
	if configErr != nil && (opts.configPath != "" || !errors.Is(configErr, fs.ErrNotExist)) {
		return configErr
	}

	if configs.Env.MessagesFilePath != "" {
		if err := msg.Init(configs.Env.MessagesFilePath); err != nil {
			return err
		}
	}

	if opts.backendURL != "" {
		resource.Set("app.backend.url", opts.backendURL)
	}

	if err := log.Init(resource.GetString("app.log.file"), resource.GetString("app.log.level")); err != nil {
		return err
	}

	if configErr != nil {
		log.Warn(msg.GetMessage("cli.config-missing", path))
	} else {
		log.Debug(msg.GetMessage("app.config-loaded", path))
	}
	return nil
}

func newApplication() (*application, error) {
	taskGateway := api.NewTaskGateway(resource.GetString("app.backend.url"), taskhttp.ClientOptions{
		ConnectionTimeout: resource.GetDuration("app.backend.connection-timeout"),
		ReadTimeout:       resource.GetDuration("app.backend.timeout"),
		DefaultHeaders:    map[string]string{"User-Agent": resource.GetString("app.name")},
		Logger:            taskhttp.NewZapLogger(),
	})

	app := &application{}

	var preferencesGateway db.PreferencesGateway = db.NewMemoryPreferencesGateway()
	if resource.GetBool("app.preferences.enabled") {
		config := redis.NewRedisConfig().
			WithHost(resource.GetString("app.redis.host")).
			WithPort(resource.GetInt("app.redis.port")).
			WithPassword(resource.GetString("app.redis.password")).
			WithDatabase(resource.GetInt("app.redis.database"))

		client, err := redis.NewClient(config)
		if err != nil {
			return nil, fmt.Errorf("failed to create preferences store: %w", err)
		}
		app.redisClient = client
		preferencesGateway = db.NewRedisPreferencesGateway(client, resource.GetDuration("app.preferences.ttl"))
	}

	app.board = board.NewBoardUseCase(taskGateway, taskform.UUIDGenerator)
	app.preferences = preferences.NewPreferencesUseCase(preferencesGateway, resource.GetString("app.preferences.profile"))
	app.health = health.NewHealthUseCase(taskGateway, preferencesGateway)
	return app, nil
}

func (app *application) Close() {
	if app.redisClient != nil {
		_ = app.redisClient.Close()
	}
}

// withApplication runs fn for a one-shot command with a request timeout.
func withApplication(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, app *application) error) error {
	if err := bootstrap(opts); err != nil {
		return err
	}

	app, err := newApplication()
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, cancel := commandContext(cmd)
	defer cancel()
	return fn(ctx, app)
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout := resource.GetDuration("app.backend.timeout"); timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return context.WithCancel(ctx)
}
