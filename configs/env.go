package configs

import (
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName    string
	PropertiesFilePath string
	MessagesFilePath   string
}

var Env *EnvConfig

func init() {
	Load()
}

// Load reads the process environment. Exposed so tests can reload after t.Setenv.
func Load() {
	env := viper.New()
	env.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName:    getStringOrDefault(env, "APPLICATION_NAME", "taskboard"),
		PropertiesFilePath: getStringOrDefault(env, "PROPERTIES_FILE_PATH", "configs/application.yml"),
		MessagesFilePath:   env.GetString("MESSAGES_FILE_PATH"),
	}
}

func getStringOrDefault(env *viper.Viper, key, defaultValue string) string {
	value := env.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
