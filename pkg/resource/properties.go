package resource

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	properties = viper.New()
	defaults   = map[string]any{}
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// Init loads application properties from the YAML file at filepath, resolving
// ${ENV} and ${ENV:default} placeholders against the process environment.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("fail to read properties %s: %w", filepath, err)
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)

	next := viper.New()
	for key, value := range defaults {
		next.SetDefault(key, value)
	}
	for key, value := range resolved {
		next.Set(key, value)
	}
	properties = next
	return nil
}

// SetDefaults registers defaults that apply when a key is missing from the loaded file.
// Defaults survive later calls to Init.
func SetDefaults(values map[string]any) {
	for key, value := range values {
		defaults[key] = value
		properties.SetDefault(key, value)
	}
}

// Set overrides a single property. Command line flags use it.
func Set(key string, value any) {
	properties.Set(key, value)
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case []any:
			result[fullKey] = v
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		}
	}
}

// resolveEnvVariable replaces every ${NAME:default} occurrence in value
func resolveEnvVariable(value string) string {
	if !strings.Contains(value, "${") {
		return value
	}

	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(groups[1]); exists {
			return envValue
		}
		return groups[2]
	})
}

func Get(key string) any {
	return properties.Get(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}
