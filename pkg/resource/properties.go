package resource

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

var (
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// init loads application properties from YAML
func init() {
	value, ok := os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		value = "configs/application.yml"
	}
	if err := Init(value); err != nil {
		if !ok && errors.Is(err, fs.ErrNotExist) {
			return
		}
		log.Fatalf("Fail to read properties: %v", err)
	}
}

// Init reads the properties file and resolves ${ENV:default} placeholders in every string value.
func Init(filepath string) error {
	if _, err := os.Stat(filepath); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	for _, key := range v.AllKeys() {
		if raw, ok := v.Get(key).(string); ok {
			v.Set(key, resolveEnvVariable(raw))
		}
	}

	properties = v
	return nil
}

// resolveEnvVariable replaces every ${NAME:default} occurrence in value. Unset variables without a default resolve to "".
func resolveEnvVariable(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(groups[1]); exists {
			return envValue
		}
		return groups[2]
	})
}

// Set overrides a property at runtime.
func Set(key string, value any) {
	properties.Set(key, value)
}

func IsSet(key string) bool {
	return properties.IsSet(key)
}

func Get(key string) any {
	return properties.Get(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

// GetStringOrDefault returns the property or defaultValue when it is empty.
func GetStringOrDefault(key, defaultValue string) string {
	if value := properties.GetString(key); value != "" {
		return value
	}
	return defaultValue
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

func GetInt32(key string) int32 {
	return properties.GetInt32(key)
}

func GetInt64(key string) int64 {
	return properties.GetInt64(key)
}

func GetStringSlice(key string) []string {
	return properties.GetStringSlice(key)
}
