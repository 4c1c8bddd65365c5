package resource

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	properties = viper.New()
	mu         sync.RWMutex
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// Init loads application properties from a YAML file on disk.
func Init(filepath string) error {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("failed to read properties file %s: %w", filepath, err)
	}
	return Load(content)
}

// Load replaces the current properties with the given YAML document.
// String values may reference environment variables as ${NAME} or ${NAME:default}.
func Load(content []byte) error {
	v := viper.New()
	v.SetConfigType("yml")
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return fmt.Errorf("failed to parse properties: %w", err)
	}

	for _, key := range v.AllKeys() {
		if raw, ok := v.Get(key).(string); ok && envPattern.MatchString(raw) {
			v.Set(key, resolveEnvVariables(raw))
		}
	}

	mu.Lock()
	properties = v
	mu.Unlock()
	return nil
}

// Set overrides a single property, mostly useful in tests.
func Set(key string, value any) {
	mu.Lock()
	defer mu.Unlock()
	properties.Set(key, value)
}

// resolveEnvVariables replaces every ${NAME:default} occurrence with the environment value or its default
func resolveEnvVariables(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(groups[1]); exists {
			return envValue
		}
		return groups[2]
	})
}

func current() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	return properties
}

func Get(key string) any {
	return current().Get(key)
}

func GetString(key string) string {
	return current().GetString(key)
}

// GetStringOrDefault returns the property or defaultValue when it is missing or blank.
func GetStringOrDefault(key, defaultValue string) string {
	if value := current().GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetBool(key string) bool {
	return current().GetBool(key)
}

func GetDuration(key string) time.Duration {
	return current().GetDuration(key)
}

// GetDurationOrDefault returns the property or defaultValue when it is missing or not positive.
func GetDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := current().GetDuration(key); value > 0 {
		return value
	}
	return defaultValue
}

func GetInt(key string) int {
	return current().GetInt(key)
}

// GetIntOrDefault returns the property or defaultValue when it is missing or not positive.
func GetIntOrDefault(key string, defaultValue int) int {
	if value := current().GetInt(key); value > 0 {
		return value
	}
	return defaultValue
}

func GetFloat64(key string) float64 {
	return current().GetFloat64(key)
}

func GetStringSlice(key string) []string {
	return current().GetStringSlice(key)
}
