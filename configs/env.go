package configs

import (
	_ "embed"
	"log"
	"os"

	"github.com/spf13/viper"

	"meteo-api/pkg/msg"
	"meteo-api/pkg/resource"
)

//go:embed application.yml
var applicationYML []byte

//go:embed messages.yml
var messagesYML []byte

type EnvConfig struct {
	ApplicationName string
	ContextPath     string
}

var Env *EnvConfig

// init loads the embedded properties and messages, then the files pointed to by
// PROPERTIES_FILE_PATH and MESSAGES_FILE_PATH when they are set.
func init() {
	if err := resource.Load(applicationYML); err != nil {
		log.Fatalf("Fail to load embedded properties: %v", err)
	}
	if path, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		if err := resource.Init(path); err != nil {
			log.Fatalf("Fail to read properties: %v", err)
		}
	}

	if err := msg.Load(messagesYML); err != nil {
		log.Fatalf("Fail to load embedded messages: %v", err)
	}
	if path, ok := os.LookupEnv("MESSAGES_FILE_PATH"); ok {
		if err := msg.Init(path); err != nil {
			log.Fatalf("Fail to read messages: %v", err)
		}
	}

	env := viper.New()
	env.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault(env, "APPLICATION_NAME", resource.GetString("app.name")),
		ContextPath:     getStringOrDefault(env, "CONTEXT_PATH", resource.GetString("app.server.context-path")),
	}
}

func getStringOrDefault(env *viper.Viper, key, defaultValue string) string {
	value := env.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
