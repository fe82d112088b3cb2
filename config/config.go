package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"warsoracle/meta"
)

const configName = "warsoracle.cfg.json"

// Load reads configuration from the JSON file in configDir and sets default values.
// A missing file is not an error; defaults and WARSORACLE_* environment variables apply.
func Load(configDir string) error {
	// Set default values
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("goroutines", meta.GO_ROUTINES)
	viper.SetDefault("highRiskThreshold", meta.HIGH_RISK_DAMAGE)
	viper.SetDefault("rulesFile", "")
	viper.SetDefault("teamsFile", "")
	viper.SetDefault("metrics.enabled", false)
	viper.SetDefault("metrics.dir", "./analyses")
	viper.SetDefault("output.format", "json")

	viper.SetEnvPrefix("WARSORACLE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(configName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// Set overrides a config value, e.g. from a command line flag.
func Set(key string, value any) {
	viper.Set(key, value)
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetFloat returns a float config value.
func GetFloat(key string) float64 {
	return viper.GetFloat64(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
