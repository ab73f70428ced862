// Package config loads service configuration from the process environment.
package config

import (
	"os"
	"strconv"
	"strings"
)

// ServiceConfig holds process-level settings.
type ServiceConfig struct {
	Principal   string
	HTTPPort    string
	MetricsPort string
}

// ProviderConfig selects the vendor adapter per boundary. "mock" runs the
// pipeline without credentials for local development and tests.
type ProviderConfig struct {
	Transcriber string // deepgram, mock
	Analyzer    string // openai, mock
}

// DeepgramConfig holds the transcription vendor settings.
type DeepgramConfig struct {
	APIKey      string
	Model       string
	Language    string
	SmartFormat bool
	Diarize     bool
	Punctuate   bool
	FillerWords bool
	UttSplit    float64
}

// OpenAIConfig holds the language-model vendor settings.
type OpenAIConfig struct {
	APIKey string
	Model  string
}

// KafkaConfig holds event publishing settings.
type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string
	LogFormat string
}

// Configuration is the full service configuration, loaded once at startup
// and passed into constructors.
type Configuration struct {
	Service       ServiceConfig
	Providers     ProviderConfig
	Deepgram      DeepgramConfig
	OpenAI        OpenAIConfig
	Kafka         KafkaConfig
	Observability ObservabilityConfig
}

// Load reads configuration from the environment, applying defaults.
func Load() *Configuration {
	return &Configuration{
		Service: ServiceConfig{
			Principal:   envOrDefault("SERVICE_PRINCIPAL", "svc-call-insights"),
			HTTPPort:    envOrDefault("HTTP_PORT", "8080"),
			MetricsPort: envOrDefault("METRICS_PORT", "9090"),
		},
		Providers: ProviderConfig{
			Transcriber: envOrDefault("TRANSCRIBER_PROVIDER", "deepgram"),
			Analyzer:    envOrDefault("ANALYZER_PROVIDER", "openai"),
		},
		Deepgram: DeepgramConfig{
			APIKey:      os.Getenv("DEEPGRAM_API_KEY"),
			Model:       envOrDefault("DEEPGRAM_MODEL", "nova-2"),
			Language:    envOrDefault("DEEPGRAM_LANGUAGE", "hi"),
			SmartFormat: envBool("DEEPGRAM_SMART_FORMAT", true),
			Diarize:     envBool("DEEPGRAM_DIARIZE", true),
			Punctuate:   envBool("DEEPGRAM_PUNCTUATE", true),
			FillerWords: envBool("DEEPGRAM_FILLER_WORDS", true),
			UttSplit:    envFloat("DEEPGRAM_UTT_SPLIT", 0.5),
		},
		OpenAI: OpenAIConfig{
			APIKey: os.Getenv("OPENAI_API_KEY"),
			Model:  envOrDefault("OPENAI_MODEL", "gpt-4o"),
		},
		Kafka: KafkaConfig{
			Enabled: envBool("KAFKA_ENABLED", false),
			Brokers: envList("KAFKA_BROKERS"),
			Topic:   envOrDefault("KAFKA_TOPIC", "sales.call.analyzed"),
		},
		Observability: ObservabilityConfig{
			LogLevel:  envOrDefault("LOG_LEVEL", "info"),
			LogFormat: envOrDefault("LOG_FORMAT", "json"),
		},
	}
}

// MissingCredentials reports whether a required vendor key is absent. Mock
// providers need no credentials.
func (c *Configuration) MissingCredentials() bool {
	if c.Providers.Transcriber != "mock" && c.Deepgram.APIKey == "" {
		return true
	}
	if c.Providers.Analyzer != "mock" && c.OpenAI.APIKey == "" {
		return true
	}
	return false
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
