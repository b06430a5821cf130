package ai_fx

import (
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/fx"

	mem "teachassist/pkg/memcache"
	"teachassist/pkg/utils"
)

var Module = fx.Provide(
	ProvideGenerativeClient,
	ProvideEmbeddingClient,
	provideGenerationCache)

// AIConfig holds configuration for the generative and embedding clients.
type AIConfig struct {
	Provider string
	APIKey   string
	Model    string
}

func ProvideGenerativeClient() (utils.GenerativeClientInterface, error) {
	config := getAIConfig()

	log.Printf("Initializing %s generative client with model: %s", config.Provider, config.Model)

	return utils.NewGenerativeClient(config.Provider, config.APIKey, config.Model)
}

// ProvideEmbeddingClient reuses the same provider choice for embeddings.
func ProvideEmbeddingClient() (utils.EmbeddingClientInterface, error) {
	config := getAIConfig()

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAIClient(config.APIKey, config.Model), nil
	default:
		client, err := utils.NewGeminiClient(config.APIKey, config.Model)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}

func provideGenerationCache() *mem.GenerationCache {
	ttl := time.Hour
	if raw := os.Getenv("GENERATION_CACHE_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			ttl = parsed
		}
	}
	return mem.NewGenerationCache(ttl)
}

// getAIConfig reads provider configuration from environment variables.
func getAIConfig() AIConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	default:
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return AIConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
