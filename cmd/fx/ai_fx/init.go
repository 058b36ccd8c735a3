package ai_fx

import (
	"context"
	"log"
	"os"

	"go.uber.org/fx"

	"wanderguard/internal/guide"
	"wanderguard/pkg/utils"
)

var Module = fx.Provide(
	ProvideGuideClient,
	ProvideEmbeddingClient,
	ProvideIDGenerator)

func ProvideGuideClient() (utils.GuideClientInterface, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY is required")
	}
	return utils.NewGeminiGuideClient(context.Background(), apiKey)
}

func ProvideEmbeddingClient() utils.EmbeddingClientInterface {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY is required")
	}
	return utils.NewOpenAIEmbeddingClient(apiKey, os.Getenv("OPENAI_EMBEDDING_MODEL"))
}

func ProvideIDGenerator() guide.IDGenerator {
	return guide.NewUUIDGenerator()
}
