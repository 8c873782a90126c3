package config

import (
	"log"
	"os"
)

type Config struct {
	Port string

	// LLM provider
	OpenAIAPIKey string
	DefaultModel string
	UseMockLLM   bool // true = stub generator + no live run provider

	// Research pipeline generation backend: "openai" or "vertex"
	ResearchBackend string
	GCPProjectID    string
	GCPLocation     string
	VertexModel     string

	// CRM storage: "memory" or "firestore"
	StorageBackend string

	// Email delivery
	ResendAPIKey string
	EmailFrom    string
	EmailTo      string

	// Web search
	TavilyAPIKey string

	// Shared secret guarding the weekly research endpoint. Empty
	// disables the check (local dev).
	CronSecret string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "TRUE"
}

// Load reads all env vars and builds the config.
func Load() *Config {
	cfg := &Config{
		Port: getEnv("AIOS_PORT", "8080"),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		DefaultModel: getEnv("AIOS_MODEL_NAME", "gpt-4o"),
		UseMockLLM:   getBoolEnv("AIOS_USE_MOCK_LLM", false),

		ResearchBackend: getEnv("AIOS_RESEARCH_BACKEND", "openai"),
		GCPProjectID:    getEnv("AIOS_GCP_PROJECT", ""),
		GCPLocation:     getEnv("AIOS_GCP_LOCATION", "us-central1"),
		VertexModel:     getEnv("AIOS_VERTEX_MODEL", "gemini-2.5-flash"),

		StorageBackend: getEnv("AIOS_STORAGE_BACKEND", "memory"),

		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		EmailFrom:    getEnv("AIOS_EMAIL_FROM", "AI OS <onboarding@resend.dev>"),
		EmailTo:      getEnv("AIOS_EMAIL_TO", ""),

		TavilyAPIKey: getEnv("TAVILY_API_KEY", ""),

		CronSecret: getEnv("AIOS_CRON_SECRET", ""),
	}

	if !cfg.UseMockLLM && cfg.OpenAIAPIKey == "" {
		log.Fatal("OPENAI_API_KEY must be set unless AIOS_USE_MOCK_LLM=1")
	}
	if cfg.ResearchBackend == "vertex" && cfg.GCPProjectID == "" {
		log.Fatal("AIOS_GCP_PROJECT must be set for the vertex research backend")
	}
	if cfg.StorageBackend == "firestore" && cfg.GCPProjectID == "" {
		log.Fatal("AIOS_GCP_PROJECT must be set for the firestore storage backend")
	}

	return cfg
}
