package main

import (
	"context"
	"log"
	"net/http"

	httpadapter "github.com/shennylee/aios/internal/adapters/http"
	"github.com/shennylee/aios/internal/adapters/llm"
	openaiadapter "github.com/shennylee/aios/internal/adapters/openai"
	resendadapter "github.com/shennylee/aios/internal/adapters/resend"
	firestorestore "github.com/shennylee/aios/internal/adapters/storage/firestore"
	memstore "github.com/shennylee/aios/internal/adapters/storage/memory"
	"github.com/shennylee/aios/internal/adapters/tavily"
	"github.com/shennylee/aios/internal/app/orchestrator"
	"github.com/shennylee/aios/internal/app/research"
	"github.com/shennylee/aios/internal/app/tools"
	"github.com/shennylee/aios/internal/config"
	"github.com/shennylee/aios/internal/domain"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Storage: Firestore or memory
	var contactStore domain.ContactStore
	switch cfg.StorageBackend {
	case "firestore":
		log.Printf("[STORE] Using Firestore storage (project=%s)", cfg.GCPProjectID)
		store, err := firestorestore.NewStore(ctx, cfg.GCPProjectID)
		if err != nil {
			log.Fatalf("error initializing Firestore store: %v", err)
		}
		contactStore = store
	default:
		log.Println("[STORE] Using in-memory storage")
		contactStore = memstore.NewContactStore()
	}

	emailSender := resendadapter.NewSender(cfg.ResendAPIKey)
	registry := tools.NewRegistry(contactStore, emailSender, cfg.EmailFrom, cfg.EmailTo)

	// Run provider for chat turns
	provider := openaiadapter.NewRunProvider(cfg.OpenAIAPIKey)
	orch := orchestrator.New(provider, registry)

	// Research pipeline generation backend
	var generator domain.Generator
	switch {
	case cfg.UseMockLLM:
		log.Println("[LLM] Using mock generator")
		generator = llm.NewMockGenerator()
	case cfg.ResearchBackend == "vertex":
		log.Printf("[LLM] Using Vertex generator (project=%s)", cfg.GCPProjectID)
		vertex, err := llm.NewVertexGenerator(ctx, cfg.GCPProjectID, cfg.GCPLocation, cfg.VertexModel)
		if err != nil {
			log.Fatalf("error initializing Vertex generator: %v", err)
		}
		generator = vertex
	default:
		log.Println("[LLM] Using OpenAI generator")
		generator = openaiadapter.NewGenerator(cfg.OpenAIAPIKey, cfg.DefaultModel)
	}

	searchClient := tavily.New(cfg.TavilyAPIKey)
	pipeline := research.New(searchClient, generator, emailSender, cfg.EmailFrom, cfg.EmailTo)

	handler := httpadapter.NewServer(orch, pipeline, cfg.CronSecret)

	addr := ":" + cfg.Port
	log.Println("aios API listening on", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal(err)
	}
}
