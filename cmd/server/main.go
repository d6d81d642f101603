package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"vietscan/internal/config"
	"vietscan/internal/extract"
	"vietscan/internal/handler"
	"vietscan/internal/llm"
	"vietscan/internal/llm/gemini"
	"vietscan/internal/llm/openai"
	"vietscan/internal/ocr/space"
	"vietscan/internal/port"
	"vietscan/internal/router"
	"vietscan/internal/service"
)

// @title Vietnamese Document OCR API
// @version 1.0
// @description Extracts structured fields from Vietnamese identity documents and vehicle registration papers.
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Optional .env for local development; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.OCR.APIKey == "" {
		log.Printf("warning: VIETSCAN_OCR_API_KEY is not set; OCR calls will fail")
	}
	if cfg.Completion.APIKey == "" {
		log.Printf("warning: VIETSCAN_COMPLETION_API_KEY is not set; completion calls will fail")
	}

	llm.RegisterProvider("openai", func(cfg *config.CompletionConfig) (port.Completer, error) {
		return openai.NewClient(cfg), nil
	})
	llm.RegisterProvider("gemini", func(cfg *config.CompletionConfig) (port.Completer, error) {
		return gemini.NewClient(cfg), nil
	})

	completer, err := llm.NewCompleter(&cfg.Completion)
	if err != nil {
		return fmt.Errorf("failed to initialize completion provider: %w", err)
	}
	recognizer := space.NewClient(&cfg.OCR)

	extractor := extract.NewExtractor(completer, &cfg.Completion)
	docSvc := service.NewDocumentService(recognizer, extractor, &cfg.Upload)

	docH := handler.NewDocumentHandler(docSvc)
	healthH := handler.NewHealthHandler()

	r := router.Setup(docH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
