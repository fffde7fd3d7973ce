package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hadith-voice-be/internal/config"
	"hadith-voice-be/internal/model"
	"hadith-voice-be/internal/repository/implementation"
	"hadith-voice-be/pkg/database"
	"hadith-voice-be/pkg/embedding"
	"hadith-voice-be/pkg/utils"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/schollz/progressbar/v3"
	"github.com/tmc/langchaingo/documentloaders"
	"github.com/tmc/langchaingo/schema"
	"github.com/tmc/langchaingo/textsplitter"
)

type ingestConfig struct {
	FilePath     string
	Source       string
	ChunkSize    int
	ChunkOverlap int
}

func main() {
	appCfg := config.Load()
	cfg := parseFlags(appCfg)

	if err := run(appCfg, cfg); err != nil {
		log.Fatal(color.RedString("Ingestion failed: %v", err))
	}
}

func parseFlags(appCfg *config.Config) ingestConfig {
	var cfg ingestConfig
	flag.StringVar(&cfg.FilePath, "file", "", "Path to the book file (.pdf or .txt)")
	flag.StringVar(&cfg.Source, "source", "", "Source label stored with each chunk (defaults to the file name)")
	flag.IntVar(&cfg.ChunkSize, "chunk-size", appCfg.Rag.ChunkSize, "Size of text chunks in characters")
	flag.IntVar(&cfg.ChunkOverlap, "chunk-overlap", appCfg.Rag.ChunkOverlap, "Overlap between adjacent chunks")
	flag.Parse()

	if cfg.FilePath == "" {
		flag.Usage()
		log.Fatal(color.RedString("-file is required"))
	}
	if cfg.Source == "" {
		cfg.Source = filepath.Base(cfg.FilePath)
	}
	return cfg
}

func run(appCfg *config.Config, cfg ingestConfig) error {
	ctx := context.Background()

	db, err := database.NewGormDBFromDSN(appCfg.Store.Connection)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if err := db.AutoMigrate(&model.DocumentChunk{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	var embedder embedding.Provider
	if appCfg.Ai.EmbeddingProvider == "ollama" {
		embedder = embedding.NewOllamaProvider(appCfg.Ai.OllamaBaseURL, appCfg.Ai.OllamaModel)
	} else {
		embedder = embedding.NewGeminiProvider(appCfg.Ai.GoogleGemini)
	}

	fmt.Println(color.CyanString("Loading %s...", cfg.FilePath))
	docs, err := loadDocuments(ctx, cfg)
	if err != nil {
		return err
	}
	fmt.Println(color.GreenString("Loaded %d chunks (size=%d overlap=%d)", len(docs), cfg.ChunkSize, cfg.ChunkOverlap))

	bar := getProgressBar(len(docs), "Embedding chunks")

	chunks := make([]*model.DocumentChunk, 0, len(docs))
	for i, doc := range docs {
		vec, err := embedder.Generate(ctx, doc.PageContent, embedding.TaskRetrievalDocument)
		if err != nil {
			return fmt.Errorf("embed chunk %d: %w", i, err)
		}
		if err := checkDimension(vec, appCfg.Store.VectorDim); err != nil {
			return fmt.Errorf("chunk %d: %w", i, err)
		}

		page := 0
		if p, ok := doc.Metadata["page"].(int); ok {
			page = p
		}

		chunks = append(chunks, &model.DocumentChunk{
			Id:         uuid.New(),
			Source:     cfg.Source,
			Page:       page,
			ChunkIndex: i,
			Content:    doc.PageContent,
			Embedding:  pgvector.NewVector(vec),
			CreatedAt:  time.Now(),
		})
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	fmt.Println()

	repo := implementation.NewChunkRepository(db)
	if err := repo.ReplaceSource(ctx, cfg.Source, chunks); err != nil {
		return fmt.Errorf("store chunks: %w", err)
	}

	total, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	fmt.Println(color.GreenString("Done. %d chunks stored for source %q (%d total in index)", len(chunks), cfg.Source, total))
	return nil
}

// checkDimension rejects embeddings that do not match the configured
// EMBEDDING_DIMENSION; a mismatched vector would fail on insert with a
// much less readable pgvector error.
func checkDimension(vec []float32, want int) error {
	if want > 0 && len(vec) != want {
		return fmt.Errorf("embedding dimension %d does not match EMBEDDING_DIMENSION=%d", len(vec), want)
	}
	return nil
}

// loadDocuments parses the input into page-tagged chunks. PDFs keep
// their page numbers; plain text gets page 0 throughout.
func loadDocuments(ctx context.Context, cfg ingestConfig) ([]schema.Document, error) {
	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(cfg.ChunkSize),
		textsplitter.WithChunkOverlap(cfg.ChunkOverlap),
	)

	switch strings.ToLower(filepath.Ext(cfg.FilePath)) {
	case ".pdf":
		f, err := os.Open(cfg.FilePath)
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return nil, err
		}
		return documentloaders.NewPDF(f, info.Size()).LoadAndSplit(ctx, splitter)

	case ".txt", ".md":
		raw, err := os.ReadFile(cfg.FilePath)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}

		pieces := utils.SplitTextWithOffsets(string(raw), cfg.ChunkSize, cfg.ChunkOverlap)
		docs := make([]schema.Document, len(pieces))
		for i, piece := range pieces {
			docs[i] = schema.Document{
				PageContent: piece.Text,
				Metadata:    map[string]any{"offset": piece.Offset},
			}
		}
		return docs, nil

	default:
		return nil, fmt.Errorf("unsupported file type %q (use .pdf or .txt)", filepath.Ext(cfg.FilePath))
	}
}

func getProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(color.BlueString(description)),
		progressbar.OptionSetItsString("chunks"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetRenderBlankState(true),
	)
}
