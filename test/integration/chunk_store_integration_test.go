package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"hadith-voice-be/internal/model"
	"hadith-voice-be/internal/repository/implementation"
	"hadith-voice-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkStoreRoundTrip(t *testing.T) {
	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err, "Failed to connect to DB")

	sqlDB, _ := gormDB.DB()
	require.NoError(t, sqlDB.Ping())

	require.NoError(t, gormDB.AutoMigrate(&model.DocumentChunk{}))

	repo := implementation.NewChunkRepository(gormDB)
	ctx := context.Background()
	source := "integration-test-" + uuid.New().String()

	vec := func(x float32) pgvector.Vector {
		values := make([]float32, 768)
		values[0] = x
		values[1] = 1 - x
		return pgvector.NewVector(values)
	}

	chunks := []*model.DocumentChunk{
		{Id: uuid.New(), Source: source, Page: 1, ChunkIndex: 0, Content: "close to the query", Embedding: vec(1.0), CreatedAt: time.Now()},
		{Id: uuid.New(), Source: source, Page: 2, ChunkIndex: 1, Content: "far from the query", Embedding: vec(0.0), CreatedAt: time.Now()},
	}

	t.Cleanup(func() {
		_ = repo.DeleteBySource(ctx, source)
	})

	t.Run("ReplaceSource inserts", func(t *testing.T) {
		require.NoError(t, repo.ReplaceSource(ctx, source, chunks))

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, count, int64(2))
	})

	t.Run("SearchSimilar orders by similarity", func(t *testing.T) {
		query := make([]float32, 768)
		query[0] = 1.0

		hits, err := repo.SearchSimilar(ctx, query, 2)
		require.NoError(t, err)
		require.NotEmpty(t, hits)

		assert.Equal(t, "close to the query", hits[0].Content)
		if len(hits) > 1 {
			assert.GreaterOrEqual(t, hits[0].Score, hits[1].Score)
		}
	})

	t.Run("ReplaceSource swaps atomically", func(t *testing.T) {
		replacement := []*model.DocumentChunk{
			{Id: uuid.New(), Source: source, Page: 5, ChunkIndex: 0, Content: "second ingestion", Embedding: vec(0.5), CreatedAt: time.Now()},
		}
		require.NoError(t, repo.ReplaceSource(ctx, source, replacement))

		var remaining int64
		require.NoError(t, gormDB.Model(&model.DocumentChunk{}).Where("source = ?", source).Count(&remaining).Error)
		assert.Equal(t, int64(1), remaining)
	})
}
