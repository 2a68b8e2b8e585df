package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

// ArchiveService is the track resource library: reference material chunked
// and embedded into Qdrant, retrieved by similarity to a task brief so Emem
// can point interns at relevant reading.
type ArchiveService interface {
	InitCollection() error
	UpsertResource(ctx context.Context, resourceID, track, text string, embedding []float32) error
	SearchResources(ctx context.Context, queryEmbedding []float32, track string, limit int) ([]ResourceResult, error)
	RetrieveTaskResources(ctx context.Context, taskBrief, track string, limit int) (string, error)
}

type ResourceResult struct {
	ID    string
	Score float32
	Text  string
	Track string
}

type archiveService struct {
	client         *qdrant.Client
	embedder       EmbeddingGenerator
	collectionName string
	vectorSize     uint64
}

func NewArchiveService(urlStr, apiKey, collectionName string, embedder EmbeddingGenerator) (ArchiveService, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC client defaults to port 6334.
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &archiveService{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 size
	}, nil
}

// InitCollection implements ArchiveService.
func (a *archiveService) InitCollection() error {
	ctx := context.Background()

	exists, err := a.client.CollectionExists(ctx, a.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Archive collection already exists")
		return nil
	}

	err = a.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: a.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     a.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})

	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Archive collection '%s' created successfully\n", a.collectionName)
	return nil
}

// UpsertResource implements ArchiveService.
func (a *archiveService) UpsertResource(ctx context.Context, resourceID, track, text string, embedding []float32) error {
	pointID := uuid.New()

	point := &qdrant.PointStruct{
		Id:      qdrant.NewIDNum(uint64(pointID.ID())),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"resource_id": resourceID,
			"track":       track,
			"text":        text,
		}),
	}

	_, err := a.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: a.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert resource: %w", err)
	}

	return nil
}

// SearchResources implements ArchiveService.
func (a *archiveService) SearchResources(ctx context.Context, queryEmbedding []float32, track string, limit int) ([]ResourceResult, error) {
	var filter *qdrant.Filter
	if track != "" {
		filter = &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch("track", track),
			},
		}
	}

	searchResult, err := a.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: a.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Filter:         filter,
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	var results []ResourceResult
	for _, point := range searchResult {
		payload := point.Payload

		result := ResourceResult{
			Score: point.Score,
		}

		if resourceID, ok := payload["resource_id"]; ok {
			if val, ok := resourceID.GetKind().(*qdrant.Value_StringValue); ok {
				result.ID = val.StringValue
			}
		}

		if text, ok := payload["text"]; ok {
			if val, ok := text.GetKind().(*qdrant.Value_StringValue); ok {
				result.Text = val.StringValue
			}
		}

		if trackValue, ok := payload["track"]; ok {
			if val, ok := trackValue.GetKind().(*qdrant.Value_StringValue); ok {
				result.Track = val.StringValue
			}
		}

		results = append(results, result)
	}

	return results, nil
}

// RetrieveTaskResources implements ArchiveService: embed the task brief,
// search the track's shelf, format the top hits for a prompt.
func (a *archiveService) RetrieveTaskResources(ctx context.Context, taskBrief, track string, limit int) (string, error) {
	embedding, err := a.embedder.GenerateEmbedding(ctx, taskBrief)
	if err != nil {
		return "", fmt.Errorf("failed to generate query embedding: %w", err)
	}

	results, err := a.SearchResources(ctx, embedding, track, limit)
	if err != nil {
		return "", err
	}

	return FormatResourceContext(results), nil
}

// FormatResourceContext renders search hits for inclusion in a prompt.
func FormatResourceContext(results []ResourceResult) string {
	if len(results) == 0 {
		return "No relevant resources found."
	}

	var parts []string
	for i, result := range results {
		parts = append(parts, fmt.Sprintf("--- Resource %d (Score: %.2f) ---\n%s",
			i+1, result.Score, strings.TrimSpace(result.Text)))
	}

	return strings.Join(parts, "\n\n")
}
