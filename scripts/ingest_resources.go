package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"wdclabs/ai-office/internal/config"
	"wdclabs/ai-office/internal/services"
)

func main() {
	log.Println("🚀 Starting resource ingestion...")

	// Load configuration
	cfg := config.Load()

	// Initialize services
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	archiveService, err := services.NewArchiveService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
		geminiService,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize resource archive: %v", err)
	}

	if err := archiveService.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	cvParser := services.NewCVParserService()
	chunker := services.NewTextChunker()

	ctx := context.Background()

	resources := []struct {
		Path  string
		Track string
		Name  string
	}{
		{
			Path:  "./reference_docs/data_analytics_handbook.pdf",
			Track: "Data Analytics",
			Name:  "Data Analytics Track Handbook",
		},
		{
			Path:  "./reference_docs/sql_style_guide.pdf",
			Track: "Data Analytics",
			Name:  "SQL Style Guide",
		},
		{
			Path:  "./reference_docs/software_engineering_handbook.pdf",
			Track: "Software Engineering",
			Name:  "Software Engineering Track Handbook",
		},
		{
			Path:  "./reference_docs/code_review_checklist.pdf",
			Track: "Software Engineering",
			Name:  "Code Review Checklist",
		},
		{
			Path:  "./reference_docs/product_design_handbook.pdf",
			Track: "Product Design",
			Name:  "Product Design Track Handbook",
		},
		{
			Path:  "./reference_docs/client_brief_template.pdf",
			Track: "Product Design",
			Name:  "Client Brief Template",
		},
	}

	successCount := 0
	failCount := 0

	for _, res := range resources {
		log.Printf("\n📄 Processing: %s", res.Name)
		log.Printf("   Path: %s", res.Path)
		log.Printf("   Track: %s", res.Track)

		// Check if file exists
		if _, err := os.Stat(res.Path); os.IsNotExist(err) {
			log.Printf("   ⚠️  File not found, skipping...")
			failCount++
			continue
		}

		// Extract text from PDF
		log.Printf("   📖 Extracting text...")
		text, err := cvParser.ExtractText(res.Path)
		if err != nil {
			log.Printf("   ❌ Failed to extract text: %v", err)
			failCount++
			continue
		}

		log.Printf("   ✅ Extracted %d characters", len(text))

		// Chunk the text
		log.Printf("   ✂️  Chunking text...")
		chunks := chunker.ChunkText(text, 1000, 200)
		log.Printf("   ✅ Created %d chunks", len(chunks))

		// Embed and store each chunk
		log.Printf("   🔄 Embedding and storing chunks...")
		for i, chunk := range chunks {
			embedding, err := geminiService.GenerateEmbedding(ctx, chunk)
			if err != nil {
				log.Printf("   ❌ Failed to generate embedding for chunk %d: %v", i+1, err)
				continue
			}

			resourceID := fmt.Sprintf("%s_chunk_%d", strings.ReplaceAll(strings.ToLower(res.Name), " ", "_"), i)

			err = archiveService.UpsertResource(ctx, resourceID, res.Track, chunk, embedding)
			if err != nil {
				log.Printf("   ❌ Failed to store chunk %d: %v", i+1, err)
				continue
			}

			if (i+1)%5 == 0 || i == len(chunks)-1 {
				log.Printf("   📊 Progress: %d/%d chunks stored", i+1, len(chunks))
			}
		}

		log.Printf("   ✅ Successfully ingested %s", res.Name)
		successCount++
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Ingestion Summary:")
	log.Printf("   ✅ Successful: %d resources", successCount)
	log.Printf("   ❌ Failed: %d resources", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		log.Println("⚠️  Some resources failed to ingest. Please check the logs above.")
		os.Exit(1)
	}

	log.Println("✅ All resources ingested successfully!")
}
