package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"daily-quiz/internal/cache"
	"daily-quiz/internal/config"
	"daily-quiz/internal/domain"
	"daily-quiz/internal/repository/models"
)

// seed_questions loads a JSON file of question documents into the question
// hash for one date. The file holds an array of documents; hash field keys
// are generated as zero-padded ordinals (q01, q02, ...) so the lexicographic
// field order used by the API is the array order.
//
// Usage: seed_questions -date 2024-05-01 -file questions.json
func main() {
	var date, file string
	flag.StringVar(&date, "date", time.Now().Format(domain.DateLayout), "ISO date to seed (YYYY-MM-DD)")
	flag.StringVar(&file, "file", "", "path to a JSON array of question documents")
	flag.Parse()

	if file == "" {
		log.Fatal("Usage: seed_questions -date YYYY-MM-DD -file questions.json")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", file, err)
	}

	var docs []models.QuestionDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		log.Fatalf("Failed to parse %s: %v", file, err)
	}
	if len(docs) == 0 {
		log.Fatal("No question documents found in file")
	}

	// Validate every document before writing anything.
	for i, doc := range docs {
		if _, err := doc.ToDomain(fieldKey(i)); err != nil {
			log.Fatalf("Document %d is invalid: %v", i+1, err)
		}
	}

	client, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	key := cache.QuestionsKey(date)

	for i, doc := range docs {
		encoded, err := json.Marshal(doc)
		if err != nil {
			log.Fatalf("Failed to marshal document %d: %v", i+1, err)
		}
		if err := client.HSet(ctx, key, fieldKey(i), string(encoded)).Err(); err != nil {
			log.Fatalf("Failed to write document %d: %v", i+1, err)
		}
	}

	log.Printf("Seeded %d questions for %s under %s", len(docs), date, key)
}

func fieldKey(i int) string {
	return fmt.Sprintf("q%02d", i+1)
}
