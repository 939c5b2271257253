package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	fb "firebase.google.com/go/v4"
	"github.com/henripigeon/grade-tracker/internal/firebase"
	"github.com/henripigeon/grade-tracker/internal/types"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[grade-tracker-seed] note: could not load .env file (%v); continuing with system environment", err)
	}
	log.SetPrefix("[grade-tracker-seed] ")
}

// Loads course entries from a JSON file (SEED_FILE) and bulk-writes them
// into Firestore. Meant for demo and development data.
func main() {
	seedFile := os.Getenv("SEED_FILE")
	if seedFile == "" {
		log.Fatal("SEED_FILE environment variable is required (path to a JSON array of course entries)")
	}

	data, err := os.ReadFile(seedFile)
	if err != nil {
		log.Fatalf("failed to read seed file: %v", err)
	}

	var entries []types.CourseEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Fatalf("failed to parse seed file: %v", err)
	}

	if len(entries) == 0 {
		log.Fatal("seed file contains no entries")
	}

	ctx := context.Background()

	sa := option.WithCredentialsFile(os.Getenv("FIREBASE_CONFIG"))
	app, err := fb.NewApp(ctx, nil, sa)
	if err != nil {
		log.Fatalf("error initializing firebase app: %v", err)
	}

	db, err := firebase.NewFirestore(ctx, app)
	if err != nil {
		log.Fatalf("error initializing firestore: %v", err)
	}
	defer db.Close()

	imported := db.ImportEntries(ctx, entries)
	log.Printf("Imported %d course entries from %s", imported, seedFile)
}
