package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	fb "firebase.google.com/go/v4"
	"github.com/henripigeon/grade-tracker/internal/firebase"
	"github.com/henripigeon/grade-tracker/internal/types"
	"github.com/patrickmn/go-cache"
	"google.golang.org/api/option"
)

const (
	summaryCacheTTL = 30 * time.Second

	defaultPort          = 8080
	defaultRateLimit     = 120
	defaultWindowSeconds = 60
)

// EntryStore is the persistence surface the handlers need. Satisfied by
// *firebase.Firestore in production and by an in-memory store in tests.
type EntryStore interface {
	CreateEntry(ctx context.Context, entry types.CourseEntry) (string, error)
	UpdateEntry(ctx context.Context, id string, entry types.CourseEntry) error
	DeleteEntry(ctx context.Context, id string) error
	ListEntries(ctx context.Context) ([]types.CourseEntry, error)
}

type Server struct {
	db            EntryStore
	summaryCache  *cache.Cache
	rateLimiter   *RateLimiter
	rateLimit     int
	windowSeconds int
	port          int
}

// New wires a Server around an entry store. Exposed separately from
// NewServer so tests can substitute the store.
func New(db EntryStore, port, rateLimit, windowSeconds int) *Server {
	return &Server{
		db:            db,
		summaryCache:  cache.New(summaryCacheTTL, 5*time.Minute),
		rateLimiter:   NewRateLimiter(),
		rateLimit:     rateLimit,
		windowSeconds: windowSeconds,
		port:          port,
	}
}

func NewServer() *http.Server {
	port := envInt("PORT", defaultPort)
	rateLimit := envInt("RATE_LIMIT", defaultRateLimit)
	windowSeconds := envInt("RATE_WINDOW_SECONDS", defaultWindowSeconds)

	sa := option.WithCredentialsFile(os.Getenv("FIREBASE_CONFIG"))
	app, err := fb.NewApp(context.Background(), nil, sa)
	if err != nil {
		log.Fatalf("error initializing firebase app: %v\n", err)
	}

	db, err := firebase.NewFirestore(context.Background(), app)
	if err != nil {
		log.Fatalf("error initializing firestore: %v\n", err)
	}

	newServer := New(db, port, rateLimit, windowSeconds)
	newServer.rateLimiter.StartCleanup(5 * time.Minute)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", newServer.port),
		Handler:      newServer.RegisterRoutes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

func envInt(name string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(name))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
