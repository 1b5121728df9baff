/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the Warp Calendar Engine server.
  Handles configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Initialize SQLite store
  3. Optionally seed the US federal holiday set
  4. Create API handler with dependencies
  5. Configure HTTP router
  6. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port      HTTP server port (default: 8080)
  -db        SQLite database path (default: calendar.db)
             Use ":memory:" for in-memory database
  -seed-us   Seed the US federal holiday set on startup

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close database connection
  4. Exit

EXAMPLES:
  # Run with file database
  ./server -db="./data/calendar.db"

  # Run with in-memory database, seeded with US federal holidays
  ./server -db=":memory:" -seed-us

  # Run on different port
  ./server -port=3000

ENVIRONMENT:
  No environment variables currently. All config via flags.
  Future: DATABASE_URL, PORT, LOG_LEVEL

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/warp/calendar-engine/api"
	"github.com/warp/calendar-engine/holiday"
	"github.com/warp/calendar-engine/store/sqlite"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "calendar.db", "SQLite database path")
	seedUS := flag.Bool("seed-us", false, "Seed the US federal holiday set on startup")
	flag.Parse()

	// Initialize store
	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	if *seedUS {
		if err := seedDefaults(context.Background(), store); err != nil {
			log.Printf("Warning: Failed to seed default holidays: %v", err)
		}
	}

	// Initialize handler
	handler := api.NewHandler(store)

	// Create router
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on http://localhost:%d", *port)
		log.Printf("📅 API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// seedDefaults writes the US federal holiday set as global holidays,
// skipping any name that already exists.
func seedDefaults(ctx context.Context, store holiday.Store) error {
	existing, err := store.ListHolidays(ctx, "")
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(existing))
	for _, h := range existing {
		seen[h.Name] = true
	}

	for _, h := range holiday.USFederalHolidays() {
		if seen[h.Name] {
			continue
		}
		h.ID = uuid.NewString()
		if err := store.SaveHoliday(ctx, h); err != nil {
			return err
		}
	}
	return nil
}
