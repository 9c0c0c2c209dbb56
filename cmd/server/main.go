// Package main implements the entry point for the microblog API server,
// a REST backend exposing users, posts, and authentication over
// PostgreSQL.
package main

import (
	"context"
	"flag"
	"log"
)

func main() {
	migrate := flag.Bool("migrate", false, "apply pending database migrations before serving")
	flag.Parse()

	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if *migrate {
		if err := app.runMigrations(); err != nil {
			app.cleanup()
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
