package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mcdev12/fantasyetl/go/internal/dbconfig"
)

// Applies the standings schema so the database sink can be enabled.
func main() {
	schema, err := os.ReadFile("go/internal/standings/db/schema.sql")
	if err != nil {
		fmt.Fprintf(os.Stderr, "read schema: %v\n", err)
		os.Exit(1)
	}

	cfg := dbconfig.NewConfigFromEnv()
	pool, err := cfg.Connect(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(context.Background(), string(schema)); err != nil {
		fmt.Fprintf(os.Stderr, "apply schema: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("applied standings schema to %s\n", cfg.Database)
}
