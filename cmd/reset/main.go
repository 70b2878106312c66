// Command reset restores the on-device store to its first-run state: the demo
// accounts and the default catalog, with no orders or sessions.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cafex/config"
	"cafex/internal/infra/auth"
	"cafex/internal/infra/persistence"
	"cafex/internal/infra/persistence/kv"
	"cafex/internal/state"
)

func main() {
	path := flag.String("store", "", "path to the sqlite store (defaults to the configured storage path)")
	flag.Parse()

	if err := run(*path); err != nil {
		fmt.Fprintf(os.Stderr, "reset failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("store reset to first-run state")
}

func run(path string) error {
	cfg := config.Defaults()
	if loaded, err := config.New(); err == nil {
		cfg = loaded
	}
	if path == "" {
		path = cfg.Storage.Path
	}
	if path == "" {
		return fmt.Errorf("no store path given and none configured")
	}

	store, err := kv.NewSQLite(path)
	if err != nil {
		return err
	}
	defer store.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := persistence.NewSnapshotRepository(persistence.SnapshotParams{Store: store, Logger: logger})
	hasher := auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)

	ctx := context.Background()
	if err := repo.Wipe(ctx); err != nil {
		return err
	}

	st, err := state.Seed(hasher.Hash)
	if err != nil {
		return err
	}

	return repo.Save(ctx, st)
}
