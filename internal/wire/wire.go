// Package wire provides dependency injection for the wrk application.
// It creates singleton services with lazy initialization: the workspace is
// resolved once by walking up from the current directory, the store opened
// once, and every command shares the same service instance for the life of
// the process (one command per process).
package wire

import (
	"database/sql"
	"os"
	"sync"

	"github.com/example/wrk/internal/adapters/jsonl"
	"github.com/example/wrk/internal/adapters/sqlite"
	"github.com/example/wrk/internal/agent"
	"github.com/example/wrk/internal/app"
	"github.com/example/wrk/internal/config"
	"github.com/example/wrk/internal/db"
	"github.com/example/wrk/internal/ports/primary"
	"github.com/example/wrk/internal/workspace"
)

var (
	itemService primary.ItemService
	ws          *workspace.Workspace
	cfg         *config.Config
	database    *sql.DB
	initErr     error
	once        sync.Once
)

// ItemService returns the singleton ItemService instance. Fails when no
// workspace exists here or above.
func ItemService() (primary.ItemService, error) {
	once.Do(initServices)
	return itemService, initErr
}

// Workspace returns the resolved workspace.
func Workspace() (*workspace.Workspace, error) {
	once.Do(initServices)
	return ws, initErr
}

// Config returns the workspace configuration.
func Config() (*config.Config, error) {
	once.Do(initServices)
	return cfg, initErr
}

// Identity returns the acting identity for this invocation, resolved from
// the environment and the workspace configuration.
func Identity() (agent.Identity, error) {
	once.Do(initServices)
	if initErr != nil {
		return agent.Identity{}, initErr
	}
	return agent.Current(cfg), nil
}

// Close closes the store connection. Called once from main before exit.
func Close() error {
	if database != nil {
		return database.Close()
	}
	return nil
}

// initServices resolves the workspace and wires the service graph.
// Called once via sync.Once.
func initServices() {
	cwd, err := os.Getwd()
	if err != nil {
		initErr = err
		return
	}

	ws, initErr = workspace.Find(cwd)
	if initErr != nil {
		return
	}

	cfg, initErr = config.Load(ws.Root)
	if initErr != nil {
		return
	}

	database, initErr = db.Open(ws.DBPath())
	if initErr != nil {
		return
	}

	itemRepo := sqlite.NewItemRepository(database)
	interchange := jsonl.NewStore(ws.InterchangePath())
	syncEngine := app.NewSyncEngine(itemRepo, interchange)

	itemService = app.NewItemService(itemRepo, syncEngine)
}
