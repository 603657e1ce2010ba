package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getawaygame/getaway/pkg/collisions"
	"github.com/getawaygame/getaway/pkg/config"
	"github.com/getawaygame/getaway/pkg/game"
	"github.com/getawaygame/getaway/pkg/game/types"
	"github.com/getawaygame/getaway/pkg/input"
	"github.com/getawaygame/getaway/pkg/log"
	"github.com/getawaygame/getaway/pkg/queue"
	"github.com/getawaygame/getaway/pkg/repositories"
	"github.com/getawaygame/getaway/pkg/state"
	"github.com/getawaygame/getaway/pkg/version"
	"github.com/getawaygame/getaway/pkg/workers"
)

func main() {
	configDir := flag.String("config-dir", ".", "Directory to look for the config file in")
	logLevel := flag.String("log-level", "", "Log level, overrides the config file")
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}
	log.SetDefaultLogger(log.New(os.Stdout, parsedLogLevel))
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting getaway version %s", version.Get())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repository, err := newRepository(ctx, cfg)
	if err != nil {
		panic(fmt.Sprintf("Failed to create repository: %v", err))
	}
	defer repository.Close(ctx)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cityMap := collisions.NewCityMap(seed)
	gameState := types.NewGameState(cityMap.Space)

	intentQueue := queue.NewInMemoryQueue(1000)
	stateManager := state.NewInMemoryManager()

	saveRequestChan := make(chan workers.SaveSnapshotRequest, 10)
	noticeChan := make(chan string, 10)
	saveWorker := workers.NewSaveWorker(workers.NewSaveWorkerOptions{
		Repository: repository,
		Requests:   saveRequestChan,
		Notices:    noticeChan,
	})
	go saveWorker.Start(ctx)

	gameLoopInterval := time.Second / time.Duration(cfg.TickRate)
	mapper := input.NewMapper(intentQueue)
	go mapper.Run(ctx, gameLoopInterval)
	go readStdinKeys(ctx, mapper)

	gameManager := game.NewGameManager(game.NewGameManagerOptions{
		IntentQueue:      intentQueue,
		Repository:       repository,
		GameState:        gameState,
		CityMap:          cityMap,
		StateManager:     stateManager,
		SaveRequestChan:  saveRequestChan,
		NoticeChan:       noticeChan,
		GameLoopInterval: gameLoopInterval,
		Seed:             seed,
	})

	log.Info("Starting game manager")
	if err := gameManager.Start(ctx); err != nil {
		log.Error("Game manager stopped: %v", err)
	}
}

func newRepository(ctx context.Context, cfg *config.Config) (repositories.Repository, error) {
	switch cfg.Repository {
	case "file":
		return repositories.NewFileRepository(repositories.DefaultSavePath), nil
	case "sqlite":
		return repositories.NewSQLiteRepository(ctx, cfg.SQLitePath)
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("databaseUrl must be set for the postgres repository")
		}
		return repositories.NewPostgresRepository(ctx, cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown repository type: %s", cfg.Repository)
	}
}

// readStdinKeys feeds line-based key taps into the mapper so the core
// stays playable without a graphical frontend attached. Each line is a
// key name; movement keys are treated as short taps.
func readStdinKeys(ctx context.Context, mapper *input.Mapper) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		key := scanner.Text()
		if key == "" {
			continue
		}
		mapper.HandleKey(input.KeyEvent{Key: key, Down: true})
		// hold long enough for at least one flush to see the key
		time.Sleep(50 * time.Millisecond)
		mapper.HandleKey(input.KeyEvent{Key: key, Down: false})
	}
	if err := scanner.Err(); err != nil {
		log.Error("Failed to read stdin: %v", err)
	}
}
