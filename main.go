package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v9"

	"levantd/pkg/api/handler"
	"levantd/pkg/api/middleware"
	"levantd/pkg/claude"
	"levantd/pkg/gemini"
	"levantd/pkg/logger"
	"levantd/pkg/openai"
	"levantd/pkg/repository"
	"levantd/pkg/service"
	"levantd/pkg/services"
)

type Config struct {
	Addr      string `env:"ADDR" envDefault:":8000"`
	SavesDir  string `env:"SAVES_DIR" envDefault:"saves"`
	StaticDir string `env:"STATIC_DIR" envDefault:"www"`
	SoundsDir string `env:"SOUNDS_DIR" envDefault:"sounds"`
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := runMain(); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

func runMain() error {
	serviceGroup, err := setupServices()
	if err != nil {
		return err
	}

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case s := <-sigCh:
			slog.Info("shutting down due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	return serviceGroup.Run(ctx)
}

func setupServices() (service.Group, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing env config: %w", err)
	}

	savesRepository, err := repository.NewSavesRepository(cfg.SavesDir)
	if err != nil {
		return nil, fmt.Errorf("creating saves repository: %w", err)
	}

	saveService := services.NewSaveService(savesRepository)
	dispatchService := services.NewDispatchService(
		gemini.NewClient(),
		claude.NewClient(),
		openai.NewClient(),
	)

	savesHandler := handler.NewSaves(saveService)
	stateHandler := handler.NewState(saveService)
	generateHandler := handler.NewGenerate(dispatchService)
	musicHandler := handler.NewMusic(cfg.SoundsDir)
	staticHandler := handler.NewStatic(cfg.StaticDir)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/saves", savesHandler.List)
	mux.HandleFunc("DELETE /api/saves/{filename}", savesHandler.Delete)
	mux.HandleFunc("GET /api/state", stateHandler.Load)
	mux.HandleFunc("POST /api/state", stateHandler.Save)
	mux.HandleFunc("POST /api/ai/generate", generateHandler.Generate)
	mux.HandleFunc("GET /api/music-list", musicHandler.List)
	mux.HandleFunc("GET /logo.png", staticHandler.Logo)
	mux.HandleFunc("GET /{$}", staticHandler.Index)

	chain := middleware.CORS(middleware.RequestID(middleware.Logging(mux)))

	return service.Group{
		service.NewHTTPServer(cfg.Addr, chain),
	}, nil
}
