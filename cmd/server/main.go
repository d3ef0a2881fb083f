// Command server runs the todo API together with its web client.
//
// Usage:
//
//	server              serve until SIGINT or SIGTERM
//	server healthcheck  probe /health on the configured port (exit 0 = healthy)
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/todo-backend/internal/app"
	"github.com/heartmarshall/todo-backend/internal/config"
	"github.com/heartmarshall/todo-backend/pkg/todoclient"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "healthcheck" {
		if err := healthcheck(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func healthcheck() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	h, err := todoclient.New("http://127.0.0.1:" + strconv.Itoa(cfg.Server.Port)).Health(ctx)
	if err != nil {
		return fmt.Errorf("healthcheck: %w", err)
	}
	if h.Status != "OK" {
		return fmt.Errorf("healthcheck: status %q", h.Status)
	}
	return nil
}
