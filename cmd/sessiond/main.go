// cmd/sessiond/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-party-arcade/internal/config"
	"go-party-arcade/internal/session"
)

func main() {
	envFile := flag.String("env", ".env", "environment file with PORT and CLIENT_ORIGIN")
	flag.Parse()

	if err := config.LoadEnv(*envFile); err != nil {
		log.Fatal(err)
	}
	port := config.Env("PORT", "3001")
	origin := config.Env("CLIENT_ORIGIN", "*")

	logger := log.New(os.Stderr, "sessiond ", log.LstdFlags)
	hub := session.NewHub()
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           session.NewServer(hub, session.ServerConfig{AllowedOrigin: origin, Logger: logger}).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			logger.Printf("shutdown: %v", err)
		}
	}()

	logger.Printf("server listening on %s (origin %s)", srv.Addr, origin)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("server failed: %v", err)
	}
}
