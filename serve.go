package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"Terrace/internal/api"
	"Terrace/internal/config"
	"Terrace/terrain"
)

// serve runs the HTTP API until ctx is cancelled.
func serve(ctx context.Context, cfg *config.Config, gen *terrain.Generator) error {
	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           api.SetupRoutes(cfg, gen),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s", cfg.ServerAddr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
