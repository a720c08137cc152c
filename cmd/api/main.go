package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/marcelsud/library-api/author"
	authorpg "github.com/marcelsud/library-api/author/postgres"
	"github.com/marcelsud/library-api/book"
	bookpg "github.com/marcelsud/library-api/book/postgres"
	"github.com/marcelsud/library-api/config"
	"github.com/marcelsud/library-api/internal/http/chi"
	"github.com/marcelsud/library-api/metrics"
	"github.com/marcelsud/library-api/postgres"
)

const TIMEOUT = 30 * time.Second

/* main is the entry and exit door of the application: it wires the
 * configuration, the storage layer, the services and the HTTP layer
 * together, and owns the process lifecycle. Imports point only
 * downwards: the binary imports the business layers, which import the
 * storage layer.
 */
func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	db, err := postgres.OpenWithPoolConfig(
		cfg.DatabaseURL,
		cfg.DBMaxOpenConns,
		cfg.DBMaxIdleConns,
		cfg.DBConnMaxLifeMinutes,
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer db.Close()

	authorService := author.NewService(authorpg.NewRepository(db))
	bookService := book.NewService(bookpg.NewRepository(db))

	exporter, err := metrics.NewOTelExporter(metrics.NewPostgresCollector(db))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer exporter.Shutdown(context.Background())

	r := chi.Handlers(ctx, authorService, bookService, exporter)
	srv := &http.Server{
		ReadTimeout:  TIMEOUT,
		WriteTimeout: TIMEOUT,
		Addr:         ":" + cfg.Port,
		Handler:      r,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)
	fmt.Printf("Listening on port %s\n", cfg.Port)
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		fmt.Println(err)
		return
	}
	err = <-errShutdown
	if err != nil {
		fmt.Println(err)
		return
	}
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		fmt.Printf("\nShutting down server...\n")
		errShutdown <- nil
	default:
		errShutdown <- fmt.Errorf("forcing closing the server")
	}
}
