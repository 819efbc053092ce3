package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/annberg/bookmart/internal/backend"
	"github.com/annberg/bookmart/internal/cart"
	"github.com/annberg/bookmart/internal/config"
	"github.com/annberg/bookmart/internal/logger"
	"github.com/annberg/bookmart/internal/server"
	"github.com/annberg/bookmart/internal/storage"
)

func main() {
	cfg, err := config.ReadConfig()
	if err != nil {
		log.Fatal(err)
	}
	log := logger.Get(cfg.Debug)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		<-c

		log.Debug().Msg("ctx cancel; catch os signal")
		cancel()
	}()

	log.Debug().Any("cfg", cfg).Send()

	var stor cart.Storage
	if err = storage.Migrations(cfg.DBDsn, cfg.MigratePath); err != nil {
		log.Error().Err(err).Msg("migrations failed")
	}
	stor, err = storage.NewDB(context.TODO(), cfg.DBDsn)
	if err != nil {
		log.Error().Err(err).Msg("connecting to data base failed, falling back to memory")
		stor = storage.New()
	}

	gateway := backend.NewClient(cfg.BackendURL)
	serv := server.New(*cfg, gateway, cart.NewStore(stor))
	group, gCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return serv.Run(gCtx)
	})
	group.Go(func() error {
		log.Debug().Msg("error chan listener started")
		defer log.Debug().Msg("error chan listener - end")
		return <-serv.ErrChan
	})
	group.Go(func() error {
		<-gCtx.Done()
		return serv.ShutdownServer()
	})

	if err = group.Wait(); err != nil {
		log.Info().Str("stopping reason", err.Error()).Msg("server stopped")
		return
	}
	log.Info().Msg("server stopped")
}
