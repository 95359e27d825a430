package bootstrap

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fulldump/box"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fulldump/inceptionpool/api"
	"github.com/fulldump/inceptionpool/configuration"
	"github.com/fulldump/inceptionpool/database"
	"github.com/fulldump/inceptionpool/service"
)

var VERSION = "dev"

// Handler builds the whole http stack for a database.
func Handler(c *configuration.Configuration, db *database.Database) http.Handler {

	b := api.Build(service.NewService(db), VERSION, c.ApiKey, c.ApiSecret)
	if c.EnableCompression {
		b.WithInterceptors(api.Compression)
	}
	b.WithInterceptors(
		api.AccessLog(zerolog.New(os.Stdout).With().Timestamp().Str("log", "access").Logger()),
		api.PrettyErrorInterceptor,
		api.RecoverFromPanic,
		api.InterceptorUnavailable(db),
	)

	return box.Box2Http(b)
}

func Bootstrap(c *configuration.Configuration) (start, stop func()) {

	db := database.NewDatabase(&database.Config{
		MaxPoolSize: c.MaxPoolSize,
	})

	s := &http.Server{
		Addr:    c.HttpAddr,
		Handler: Handler(c, db),
	}

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", c.HttpAddr).Msg("listen")
	}
	log.Info().Str("addr", ln.Addr().String()).Bool("https", c.HttpsEnabled).Msg("listening")

	stopOnce := &sync.Once{}
	stop = func() {
		stopOnce.Do(func() {
			db.Stop()
			err := s.Shutdown(context.Background())
			if err != nil {
				log.Error().Err(err).Msg("shutdown")
			}
		})
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		for {
			sig := <-signalChan
			log.Info().Str("signal", sig.String()).Msg("signal received")
			stop()
		}
	}()

	start = func() {

		wg := &sync.WaitGroup{}

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := db.Start()
			if err != nil {
				log.Error().Err(err).Msg("database")
			}
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			var err error
			if c.HttpsEnabled {
				err = s.ServeTLS(ln, c.CertFile, c.KeyFile)
			} else {
				err = s.Serve(ln)
			}
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("http server")
			}
		}()

		wg.Wait()
	}

	return
}
