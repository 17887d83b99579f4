package cli

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordlelab/internal/httpserver"
	"github.com/robalobadob/wordlelab/internal/logging"
	"github.com/robalobadob/wordlelab/internal/metrics"
	"github.com/robalobadob/wordlelab/internal/session"
	"github.com/robalobadob/wordlelab/internal/words"
)

// newServeCommand creates the "serve" subcommand that runs the HTTP API.
func newServeCommand(opts *Options) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and websocket game server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			logging.Setup(cfg.LogLevel, cfg.LogFormat, os.Stderr)

			cat, err := words.Load(cfg.WordsFile)
			if err != nil {
				return err
			}
			log.Info().Interface("words", cat.Stats()).Msg("word lists loaded")

			rec := metrics.New()
			mgr := session.NewManager(session.NewMemoryStore(), cat, session.Options{
				Strict:        cfg.StrictGuesses,
				DailySalt:     cfg.DailySalt,
				DefaultLength: cfg.DefaultLength,
				Observer:      rec,
			})
			srv := httpserver.New(mgr, cat, rec, httpserver.Options{
				JWTSecret:      cfg.JWTSecret,
				TokenTTL:       cfg.SessionTTL,
				ClientOrigin:   cfg.ClientOrigin,
				SecureCookies:  cfg.Production(),
				RequestTimeout: cfg.RequestTimeout,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go mgr.RunSweeper(ctx, cfg.SessionTTL, cfg.SweepInterval)

			addr := net.JoinHostPort("", cfg.Port)
			log.Info().Str("addr", addr).Str("env", cfg.AppEnv).Msg("starting wordlelab")
			return srv.Run(ctx, addr)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Listen port; overrides PORT")
	return cmd
}
