package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordlelab/internal/logging"
	"github.com/robalobadob/wordlelab/internal/session"
	"github.com/robalobadob/wordlelab/internal/tui"
	"github.com/robalobadob/wordlelab/internal/words"
)

// newPlayCommand creates the "play" subcommand that runs the terminal game.
func newPlayCommand(opts *Options) *cobra.Command {
	var (
		length  int
		daily   bool
		strict  bool
		logFile string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if length == 0 {
				length = cfg.DefaultLength
			}
			if cmd.Flags().Changed("strict") {
				cfg.StrictGuesses = strict
			}

			// The screen owns the terminal, so logs go to a file or nowhere.
			var logOut io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				logOut = f
			}
			logging.Setup(cfg.LogLevel, cfg.LogFormat, logOut)

			cat, err := words.Load(cfg.WordsFile)
			if err != nil {
				return err
			}
			mgr := session.NewManager(session.NewMemoryStore(), cat, session.Options{
				Strict:        cfg.StrictGuesses,
				DailySalt:     cfg.DailySalt,
				DefaultLength: cfg.DefaultLength,
			})

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("init terminal: %w", err)
			}
			defer screen.Fini()

			mode := session.ModeRandom
			if daily {
				mode = session.ModeDaily
			}
			app := tui.New(screen, mgr, cat.Lengths())
			if err := app.Start(cmd.Context(), length, mode); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return app.Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&length, "length", "n", 0, "Word length (3-6); defaults to DEFAULT_WORD_LENGTH")
	cmd.Flags().BoolVar(&daily, "daily", false, "Play today's puzzle instead of a random word")
	cmd.Flags().BoolVar(&strict, "strict", false, "Only accept guesses from the word list; overrides STRICT_GUESSES")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file while playing")
	return cmd
}
