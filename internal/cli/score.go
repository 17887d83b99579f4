package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordlelab/internal/game"
)

// newScoreCommand creates the "score" subcommand that prints the feedback for a guess.
func newScoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "score <secret> <guess>",
		Short:   "Print the per-letter feedback for a guess against a secret",
		Example: "  wordlelab score apple alley",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := strings.ToLower(args[0])
			guess := strings.ToLower(args[1])
			if _, err := game.NewWithSecret(secret); err != nil {
				return fmt.Errorf("secret %q: %w", args[0], err)
			}
			fb := game.Score(secret, guess)
			if fb == nil {
				return errors.New("secret and guess must have the same length")
			}

			out := cmd.OutOrStdout()
			for i, v := range fb {
				fmt.Fprintf(out, "%s  %s\n", strings.ToUpper(guess[i:i+1]), v)
			}
			return nil
		},
	}
}
