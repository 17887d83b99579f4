package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordlelab/internal/words"
)

// newWordsCommand creates the "words" subcommand that summarises the catalog.
func newWordsCommand(opts *Options) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "words",
		Short: "Show how many words are available per length",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("file") {
				cfg, err := loadConfig(opts)
				if err != nil {
					return err
				}
				file = cfg.WordsFile
			}
			cat, err := words.Load(file)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "LENGTH\tWORDS")
			for _, n := range cat.Lengths() {
				fmt.Fprintf(tw, "%d\t%d\n", n, cat.Count(n))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Word list override (YAML or text); defaults to WORDS_FILE")
	return cmd
}
