package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/five82/pantry/internal/app"
)

var errNoTTY = errors.New("pantry needs an interactive terminal")

// isTerminal is swapped out in tests.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func newRootCmd() *cobra.Command {
	var opts app.Options
	cmd := &cobra.Command{
		Use:   "pantry",
		Short: "Browse and search recipes from the terminal",
		Long: "pantry is a terminal recipe browser. Type / to search; suggestions appear\n" +
			"after three characters and the grid follows the search once you pause.",
		Example:       "  pantry\n  pantry --demo\n  pantry --search pizza --poll 30s",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return errNoTTY
			}
			return app.Run(cmd.Context(), opts)
		},
	}
	bindFlags(cmd.Flags(), &opts)
	return cmd
}

func bindFlags(fs *pflag.FlagSet, opts *app.Options) {
	fs.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/pantry/config.toml)")
	fs.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/pantry/prefs.toml)")
	fs.StringVar(&opts.ShoppingPath, "shopping", "", "shopping list file (default ~/.local/share/pantry/shopping.yaml)")
	fs.DurationVar(&opts.PollEvery, "poll", 0, "navbar refresh interval (default 15s)")
	fs.StringVarP(&opts.Search, "search", "s", "", "start with this search term")
	fs.BoolVar(&opts.Demo, "demo", false, "browse the bundled demo catalog instead of the API")
	fs.BoolVar(&opts.Debug, "debug", false, "write debug entries to the log file")
	fs.SortFlags = false
}
