package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/numwords/internal/config"
	"github.com/numwords/internal/debug"
	"github.com/numwords/internal/lexicon"
	"github.com/numwords/internal/normalize"
	"github.com/numwords/internal/numwords"
)

// app carries the flag values and the codec built from them.
type app struct {
	settings config.Settings
	codec    *numwords.Codec
}

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
	}

	if err := newRootCmd(config.Load()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(settings config.Settings) *cobra.Command {
	a := &app{settings: settings}

	rootCmd := &cobra.Command{
		Use:           "numwords",
		Short:         "Convert between numbers and English number words",
		Long:          `Formats integers and decimals as English words and parses them back, correcting one spelling mistake per word.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadCodec(cmd.Context())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.settings.LexiconFile, "lexicon", settings.LexiconFile, "lexicon file (.json, .yaml, .toml)")
	flags.StringVar(&a.settings.LexiconDSN, "dsn", settings.LexiconDSN, "Postgres DSN of the number_word table")
	flags.BoolVar(&a.settings.Debug, "debug", settings.Debug, "print debug output")

	rootCmd.AddCommand(a.createFormatCmd())
	rootCmd.AddCommand(a.createParseCmd())
	rootCmd.AddCommand(a.createFormatDecimalCmd())
	rootCmd.AddCommand(a.createParseDecimalCmd())
	rootCmd.AddCommand(a.createCorrectCmd())
	rootCmd.AddCommand(a.createLexiconCmd())

	return rootCmd
}

func (a *app) loadCodec(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	done := debug.DebugTiming(a.settings.Debug, "loading lexicon")
	lex, source, err := lexicon.Resolve(ctx, a.settings.LexiconFile, a.settings.LexiconDSN)
	done()
	if err != nil {
		return fmt.Errorf("loading lexicon: %w", err)
	}

	debug.DebugOutput(a.settings.Debug, "lexicon source: %s", source)
	a.codec = numwords.New(lex)
	return nil
}

// createFormatCmd creates the format subcommand
func (a *app) createFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format [integer]...",
		Short: "Spell out integers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				n, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("%q is not a 64-bit integer", arg)
				}
				words, err := a.codec.FormatInt(n)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), words)
			}
			return nil
		},
	}
}

// createParseCmd creates the parse subcommand
func (a *app) createParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [words]...",
		Short: "Read a number name as an integer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if a.settings.Debug {
				normalize.TokensDebug(true, text)
			}

			n, err := a.codec.ParseInt(text)
			if err != nil {
				return err
			}
			debug.DebugOutput(a.settings.Debug, "%q -> %d", text, n)
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

// createFormatDecimalCmd creates the format-decimal subcommand
func (a *app) createFormatDecimalCmd() *cobra.Command {
	precision := a.settings.Precision

	cmd := &cobra.Command{
		Use:   "format-decimal [number]...",
		Short: "Spell out decimals digit by digit after the point",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("%q is not a number", arg)
				}
				words, err := a.codec.FormatDecimal(v, precision)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), words)
			}
			return nil
		},
	}
	cmd.Flags().Uint8VarP(&precision, "precision", "p", precision, "fractional digits")
	return cmd
}

// createParseDecimalCmd creates the parse-decimal subcommand
func (a *app) createParseDecimalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse-decimal [words]...",
		Short: "Read a number name with an optional point",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.codec.ParseDecimal(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'f', -1, 64))
			return nil
		},
	}
}

// createCorrectCmd creates the correct subcommand
func (a *app) createCorrectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "correct [words]...",
		Short: "Rewrite misspelled number words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			corrected, corrections := a.codec.Canonicalize(strings.Join(args, " "))
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, corrected)
			for _, c := range corrections {
				fmt.Fprintf(out, "  %s -> %s (distance %d)\n", c.Original, c.Corrected, c.Distance)
			}
			return nil
		},
	}
}

// createLexiconCmd creates the lexicon subcommand
func (a *app) createLexiconCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lexicon",
		Short: "List the active number words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lex := a.codec.Lexicon()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "WORD\tROLE\tMULTIPLIER\tINCREMENT")
			for _, e := range lex.Entries() {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", e.Word, e.Role, e.Multiplier, e.Increment)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			stats := lex.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d words, largest scale %d\n", stats.Words, stats.MaxScale)
			return nil
		},
	}
}
