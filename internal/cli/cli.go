// Package cli implements the recipes command-line interface.
//
// Each chapter of the cookbook gets one subcommand that prints that
// chapter's transcript: the numbered steps a reader would type at a
// console, with their actual output. The only live command is follow,
// which tails a file until interrupted.
//
// Logging goes through zap to stderr; --verbose switches it to debug.
// Every run is tagged with a fresh run id so transcripts pasted into bug
// reports can be told apart.
package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// CLI wires the chapter commands to an output stream and a logger.
type CLI struct {
	out     io.Writer
	logger  *zap.Logger
	level   zap.AtomicLevel
	verbose bool
}

// New builds a CLI printing transcripts to out and logging via logger.
// The level handle lets --verbose lower the threshold after flag parsing.
func New(out io.Writer, logger *zap.Logger, level zap.AtomicLevel) *CLI {
	return &CLI{out: out, logger: logger, level: level}
}

// chapter is one runnable transcript.
type chapter struct {
	name  string
	short string
	run   func(c *CLI, dataDir string) error
}

// chapters lists every transcript in reading order.
func chapters() []chapter {
	return []chapter{
		{"numbers", "rounding and numeric formatting", (*CLI).numbersChapter},
		{"decimals", "exact decimal arithmetic", (*CLI).decimalsChapter},
		{"unpack", "sequence destructuring", (*CLI).unpackChapter},
		{"encode", "CSV, JSON, YAML and TOML", (*CLI).encodeChapter},
		{"seqs", "iterators and generators", (*CLI).seqsChapter},
		{"dates", "civil dates and spans", (*CLI).datesChapter},
		{"memoize", "caching pure functions", (*CLI).memoizeChapter},
	}
}

// RootCommand assembles the root cobra command with one subcommand per
// chapter plus all and follow.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "recipes",
		Short:         "Runnable transcripts for the recipes_go cookbook",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.verbose {
				c.level.SetLevel(zap.DebugLevel)
			}
			c.logger.Debug("starting run", zap.String("run_id", uuid.New().String()))
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	var dataDir string
	for _, ch := range chapters() {
		run := ch.run
		cmd := &cobra.Command{
			Use:   ch.name,
			Short: ch.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(c, dataDir)
			},
		}
		root.AddCommand(cmd)
	}
	root.PersistentFlags().StringVar(&dataDir, "data", "examples/data", "directory holding the fixture files")

	root.AddCommand(c.allCommand(&dataDir))
	root.AddCommand(c.followCommand())
	return root
}

// allCommand runs every chapter, or the subset a config file names.
func (c *CLI) allCommand(dataDir *string) *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Print every chapter's transcript",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cfg.DataDir != "" {
				*dataDir = cfg.DataDir
			}

			selected := chapters()
			if len(cfg.Chapters) > 0 {
				selected, err = pick(selected, cfg.Chapters)
				if err != nil {
					return err
				}
			}
			for _, ch := range selected {
				fmt.Fprintf(c.out, "=== %s: %s\n", ch.name, ch.short)
				if err := ch.run(c, *dataDir); err != nil {
					return fmt.Errorf("chapter %s: %w", ch.name, err)
				}
				fmt.Fprintln(c.out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config selecting chapters and data directory")
	return cmd
}

// pick resolves chapter names from config to their transcripts,
// preserving the config order.
func pick(all []chapter, names []string) ([]chapter, error) {
	byName := make(map[string]chapter, len(all))
	for _, ch := range all {
		byName[ch.name] = ch
	}

	selected := make([]chapter, 0, len(names))
	for _, name := range names {
		ch, ok := byName[name]
		if !ok {
			known := make([]string, 0, len(byName))
			for k := range byName {
				known = append(known, k)
			}
			sort.Strings(known)
			return nil, fmt.Errorf("unknown chapter %q, have %v", name, known)
		}
		selected = append(selected, ch)
	}
	return selected, nil
}

func (c *CLI) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *CLI) println(args ...any) {
	fmt.Fprintln(c.out, args...)
}
