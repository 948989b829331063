// Command verbnet queries a VerbNet corpus and serves it over HTTP.
//
// Query commands open the configured corpus, build its index and print the
// result:
//
//	verbnet classes --lemma put
//	verbnet frames put-9.1-2 --ancestors
//	verbnet show 37.10 -o yaml
//
// Database commands (migrate, import, export) need database.dsn.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/verbnet-reader/internal/app"
	"github.com/heartmarshall/verbnet-reader/internal/config"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// cli holds the persistent flags and the lazily loaded configuration.
type cli struct {
	configPath string
	root       string
	output     string

	cfg *config.Config
}

func rootCmd() *cobra.Command {
	c := &cli{}

	cmd := &cobra.Command{
		Use:   "verbnet",
		Short: "VerbNet lexicon reader",
		Long: `verbnet indexes a VerbNet corpus (a directory of class XML files or
documents imported into PostgreSQL) and answers lookups by lemma, sense id
and class id, including frame expansion along the class hierarchy.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return validateOutput(c.output)
		},
	}

	cmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Config file path (YAML); defaults to CONFIG_PATH or ./config.yaml")
	cmd.PersistentFlags().StringVar(&c.root, "root", "", "Corpus directory; overrides corpus.root")
	cmd.PersistentFlags().StringVarP(&c.output, "output", "o", outputText, "Output format (text, json, yaml)")

	cmd.AddCommand(
		lemmasCmd(c),
		sensesCmd(c),
		classesCmd(c),
		showCmd(c),
		framesCmd(c),
		lemmaFramesCmd(c),
		documentsCmd(c),
		idCmd(c),
		serveCmd(c),
		migrateCmd(c),
		importCmd(c),
		exportCmd(c),
		versionCmd(c),
	)

	return cmd
}

// config loads the configuration once. --root takes precedence over the
// file and the environment.
func (c *cli) config() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	if c.root != "" {
		if err := os.Setenv("CORPUS_ROOT", c.root); err != nil {
			return nil, err
		}
	}

	var (
		cfg *config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.LoadPath(c.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

func (c *cli) logger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return app.NewLoggerTo(cmd.ErrOrStderr(), cfg.Log)
}
