package main

import (
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/verbnet-reader/internal/adapter/postgres/classindex"
	"github.com/heartmarshall/verbnet-reader/internal/app"
	"github.com/heartmarshall/verbnet-reader/internal/metrics"
)

func serveCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return app.Run(ctx, cfg)
		},
	}
}

func migrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			n, err := app.Migrate(cmd.Context(), *cfg, c.logger(cmd, cfg))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "applied %d migrations\n", n)
			return err
		},
	}
}

func importCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "import <corpus-dir>",
		Short: "Copy a directory of class files into the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			n, err := app.Import(cmd.Context(), *cfg, c.logger(cmd, cfg), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d documents\n", n)
			return err
		},
	}
}

func exportCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the lemma, sense and class tables to the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			logger := c.logger(cmd, cfg)
			ctx := cmd.Context()

			lex, err := app.OpenLexicon(ctx, *cfg, logger, metrics.New())
			if err != nil {
				return err
			}
			defer lex.Close()

			counts, err := app.Export(ctx, *cfg, logger, lex)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), c.output, counts, func(w io.Writer) error {
				return printCounts(w, counts)
			})
		},
	}
}

func printCounts(w io.Writer, counts classindex.Counts) error {
	_, err := fmt.Fprintf(w, "classes: %d\nlemma links: %d\nsense links: %d\n",
		counts.Classes, counts.LemmaClasses, counts.SenseClasses)
	return err
}

func versionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := app.Info()
			return render(cmd.OutOrStdout(), c.output, info, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "verbnet version %s\n", info)
				return err
			})
		},
	}
}

