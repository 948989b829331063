package main

import (
	"fmt"
	"io"
	"iter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/verbnet-reader/internal/app"
	"github.com/heartmarshall/verbnet-reader/internal/format"
	"github.com/heartmarshall/verbnet-reader/internal/metrics"
	"github.com/heartmarshall/verbnet-reader/internal/service/verbnet"
)

// withLexicon opens the configured corpus for the duration of fn.
func (c *cli) withLexicon(cmd *cobra.Command, fn func(lex *app.Lexicon) error) error {
	cfg, err := c.config()
	if err != nil {
		return err
	}
	lex, err := app.OpenLexicon(cmd.Context(), *cfg, c.logger(cmd, cfg), metrics.New())
	if err != nil {
		return err
	}
	defer lex.Close()
	return fn(lex)
}

func lemmasCmd(c *cli) *cobra.Command {
	var classID string
	cmd := &cobra.Command{
		Use:   "lemmas",
		Short: "List lemmas, optionally those declared on one class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withLexicon(cmd, func(lex *app.Lexicon) error {
				lemmas, err := lex.Service.Lemmas(cmd.Context(), classID)
				if err != nil {
					return err
				}
				return renderLines(cmd.OutOrStdout(), c.output, lemmas)
			})
		},
	}
	cmd.Flags().StringVar(&classID, "class", "", "Class id (long or short form)")
	return cmd
}

func sensesCmd(c *cli) *cobra.Command {
	var classID string
	cmd := &cobra.Command{
		Use:   "senses",
		Short: "List WordNet sense ids, optionally those of one class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withLexicon(cmd, func(lex *app.Lexicon) error {
				ids, err := lex.Service.SenseIDs(cmd.Context(), classID)
				if err != nil {
					return err
				}
				return renderLines(cmd.OutOrStdout(), c.output, ids)
			})
		},
	}
	cmd.Flags().StringVar(&classID, "class", "", "Class id (long or short form)")
	return cmd
}

func classesCmd(c *cli) *cobra.Command {
	var q verbnet.ClassQuery
	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List class ids, filtered by at most one of the flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withLexicon(cmd, func(lex *app.Lexicon) error {
				ids, err := lex.Service.ClassIDs(cmd.Context(), q)
				if err != nil {
					return err
				}
				return renderLines(cmd.OutOrStdout(), c.output, ids)
			})
		},
	}
	cmd.Flags().StringVar(&q.Lemma, "lemma", "", "Classes containing the lemma")
	cmd.Flags().StringVar(&q.SenseID, "sense", "", "Classes containing the sense id")
	cmd.Flags().StringVar(&q.DocumentID, "document", "", "Classes defined in the document")
	cmd.Flags().StringVar(&q.ParentClassID, "parent", "", "Direct subclasses of the class")
	cmd.MarkFlagsMutuallyExclusive("lemma", "sense", "document", "parent")
	return cmd
}

func showCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show <class-id|document-id>",
		Short: "Print a class with its subclasses, members, roles and frames",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withLexicon(cmd, func(lex *app.Lexicon) error {
				node, err := lex.Service.Resolve(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), c.output, node, func(w io.Writer) error {
					_, err := fmt.Fprintln(w, format.Class(node))
					return err
				})
			})
		},
	}
}

func framesCmd(c *cli) *cobra.Command {
	var (
		ancestors bool
		limit     int
	)
	cmd := &cobra.Command{
		Use:   "frames <class-id>",
		Short: "Print the frames of a class with its inherited thematic roles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withLexicon(cmd, func(lex *app.Lexicon) error {
				seq, err := lex.Service.CollectFrames(cmd.Context(), args[0], ancestors)
				if err != nil {
					return err
				}
				matches := take(seq, limit)
				return render(cmd.OutOrStdout(), c.output, matches, func(w io.Writer) error {
					for i, m := range matches {
						if i > 0 {
							fmt.Fprintln(w)
						}
						if _, err := fmt.Fprintln(w, format.FrameMatch(m, "")); err != nil {
							return err
						}
					}
					return nil
				})
			})
		},
	}
	cmd.Flags().BoolVar(&ancestors, "ancestors", false, "Include frames declared on ancestor classes")
	cmd.Flags().IntVar(&limit, "limit", 0, "Stop after this many frames (0 = all)")
	return cmd
}

func lemmaFramesCmd(c *cli) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "lemma-frames <lemma>",
		Short: "Print every frame available to a lemma across its classes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withLexicon(cmd, func(lex *app.Lexicon) error {
				seq, err := lex.Service.FramesForLemma(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				matches := take(seq, limit)
				return render(cmd.OutOrStdout(), c.output, matches, func(w io.Writer) error {
					for i, m := range matches {
						if i > 0 {
							fmt.Fprintln(w)
						}
						if _, err := fmt.Fprintf(w, "[%s]\n%s\n", m.ClassID, format.FrameMatch(m.FrameMatch, "")); err != nil {
							return err
						}
					}
					return nil
				})
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Stop after this many frames (0 = all)")
	return cmd
}

func documentsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "documents [class-id...]",
		Short: "List documents, or the documents defining the given classes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withLexicon(cmd, func(lex *app.Lexicon) error {
				var ids []string
				if len(args) > 0 {
					ids = args
				}
				docs, err := lex.Service.DocumentsFor(cmd.Context(), ids)
				if err != nil {
					return err
				}
				return renderLines(cmd.OutOrStdout(), c.output, docs)
			})
		},
	}
}

type idPair struct {
	Long  string `json:"long" yaml:"long"`
	Short string `json:"short" yaml:"short"`
}

func idCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "id <class-id>",
		Short: "Print the long and short forms of a class id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withLexicon(cmd, func(lex *app.Lexicon) error {
				long, err := lex.Service.LongID(args[0])
				if err != nil {
					return err
				}
				short, err := lex.Service.ShortID(long)
				if err != nil {
					return err
				}
				pair := idPair{Long: long, Short: short}
				return render(cmd.OutOrStdout(), c.output, pair, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "%s\t%s\n", pair.Long, pair.Short)
					return err
				})
			})
		},
	}
}

// take drains seq, stopping after limit items when limit > 0.
func take[T any](seq iter.Seq[T], limit int) []T {
	out := []T{}
	for v := range seq {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, v)
	}
	return out
}
