package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"stemcheck/internal/corpus"
	"stemcheck/internal/textfile"
)

func newFreqCmd(g *globalFlags) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "freq [corpus files...]",
		Short: "Print corpus word frequencies, most frequent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load(cmd)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = cfg.Corpus
			}
			if len(args) == 0 {
				return errors.New("no corpus files given")
			}
			text, err := textfile.ReadAll(args...)
			if err != nil {
				return err
			}
			idx := corpus.Build(text)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 1, ' ', 0)
			for _, e := range idx.Top(top) {
				fmt.Fprintf(tw, "%s\t%d\n", e.Word, e.Count)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&top, "top", "n", 0, "print only the n most frequent words")
	return cmd
}
