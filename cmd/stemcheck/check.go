package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"stemcheck/internal/engine"
	"stemcheck/internal/report"
	"stemcheck/internal/textfile"
)

type checkFlags struct {
	json  bool
	raw   bool
	limit int
}

func newCheckCmd(g *globalFlags) *cobra.Command {
	var f checkFlags
	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Check files, or stdin when none are given, and print suspected misspellings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, g, f, args)
		},
	}
	cmd.Flags().BoolVar(&f.json, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&f.raw, "raw", false, "print every record in stream order")
	cmd.Flags().IntVarP(&f.limit, "limit", "n", 0, "stop after this many records")
	return cmd
}

func runCheck(cmd *cobra.Command, g *globalFlags, f checkFlags, args []string) error {
	cfg, err := g.load(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	e, err := engine.New(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer e.Close()

	recs, err := e.Check(text, f.limit)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	out := cmd.OutOrStdout()
	if f.raw {
		return report.WriteRecords(out, recs)
	}
	agg := report.NewAggregator()
	for _, r := range recs {
		agg.Add(r)
	}
	if f.json {
		return agg.Report().WriteJSON(out)
	}
	return agg.Report().WriteText(out)
}

func readInput(stdin io.Reader, paths []string) (string, error) {
	if len(paths) > 0 {
		return textfile.ReadAll(paths...)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
