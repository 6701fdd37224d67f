package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/lyapfrac/internal/sequence"
)

func newSequencesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sequences",
		Short: "list non-periodic A/B control sequences",
		Args:  cobra.NoArgs,
		RunE:  listSequences,
	}
	cmd.Flags().IntVar(&count, "count", 32, "number of sequences to print")
	return cmd
}

func listSequences(cmd *cobra.Command, args []string) error {
	e := sequence.NewEnumerator()
	e.OnSkip = func(s sequence.Skip) {
		log.WithFields(logrus.Fields{
			"candidate": s.Candidate,
			"base":      s.Base,
			"times":     s.Times,
		}).Debug("skipping repetition")
	}

	out := cmd.OutOrStdout()
	for i := 0; i < count; i++ {
		if _, err := fmt.Fprintln(out, e.Next()); err != nil {
			return err
		}
	}
	return nil
}
