package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nescoring/nescore/internal/logger"
	"github.com/nescoring/nescore/report"
	"github.com/nescoring/nescore/runner"
	"github.com/nescoring/nescore/score"
)

func main() {
	var (
		refAref      bool
		showSummary  bool
		showDetails  bool
		showCorrect  bool
		iagExpected  int
		iagRequested bool
		openMode     bool
		verbose      bool
	)

	root := &cobra.Command{
		Use:   "nescore [descr] ref-file hyp-file",
		Short: "Named-entity annotation scorer",
		Long:  "Scores a hypothesis named-entity annotation against a reference, reporting Slot Error Rate, precision/recall/F-measure and inter-annotator agreement.",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var descrPath, refPath, hypPath string
			if len(args) == 3 {
				descrPath, refPath, hypPath = args[0], args[1], args[2]
			} else {
				refPath, hypPath = args[0], args[1]
			}

			if !showSummary && !showDetails && !iagRequested {
				showSummary = true
			}

			logger.Init(verbose)

			res, err := runner.Score(runner.Config{
				RefPath:   refPath,
				HypPath:   hypPath,
				DescrPath: descrPath,
				RefIsAref: refAref,
			})
			if err != nil {
				return err
			}

			logger.Info("scored", "reference_entities", res.CountRef, "hypothesis_entities", res.CountHyp, "tags", res.Tags.Len())

			if showDetails {
				report.Detail(cmd.OutOrStdout(), res.Alignment, res.Store, res.Data, res.Tags, res.ErrTypes, refPath, hypPath, showCorrect)
			}
			if showSummary {
				report.Summary(cmd.OutOrStdout(), res.Counts, res.CountRef, res.CountHyp, res.Tags)
			}
			if iagRequested {
				iag := score.ComputeIAG(res.Counts, res.CountRef, res.CountHyp, iagExpected, openMode)
				report.IAGReport(cmd.OutOrStdout(), iag)
			}

			return nil
		},
	}

	root.Flags().BoolVarP(&refAref, "aref", "a", false, `reference is in "aref" format`)
	root.Flags().BoolVarP(&showSummary, "summary", "s", false, "show summary of results (default)")
	root.Flags().BoolVarP(&showDetails, "detail", "d", false, "show detail of errors")
	root.Flags().BoolVarP(&showCorrect, "detail-correct", "c", false, "show detail of errors and corrects")
	root.Flags().IntVarP(&iagExpected, "iag", "i", 0, "show IAG-type values, given the expected entity count")
	root.Flags().BoolVarP(&openMode, "open", "o", false, "open mode: in IAG, there are no confusions")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "print run statistics to stderr")

	root.PreRunE = func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("iag") {
			iagRequested = true
		}
		if showCorrect {
			showDetails = true
		}
		return nil
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var ioErr *runner.IOError
		if errors.As(err, &ioErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
