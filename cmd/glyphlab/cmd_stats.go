package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/glyphlab/render"
	"github.com/katalvlaran/glyphlab/stats"
)

func newFreqCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "freq",
		Short: "Print the trigram frequency table of the corpus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			corpus, err := a.loadCorpus()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), render.FrequencyReport(corpus.Frequencies()))
			return nil
		},
	}
}

func newICCmd(a *app) *cobra.Command {
	var odd, even string
	cmd := &cobra.Command{
		Use:   "ic",
		Short: "Print corpus and per-line index of coincidence for each permutation pair",
		Long: `For every (odd, even) permutation pair, reorders the corpus and prints one
CSV row: odd,even,corpus IC,line 1 IC,line 2 IC,...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			corpus, err := a.loadCorpus()
			if err != nil {
				return err
			}
			ps, err := pairs(odd, even)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, p := range ps {
				reordered := corpus.Reorder(p[0], p[1])
				row := make([]float64, 0, reordered.Len()+1)
				total, err := reordered.IndexOfCoincidence()
				if err != nil {
					return fmt.Errorf("%s,%s: %w", p[0], p[1], err)
				}
				row = append(row, total)
				for i, line := range reordered {
					ic, err := line.IndexOfCoincidence()
					if err != nil {
						return fmt.Errorf("%s,%s line %d: %w", p[0], p[1], i+1, err)
					}
					row = append(row, ic)
				}
				fmt.Fprintf(w, "%s,%s,%s\n", p[0], p[1], render.Floats(row))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&odd, "odd", "all", "permutations for odd positions")
	cmd.Flags().StringVar(&even, "even", "all", "permutations for even positions")

	return cmd
}

func newProfileCmd(a *app) *cobra.Command {
	var odd, even string
	var perLine bool
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Print periodic IC profiles (key lengths 1..max_key_length)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			corpus, err := a.loadCorpus()
			if err != nil {
				return err
			}
			ps, err := pairs(odd, even)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, p := range ps {
				reordered := corpus.Reorder(p[0], p[1])
				profiles, err := reordered.PeriodicProfiles(cmd.Context(), a.cfg.MaxKeyLength, a.cfg.Workers)
				if err != nil {
					return fmt.Errorf("%s,%s: %w", p[0], p[1], err)
				}
				if perLine {
					for i, prof := range profiles {
						fmt.Fprintf(w, "Msg%d,%s,%s,%s\n", i+1, p[0], p[1], render.Floats(prof))
					}
					continue
				}
				fmt.Fprintf(w, "%s,%s,%s\n", p[0], p[1], render.Floats(stats.Mean(profiles)))
			}
			a.log.Debug("profiles done", "pairs", len(ps), "max_key_length", a.cfg.MaxKeyLength)
			return nil
		},
	}
	cmd.Flags().StringVar(&odd, "odd", "all", "permutations for odd positions")
	cmd.Flags().StringVar(&even, "even", "all", "permutations for even positions")
	cmd.Flags().BoolVar(&perLine, "per-line", false, "print one profile per line instead of the mean")

	return cmd
}
