package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/glyphlab/gridreader"
	"github.com/katalvlaran/glyphlab/internal/config"
	"github.com/katalvlaran/glyphlab/internal/logging"
	"github.com/katalvlaran/glyphlab/trigram"
)

// app carries state shared by all subcommands once the root pre-run has
// loaded configuration.
type app struct {
	configPath string
	logLevel   string
	dataFile   string

	cfg *config.Config
	log *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "glyphlab",
		Short: "Analyse trigram corpora and run fractionation ciphers",
		Long: `glyphlab reads messages of trigrams (digit triples in 0..4), computes
frequency and index-of-coincidence statistics under digit permutations,
linearises message grids and runs Trifid-style fractionation ciphers.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(errOut)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "override log level (debug|info|warn|error)")
	pf.StringVar(&a.dataFile, "data", "", "override corpus CSV file")

	root.AddCommand(
		newFreqCmd(a),
		newICCmd(a),
		newProfileCmd(a),
		newDiamondCmd(a),
		newKeySearchCmd(a),
		newGridCmd(a),
		newTrifidCmd(a),
	)

	return root
}

func (a *app) setup(errOut io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.dataFile != "" {
		cfg.DataFile = a.dataFile
	}
	log, err := logging.New(errOut, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log

	return nil
}

// loadCorpus reads the configured CSV file.
func (a *app) loadCorpus() (trigram.Corpus, error) {
	if a.cfg.DataFile == "" {
		return nil, fmt.Errorf("no corpus: set data_file, GLYPHLAB_DATA_FILE or --data")
	}
	f, err := os.Open(a.cfg.DataFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	corpus, err := gridreader.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.cfg.DataFile, err)
	}
	a.log.Debug("corpus loaded", "file", a.cfg.DataFile, "lines", corpus.Len())

	return corpus, nil
}

// permutationFlag resolves "all" or a comma-separated list of permutation names.
func permutationFlag(v string) ([]trigram.Permutation, error) {
	if v == "" || strings.EqualFold(v, "all") {
		return trigram.Permutations(), nil
	}
	var out []trigram.Permutation
	for _, name := range strings.Split(v, ",") {
		p, err := trigram.ParsePermutation(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

// pairs expands odd × even permutation selections in odd-major order.
func pairs(odd, even string) ([][2]trigram.Permutation, error) {
	odds, err := permutationFlag(odd)
	if err != nil {
		return nil, err
	}
	evens, err := permutationFlag(even)
	if err != nil {
		return nil, err
	}
	out := make([][2]trigram.Permutation, 0, len(odds)*len(evens))
	for _, o := range odds {
		for _, e := range evens {
			out = append(out, [2]trigram.Permutation{o, e})
		}
	}

	return out, nil
}
