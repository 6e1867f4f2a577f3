package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/glyphlab/classical"
	"github.com/katalvlaran/glyphlab/gridreader"
	"github.com/katalvlaran/glyphlab/render"
	"github.com/katalvlaran/glyphlab/trigram"
)

const latinLower = "abcdefghijklmnopqrstuvwxyz"

// lineAt returns corpus line idx (0-based) or a readable error.
func lineAt(corpus trigram.Corpus, idx int) (trigram.Sequence, error) {
	if idx < 0 || idx >= corpus.Len() {
		return nil, fmt.Errorf("line %d out of range [0,%d)", idx, corpus.Len())
	}

	return corpus[idx], nil
}

func newDiamondCmd(a *app) *cobra.Command {
	var (
		odd, even               string
		line                    int
		reverseOdd, reverseEven bool
		alphabet                string
	)
	cmd := &cobra.Command{
		Use:   "diamond",
		Short: "Spell a line's diamond values through every drop-one-letter alphabet",
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
				seq, err := lineAt(corpus.Reorder(p[0], p[1]), line)
				if err != nil {
					return err
				}
				values, err := seq.DiamondValues(reverseOdd, reverseEven)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, ">>>>> %s, %s\n", p[0], p[1])
				for _, alph := range classical.DropOneAlphabets(alphabet) {
					s, err := classical.Substitute(values, alph, 1)
					if err != nil {
						return err
					}
					fmt.Fprintln(w, s)
				}
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&odd, "odd", "ABC", "permutations for odd positions")
	f.StringVar(&even, "even", "ABC", "permutations for even positions")
	f.IntVar(&line, "line", 0, "0-based corpus line")
	f.BoolVar(&reverseOdd, "reverse-odd", false, "walk odd positions' digits c,b,a")
	f.BoolVar(&reverseEven, "reverse-even", true, "walk even positions' digits c,b,a")
	f.StringVar(&alphabet, "alphabet", latinLower, "base alphabet; one letter is dropped per output row")

	return cmd
}

func newKeySearchCmd(a *app) *cobra.Command {
	var (
		odd, even string
		line      int
		keys      []string
	)
	cmd := &cobra.Command{
		Use:   "keysearch",
		Short: "Decode a line with UTF-16 text keys at every trigram offset",
		Long: `Each key is encoded as big-endian UTF-16, turned into trigrams at offsets
0..124 and reordered like the corpus. Offsets producing trigrams absent from
the corpus are skipped. The line is decoded through the corpus alphabet and
printed as UTF-16 text next to its index of coincidence.`,
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
			alphabet := corpus.Alphabet()
			w := cmd.OutOrStdout()
			for _, p := range ps {
				seq, err := lineAt(corpus.Reorder(p[0], p[1]), line)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, ">>>>> %s, %s\n", p[0], p[1])
				for _, key := range keys {
					raw, err := render.EncodeUTF16BE(key)
					if err != nil {
						return err
					}
					tried := 0
					for offset := 0; offset < trigram.Order; offset++ {
						k := trigram.FromBytes(raw, offset).Reorder(p[0], p[1])
						if !alphabet.Contains(k) {
							continue
						}
						tried++
						decoded, err := seq.CipherWithAlphabet(k, alphabet, true)
						if err != nil {
							return err
						}
						b := decoded.Bytes(-offset)
						text, err := render.DecodeUTF16BE(b[:len(b)&^1])
						if err != nil {
							return err
						}
						ic, err := decoded.IndexOfCoincidence()
						if err != nil {
							return err
						}
						fmt.Fprintf(w, "FOR KEY %s AND OFFSET %d:\n%.6f > %s\n", key, offset, ic, text)
					}
					a.log.Debug("key searched", "key", key, "pair", p[0].String()+p[1].String(), "offsets", tried)
				}
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&odd, "odd", "all", "permutations for odd positions")
	f.StringVar(&even, "even", "all", "permutations for even positions")
	f.IntVar(&line, "line", 0, "0-based corpus line")
	f.StringSliceVar(&keys, "key", []string{"asabovesobelow", "ASABOVESOBELOW", "AsAboveSoBelow"}, "text keys")

	return cmd
}

func newGridCmd(a *app) *cobra.Command {
	var (
		order                          string
		leftToRight, oddDown, evenDown bool
	)
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the corpus linearised from its message grids",
		Long: `Chunks every message into rows of row_width trigrams and reads them back
in the chosen order: row (as written), reversed (right to left, bottom to top)
or column (column by column with per-parity direction).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			corpus, err := a.loadCorpus()
			if err != nil {
				return err
			}
			r, err := gridreader.New(corpus, a.cfg.GridOptions())
			if err != nil {
				return err
			}
			var out trigram.Corpus
			switch strings.ToLower(order) {
			case "row":
				out = r.RowMajor()
			case "reversed":
				out = r.RowMajorReversed()
			case "column":
				out = r.ColumnMajor(leftToRight, oddDown, evenDown)
			default:
				return fmt.Errorf("unknown order %q (row|reversed|column)", order)
			}
			for _, seq := range out {
				fmt.Fprintln(cmd.OutOrStdout(), seq)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&order, "order", "row", "row|reversed|column")
	f.BoolVar(&leftToRight, "left-to-right", true, "column order: start at the leftmost column")
	f.BoolVar(&oddDown, "odd-down", true, "column order: read columns 1,3,5,... top to bottom")
	f.BoolVar(&evenDown, "even-down", true, "column order: read columns 2,4,6,... top to bottom")

	return cmd
}
