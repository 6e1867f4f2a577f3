package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/glyphlab/fractionation"
)

const felixAlphabet = "FELIXMARDSTBCGHJKNOPQUVWYZ+"

type trifidFlags struct {
	layers, size int
	alphabet     string
	fill         string
	group        int
	line         int
}

func (tf *trifidFlags) fractionator() (*fractionation.Fractionator, error) {
	var order fractionation.FillOrder
	switch strings.ToLower(tf.fill) {
	case "layer":
		order = fractionation.LayerMajor
	case "row":
		order = fractionation.RowMajorAcrossLayers
	default:
		return nil, fmt.Errorf("unknown fill %q (layer|row)", tf.fill)
	}

	return fractionation.New(tf.layers, tf.size, tf.alphabet, order)
}

func newTrifidCmd(a *app) *cobra.Command {
	tf := &trifidFlags{}
	cmd := &cobra.Command{
		Use:   "trifid",
		Short: "Encode or decode with a fractionation (Trifid) cipher",
	}
	pf := cmd.PersistentFlags()
	pf.IntVar(&tf.layers, "layers", 3, "cube layers")
	pf.IntVar(&tf.size, "size", 3, "layer side length")
	pf.StringVar(&tf.alphabet, "alphabet", felixAlphabet, "cube alphabet (layers·size² symbols)")
	pf.StringVar(&tf.fill, "fill", "layer", "cube fill order: layer|row")
	pf.IntVar(&tf.group, "group", 0, "group size (0 = whole message)")
	pf.IntVar(&tf.line, "line", -1, "use corpus line N as trigram coordinates instead of a text argument")

	cmd.AddCommand(
		newTrifidRunCmd(a, tf, "encode", false),
		newTrifidRunCmd(a, tf, "decode", true),
	)

	return cmd
}

func newTrifidRunCmd(a *app, tf *trifidFlags, name string, decode bool) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [message]",
		Short: strings.ToUpper(name[:1]) + name[1:] + " a message",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := tf.fractionator()
			if err != nil {
				return err
			}

			var out string
			if tf.line >= 0 {
				corpus, err := a.loadCorpus()
				if err != nil {
					return err
				}
				seq, err := lineAt(corpus, tf.line)
				if err != nil {
					return err
				}
				group := tf.group
				if group == 0 {
					group = len(seq)
				}
				if decode {
					out, err = f.DecodeTrigrams(seq, group)
				} else {
					out, err = f.EncodeTrigrams(seq, group)
				}
				if err != nil {
					return err
				}
			} else {
				if len(args) != 1 {
					return fmt.Errorf("%s needs a message argument or --line", name)
				}
				group := tf.group
				if group == 0 {
					group = len([]rune(args[0]))
				}
				if decode {
					out, err = f.Decode(args[0], group)
				} else {
					out, err = f.Encode(args[0], group)
				}
				if err != nil {
					return err
				}
			}

			a.log.Debug("trifid", "mode", name, "layers", tf.layers, "size", tf.size, "fill", tf.fill)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
