package cli

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/molecbio/seqalign/fasta"
	"github.com/molecbio/seqalign/internal/render"
	"github.com/molecbio/seqalign/nw"
	"github.com/molecbio/seqalign/scheme"
	"github.com/molecbio/seqalign/sequence"
)

const alignLongDescription = `Align two sequences globally and print the alignment with a match midline
('|' match, '.' mismatch, ' ' gap) plus the score and percent identity.

Sequences come from the two positional arguments, or from the first two
records of --fasta FILE. Scoring defaults can be overridden per flag or
loaded from a --scheme YAML file (flags win over the file).`

// errNeedTwoSequences rejects invocations without a usable sequence pair.
var errNeedTwoSequences = errors.New("cli: need two sequences (arguments or --fasta with two records)")

// alignCmd represents the align command.
var alignCmd = newAlignCmd()

func newAlignCmd() *cobra.Command {
	var (
		fastaPath  string
		schemePath string
		clean      bool
	)

	cmd := &cobra.Command{
		Use:   "align [seqA seqB]",
		Short: "Align two sequences",
		Long:  alignLongDescription,
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seqA, seqB, err := resolveInputs(args, fastaPath)
			if err != nil {
				return err
			}
			if clean {
				seqA.Seq = sequence.Clean(seqA.Seq)
				seqB.Seq = sequence.Clean(seqB.Seq)
			}

			opts, err := resolveScoring(cmd, schemePath)
			if err != nil {
				return err
			}
			slog.Debug("aligning",
				"seqA", seqA.Name, "lenA", len(seqA.Seq),
				"seqB", seqB.Name, "lenB", len(seqB.Seq),
				"match", opts.Match, "mismatch", opts.Mismatch, "gap", opts.Gap)

			res, err := nw.Align(seqA.Seq, seqB.Seq, &opts)
			if err != nil {
				return err
			}

			r := render.New(viper.GetInt(wrapConfigKey), isTTY(os.Stdout))
			cmd.Print(r.Alignment(res.AlignedA, res.AlignedB, opts.GapSymbol))
			cmd.Printf("score: %d\n", res.Score)
			if id, err := sequence.Identity(res.AlignedA, res.AlignedB); err == nil {
				cmd.Printf("identity: %.2f%%\n", id)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&fastaPath, fastaFlagName, "f", "", "FASTA file providing the first two records (\"-\" for stdin)")
	cmd.Flags().StringVarP(&schemePath, schemeFlagName, "s", "", "YAML scoring scheme file")
	cmd.Flags().BoolVar(&clean, cleanFlagName, false, "strip non-letters and uppercase inputs before aligning")
	cmd.Flags().IntP(wrapFlagName, "w", render.DefaultWrap, "output columns per alignment row")
	bindFlagToConfig(cmd.Flags().Lookup(wrapFlagName), wrapConfigKey)

	cmd.Flags().IntP(matchFlagName, "m", nw.DefaultMatch, "score for aligning two equal symbols")
	bindFlagToConfig(cmd.Flags().Lookup(matchFlagName), matchConfigKey)
	cmd.Flags().IntP(mismatchFlagName, "x", nw.DefaultMismatch, "score for aligning two differing symbols")
	bindFlagToConfig(cmd.Flags().Lookup(mismatchFlagName), mismatchConfigKey)
	cmd.Flags().IntP(gapFlagName, "g", nw.DefaultGap, "score per gap symbol introduced")
	bindFlagToConfig(cmd.Flags().Lookup(gapFlagName), gapConfigKey)

	return cmd
}

// resolveInputs picks the sequence pair from positional args or a FASTA
// file; the two sources are mutually exclusive, arguments winning.
func resolveInputs(args []string, fastaPath string) (sequence.Sequence, sequence.Sequence, error) {
	if len(args) == 2 {
		return sequence.Sequence{Name: "seqA", Seq: args[0]},
			sequence.Sequence{Name: "seqB", Seq: args[1]}, nil
	}
	if fastaPath == "" {
		return sequence.Sequence{}, sequence.Sequence{}, errNeedTwoSequences
	}

	records, err := fasta.Open(fastaPath)
	if err != nil {
		return sequence.Sequence{}, sequence.Sequence{}, err
	}
	if len(records) < 2 {
		return sequence.Sequence{}, sequence.Sequence{}, errNeedTwoSequences
	}
	return records[0], records[1], nil
}

// resolveScoring layers the scoring sources. The bound viper keys already
// resolve changed flags over env over config file over flag defaults; the
// scheme file slots in between, overriding everything but changed flags.
func resolveScoring(cmd *cobra.Command, schemePath string) (nw.Options, error) {
	opts := nw.DefaultOptions()
	opts.Match = viper.GetInt(matchConfigKey)
	opts.Mismatch = viper.GetInt(mismatchConfigKey)
	opts.Gap = viper.GetInt(gapConfigKey)

	if schemePath != "" {
		s, err := scheme.Load(schemePath)
		if err != nil {
			return nw.Options{}, err
		}
		fromScheme, err := s.Options()
		if err != nil {
			return nw.Options{}, err
		}
		opts.GapSymbol = fromScheme.GapSymbol
		if !cmd.Flags().Changed(matchFlagName) {
			opts.Match = fromScheme.Match
		}
		if !cmd.Flags().Changed(mismatchFlagName) {
			opts.Mismatch = fromScheme.Mismatch
		}
		if !cmd.Flags().Changed(gapFlagName) {
			opts.Gap = fromScheme.Gap
		}
	}
	return opts, nil
}

func init() {
	rootCmd.AddCommand(alignCmd)
}
