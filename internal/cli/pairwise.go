package cli

import (
	"bytes"
	"fmt"
	"log/slog"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/molecbio/seqalign/fasta"
	"github.com/molecbio/seqalign/pairwise"
	"github.com/molecbio/seqalign/scheme"
	"github.com/molecbio/seqalign/sequence"
)

const pairwiseLongDescription = `Align every pair of records in a FASTA file and print the percent identity
matrix. Alignments run concurrently; bound the pool with --workers.`

// pairwiseCmd represents the pairwise command.
var pairwiseCmd = newPairwiseCmd()

func newPairwiseCmd() *cobra.Command {
	var (
		schemePath string
		clean      bool
	)

	cmd := &cobra.Command{
		Use:   "pairwise FILE",
		Short: "Percent identity matrix over a FASTA file",
		Long:  pairwiseLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := fasta.Open(args[0])
			if err != nil {
				return err
			}
			if clean {
				for i := range records {
					records[i].Seq = sequence.Clean(records[i].Seq)
				}
			}

			opts := pairwise.DefaultOptions()
			opts.Workers = viper.GetInt(workersConfigKey)
			if schemePath != "" {
				s, err := scheme.Load(schemePath)
				if err != nil {
					return err
				}
				if opts.Scoring, err = s.Options(); err != nil {
					return err
				}
			}
			slog.Debug("pairwise run", "records", len(records), "workers", opts.Workers)

			pairs, err := pairwise.All(records, &opts)
			if err != nil {
				return err
			}

			cmd.Print(renderIdentityTable(records, pairs))

			return nil
		},
	}

	cmd.Flags().StringVarP(&schemePath, schemeFlagName, "s", "", "YAML scoring scheme file")
	cmd.Flags().BoolVar(&clean, cleanFlagName, false, "strip non-letters and uppercase records before aligning")
	cmd.Flags().Int(workersFlagName, 0, "maximum concurrent alignments (0 = unbounded)")
	bindFlagToConfig(cmd.Flags().Lookup(workersFlagName), workersConfigKey)

	return cmd
}

// renderIdentityTable renders the symmetric identity matrix with record
// names on both axes, most-similar pair in the footer.
func renderIdentityTable(records []sequence.Sequence, pairs []pairwise.Pair) string {
	matrix := pairwise.IdentityMatrix(pairs, len(records))

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)

	header := make([]string, 0, len(records)+1)
	header = append(header, "")
	for _, rec := range records {
		header = append(header, rec.Name)
	}
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for i, rec := range records {
		row := make([]string, 0, len(records)+1)
		row = append(row, rec.Name)
		for j := range records {
			row = append(row, fmt.Sprintf("%.2f", matrix[i][j]))
		}
		table.Append(row)
	}

	if best, ok := mostSimilar(pairs); ok {
		footer := fmt.Sprintf("best: %s / %s at %.2f%%", best.A.Name, best.B.Name, best.Identity)
		table.SetCaption(true, footer)
	}
	table.Render()

	return buf.String()
}

// mostSimilar picks the highest-identity pair, name order breaking ties so
// output stays stable across runs.
func mostSimilar(pairs []pairwise.Pair) (pairwise.Pair, bool) {
	if len(pairs) == 0 {
		return pairwise.Pair{}, false
	}
	sorted := make([]pairwise.Pair, len(pairs))
	copy(sorted, pairs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Identity != sorted[j].Identity {
			return sorted[i].Identity > sorted[j].Identity
		}
		if sorted[i].A.Name != sorted[j].A.Name {
			return sorted[i].A.Name < sorted[j].A.Name
		}
		return sorted[i].B.Name < sorted[j].B.Name
	})
	return sorted[0], true
}

func init() {
	rootCmd.AddCommand(pairwiseCmd)
}
