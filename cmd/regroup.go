package cmd

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BobLiterman/SISRS/internal/locus"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// regroupCmd turns the per-species loci files into per-locus FASTA files.
var regroupCmd = &cobra.Command{
	Use:   "regroup [numalleles] [base-directory]",
	Short: "Regroup per-species loci files into per-locus FASTA files",
	Long: `Regroup reads every .fa file in the base directory's loci folder, one per
species, and rewrites the folder as one FASTA file per locus, each holding
that locus' sequence from every species that had one.

Record identifiers are rewritten to the species name (the input file's base
name). With more than one allele, the last two '_' separated fields of each
identifier are treated as allele tags, kept as a suffix on the rewritten
identifier, and dropped from the locus name.

The allele count is taken from the first positional argument when two are
given, or from --alleles otherwise.`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runRegroup,
}

// runRegroup is the Run function of regroupCmd.
func runRegroup(cmd *cobra.Command, args []string) {
	logger := log.New(os.Stderr)
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if len(args) < 1 {
		cmd.Help()
		logger.Fatal("must pass the base directory holding the loci folder")
	}

	alleles, _ := cmd.Flags().GetInt("alleles")
	base := args[0]
	if len(args) == 2 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			cmd.Help()
			logger.Fatal("the allele count must be an integer", "arg", args[0])
		}
		alleles = n
		base = args[1]
	}

	lociDir, _ := cmd.Flags().GetString("loci-dir")
	dir := filepath.Join(base, lociDir)
	if err := locus.Regroup(logger, dir, alleles); err != nil {
		logger.Fatal("regrouping failed", "err", err)
	}
}

// set flags
func init() {
	regroupCmd.Flags().IntP("alleles", "a", 1, "number of allele tags on the tail of each record id")
	regroupCmd.Flags().StringP("loci-dir", "l", "loci", "name of the loci folder under the base directory")
	regroupCmd.Flags().BoolP("verbose", "v", false, "log debug details")

	RootCmd.AddCommand(regroupCmd)
}
