package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lshkit/lsh/hash"
)

var (
	flagTag    bool
	flagLength int
)

// sumCmd represents a command to compute the digests of files or of the
// standard input
var sumCmd = &cobra.Command{
	Use:   "sum [files]",
	Short: "Compute LSH digests of the given files, or of the standard input",
	Long: `Compute LSH digests of the given files, or of the standard input when no
file is given. One checksum line is printed per input, in a format the check
command accepts.`,
	Run: sum,
}

func init() {
	rootCmd.AddCommand(sumCmd)
	sumCmd.Flags().BoolVar(&flagTag, "tag", false, "print BSD-style tagged checksum lines")
	sumCmd.Flags().IntVar(&flagLength, "length", 0, "truncate each digest to this many bytes (0 keeps the full digest)")
}

func sum(cmd *cobra.Command, args []string) {
	algo, err := hash.ParseHashingAlgorithm(flagAlgorithm)
	if err != nil {
		log.Fatal().Err(err).Msg("could not parse the hashing algorithm")
	}
	h, err := hash.NewHasher(algo)
	if err != nil {
		log.Fatal().Err(err).Msg("could not initialize the hasher")
	}
	if flagLength < 0 || flagLength > h.Size() {
		log.Fatal().Msgf("invalid --length %d for %s, must be between 0 and %d", flagLength, algo, h.Size())
	}

	if len(args) == 0 {
		digest, err := digestReader(h, os.Stdin, flagLength)
		if err != nil {
			log.Fatal().Err(err).Msg("could not read the standard input")
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatSumLine(algo, digest, "-", flagTag))
		return
	}

	for _, path := range args {
		digest, err := digestPath(h, path, flagLength)
		if err != nil {
			log.Fatal().Err(err).Str("file", path).Msg("could not hash file")
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatSumLine(algo, digest, path, flagTag))
	}
}
