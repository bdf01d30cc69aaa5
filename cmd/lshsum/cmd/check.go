package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lshkit/lsh/hash"
)

// checkCmd represents a command to verify digests read from checksum files
var checkCmd = &cobra.Command{
	Use:   "check [sumfiles]",
	Short: "Verify LSH digests read from the given checksum files",
	Long: `Verify LSH digests read from the given checksum files. Lines in the default
format are verified with the variant selected by --algorithm, tagged lines
carry their own variant. Truncated digests are compared against the matching
digest prefix.`,
	Args: cobra.MinimumNArgs(1),
	Run:  check,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func check(cmd *cobra.Command, args []string) {
	defaultAlgo, err := hash.ParseHashingAlgorithm(flagAlgorithm)
	if err != nil {
		log.Fatal().Err(err).Msg("could not parse the hashing algorithm")
	}

	checked := 0
	failed := 0
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			log.Fatal().Err(err).Str("file", path).Msg("could not open checksum file")
		}

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			algo, name, want, err := parseSumLine(line)
			if err != nil {
				log.Fatal().Err(err).Str("file", path).Msg("could not parse checksum file")
			}
			if algo == hash.UnknownHashingAlgorithm {
				algo = defaultAlgo
			}

			checked++
			if verifyFile(algo, name, want) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", name)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: FAILED\n", name)
				failed++
			}
		}
		if err := scanner.Err(); err != nil {
			f.Close()
			log.Fatal().Err(err).Str("file", path).Msg("could not read checksum file")
		}
		f.Close()
	}

	if failed > 0 {
		log.Fatal().Msgf("%d of %d checksums did not match", failed, checked)
	}
	log.Info().Msgf("all %d checksums matched", checked)
}

// verifyFile reports whether the file at name hashes to the wanted digest
// under the given variant. A digest shorter than the variant output is
// compared against the digest prefix of the same length.
func verifyFile(algo hash.HashingAlgorithm, name string, want []byte) bool {
	h, err := hash.NewHasher(algo)
	if err != nil {
		log.Error().Err(err).Str("file", name).Msg("could not initialize the hasher")
		return false
	}
	if len(want) > h.Size() {
		log.Error().Str("file", name).Msgf("digest length %d exceeds the %s output length", len(want), algo)
		return false
	}
	got, err := digestPath(h, name, len(want))
	if err != nil {
		log.Error().Err(err).Str("file", name).Msg("could not hash file")
		return false
	}
	return got.Equal(want)
}
