package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lshkit/lsh/hash"
)

// digestReader absorbs r into h and finalizes the stream. A positive length
// truncates the digest to that many bytes, zero keeps the full digest.
func digestReader(h hash.Hasher, r io.Reader, length int) (hash.Hash, error) {
	h.Reset()
	if _, err := io.Copy(h, r); err != nil {
		return nil, err
	}
	if length > 0 {
		return h.(hash.TruncatedHasher).TruncatedSumHash(length)
	}
	return h.SumHash(), nil
}

// digestPath hashes the content of the file at path, see digestReader.
func digestPath(h hash.Hasher, path string, length int) (hash.Hash, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return digestReader(h, f, length)
}

// formatSumLine renders one checksum line, either the default
// "<digest>  <file>" form or the BSD-style "<algo> (<file>) = <digest>" form.
func formatSumLine(algo hash.HashingAlgorithm, digest hash.Hash, name string, tagged bool) string {
	if tagged {
		return fmt.Sprintf("%s (%s) = %s", algo, name, digest.Hex())
	}
	return fmt.Sprintf("%s  %s", digest.Hex(), name)
}

// parseSumLine parses one checksum line in either of the forms produced by
// formatSumLine. The returned algorithm is UnknownHashingAlgorithm for the
// default form, which carries no algorithm name.
func parseSumLine(line string) (hash.HashingAlgorithm, string, []byte, error) {
	line = strings.TrimSpace(line)

	if i := strings.Index(line, " ("); i >= 0 {
		j := strings.LastIndex(line, ") = ")
		if j < i {
			return hash.UnknownHashingAlgorithm, "", nil, fmt.Errorf("malformed tagged checksum line %q", line)
		}
		algo, err := hash.ParseHashingAlgorithm(line[:i])
		if err != nil {
			return hash.UnknownHashingAlgorithm, "", nil, err
		}
		digest, err := hex.DecodeString(line[j+4:])
		if err != nil || len(digest) == 0 {
			return hash.UnknownHashingAlgorithm, "", nil, fmt.Errorf("malformed digest in checksum line %q", line)
		}
		return algo, line[i+2 : j], digest, nil
	}

	fields := strings.SplitN(line, " ", 2)
	if len(fields) != 2 {
		return hash.UnknownHashingAlgorithm, "", nil, fmt.Errorf("malformed checksum line %q", line)
	}
	digest, err := hex.DecodeString(fields[0])
	if err != nil || len(digest) == 0 {
		return hash.UnknownHashingAlgorithm, "", nil, fmt.Errorf("malformed digest in checksum line %q", line)
	}
	// the second separator byte is a space in coreutils text mode and an
	// asterisk in binary mode
	name := strings.TrimPrefix(strings.TrimPrefix(fields[1], " "), "*")
	if name == "" {
		return hash.UnknownHashingAlgorithm, "", nil, fmt.Errorf("missing file name in checksum line %q", line)
	}
	return hash.UnknownHashingAlgorithm, name, digest, nil
}
