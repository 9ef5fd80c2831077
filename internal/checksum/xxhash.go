// SPDX-License-Identifier: EPL-2.0

// Package checksum fingerprints recorder files so repeated exports can be matched to their source.
package checksum

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// FileChecksum is the hex encoded xxhash64 of the file at filePath.
func FileChecksum(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer file.Close()

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("failed to hash file %s: %w", filePath, err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// Sum is the hex encoded xxhash64 of data.
func Sum(data []byte) string {
	digest := xxhash.New()
	_, _ = digest.Write(data)

	return hex.EncodeToString(digest.Sum(nil))
}
