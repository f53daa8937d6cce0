/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/
package gen

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/unikit/unikit/pkg/errors"
)

// ChecksumFileName is the standard name for checksum files.
const ChecksumFileName = "checksums.txt"

// WriteChecksums creates a checksums.txt in dir containing SHA256
// checksums for the given generated files, with paths written relative
// to dir. It returns the checksum file path.
func WriteChecksums(dir string, files []string) (string, error) {
	sums := make([]string, 0, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInternal,
				fmt.Sprintf("failed to read %s for checksum", file), err)
		}
		hash := sha256.Sum256(data)
		rel, err := filepath.Rel(dir, file)
		if err != nil {
			rel = file
		}
		sums = append(sums, fmt.Sprintf("%s  %s", hex.EncodeToString(hash[:]), rel))
	}

	path := filepath.Join(dir, ChecksumFileName)
	content := strings.Join(sums, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, "failed to write checksums", err)
	}

	slog.Debug("checksums written", "path", path, "file_count", len(sums))
	return path, nil
}
