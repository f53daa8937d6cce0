/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/
package gen

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/unikit/unikit/pkg/device"
	"github.com/unikit/unikit/pkg/errors"
)

// MainFileName is the generated primary source file.
const MainFileName = "main.ml"

// RenderMain writes the generated program: a fixed header naming the
// source configuration, then each non-empty fragment in device order
// separated by blank lines.
func RenderMain(w io.Writer, source string, fragments []device.Fragment) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "(* %s: generated by unikit from %s. Do not edit. *)\n", MainFileName, source)
	for _, frag := range fragments {
		if len(frag.Lines) == 0 {
			continue
		}
		fmt.Fprintln(bw)
		for _, line := range frag.Lines {
			fmt.Fprintln(bw, line)
		}
	}
	return bw.Flush()
}

// WriteMain renders the generated program into dir, fully overwriting any
// previous file. It returns the written file path.
func WriteMain(dir, source string, fragments []device.Fragment) (string, error) {
	path := filepath.Join(dir, MainFileName)
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal,
			fmt.Sprintf("failed to create %s", path), err)
	}
	defer f.Close()

	if err := RenderMain(f, source, fragments); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal,
			fmt.Sprintf("failed to write %s", path), err)
	}

	slog.Debug("generated source written", "path", path, "fragments", len(fragments))
	return path, nil
}
