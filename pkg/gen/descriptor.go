/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/
package gen

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/unikit/unikit/pkg/device"
	"github.com/unikit/unikit/pkg/errors"
)

//go:embed templates/descriptor.obuild.tmpl
var descriptorTemplate string

// DescriptorVersion is the fixed version literal stamped into every
// generated descriptor.
const DescriptorVersion = "0.0.0"

// descriptorData is the template input for the build descriptor.
type descriptorData struct {
	Name         string
	Version      string
	MainIs       string
	BuildDepends []string
}

// DescriptorFileName returns the build descriptor file name for a
// package.
func DescriptorFileName(name string) string {
	return name + ".obuild"
}

// RenderDescriptor writes the build descriptor: the format marker, the
// package stanza with the fixed version literal, and one executable
// stanza referencing the generated source file with the full dependency
// list (base dependency first).
func RenderDescriptor(w io.Writer, d *device.Descriptor) error {
	tmpl, err := template.New("descriptor").
		Funcs(template.FuncMap{"join": strings.Join}).
		Parse(descriptorTemplate)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "invalid descriptor template", err)
	}
	return tmpl.Execute(w, descriptorData{
		Name:         d.Name,
		Version:      DescriptorVersion,
		MainIs:       MainFileName,
		BuildDepends: d.BuildDepends(),
	})
}

// WriteDescriptor renders the build descriptor into dir, fully
// overwriting any previous file. It returns the written file path.
func WriteDescriptor(dir string, d *device.Descriptor) (string, error) {
	path := filepath.Join(dir, DescriptorFileName(d.Name))
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal,
			fmt.Sprintf("failed to create %s", path), err)
	}
	defer f.Close()

	if err := RenderDescriptor(f, d); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal,
			fmt.Sprintf("failed to write %s", path), err)
	}

	slog.Debug("build descriptor written", "path", path, "deps", len(d.BuildDepends()))
	return path, nil
}
