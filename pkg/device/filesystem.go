/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/
package device

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/unikit/unikit/pkg/config"
	"github.com/unikit/unikit/pkg/errors"
)

// Entry is a single embedded filesystem: a directory on disk turned into
// a loadable module by the embedding tool.
type Entry struct {
	// Name comes from the directive key (fs-<name>) and names the
	// generated module.
	Name string
	// Path is the directory path relative to the configuration directory.
	Path string
}

// Filesystem models every fs-<name> directive, in file order. Entries are
// not deduplicated.
type Filesystem struct {
	baseDir string
	Entries []Entry
}

// NewFilesystem derives the filesystem device from its namespaced
// directives. Entry names and paths must not contain whitespace: both
// end up as arguments of an embedding-tool command line that is split
// on spaces. Every referenced directory must exist under baseDir; a
// missing directory is a fatal configuration error, raised before any
// embedding-tool invocation.
func NewFilesystem(pairs []config.KeyValue, baseDir string) (*Filesystem, error) {
	fs := &Filesystem{baseDir: baseDir}
	for _, kv := range pairs {
		if strings.ContainsAny(kv.Key, " \t") || strings.ContainsAny(kv.Value, " \t") {
			return nil, errors.NewWithContext(errors.ErrCodeConfig,
				fmt.Sprintf("filesystem entry %q: name and path must not contain whitespace", kv.Key),
				map[string]any{"entry": kv.Key, "path": kv.Value})
		}
		dir := filepath.Join(baseDir, kv.Value)
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return nil, errors.NewWithContext(errors.ErrCodeConfig,
				fmt.Sprintf("directory %s does not exist", dir),
				map[string]any{"entry": kv.Key, "path": kv.Value})
		}
		fs.Entries = append(fs.Entries, Entry{Name: kv.Key, Path: kv.Value})
	}
	return fs, nil
}

// ModuleFile returns the generated module file name for an entry.
func (e Entry) ModuleFile() string {
	return fmt.Sprintf("fs_%s.ml", e.Name)
}

// moduleName returns the module referenced by the generated open
// statement. Module names are the capitalized form of the file name.
func (e Entry) moduleName() string {
	return fmt.Sprintf("Fs_%s", e.Name)
}

// PreBuildCommands returns one embedding-tool invocation per entry, in
// entry order. The commands are relative to the configuration directory.
func (f *Filesystem) PreBuildCommands() []string {
	cmds := make([]string, 0, len(f.Entries))
	for _, e := range f.Entries {
		cmds = append(cmds, fmt.Sprintf("mir-crunch -o %s -name %s %s", e.ModuleFile(), e.Name, e.Path))
	}
	return cmds
}

// Fragment emits one module-open statement per entry, in entry order.
func (f *Filesystem) Fragment() Fragment {
	frag := Fragment{Name: "filesystem"}
	for _, e := range f.Entries {
		frag.Lines = append(frag.Lines, fmt.Sprintf("open %s", e.moduleName()))
	}
	return frag
}
