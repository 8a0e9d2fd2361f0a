// Copyright 2023 StreamNative, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package persistence stores a cluster's dynamic configuration as a flat
// property file, one canonical expression per line, the way the teacher's
// coordinator/impl.metadataProviderFile stores cluster status as a single
// locked JSON file: PropertyFile borrows the same lock-around-read-modify-
// write shape, swapping JSON for the expression grammar's own textual form.
package persistence

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/juju/fslock"
	"github.com/pkg/errors"

	"github.com/clusterconf/dynamic-config/config"
)

// PropertyFile reads and writes a cluster's configuration expressions as a
// flat text file, one expression per line, guarding writes with a file
// lock so two writers never interleave their updates.
type PropertyFile struct {
	path   string
	lock   *fslock.Lock
	parser *config.Parser
}

// New builds a PropertyFile at path, parsing lines against catalog.
func New(path string, catalog *config.Catalog) *PropertyFile {
	return &PropertyFile{
		path:   path,
		lock:   fslock.New(path),
		parser: config.NewParser(catalog),
	}
}

// Load reads every expression currently persisted. A missing file is not an
// error: it is treated as an empty configuration, the state of a cluster
// that has never had anything set.
func (p *PropertyFile) Load() ([]config.Expression, error) {
	f, err := os.Open(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to open property file %s", p.path)
	}
	defer f.Close()

	var exprs []config.Expression
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		expr, err := p.parser.Parse(line)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse property file line %q", line)
		}
		exprs = append(exprs, expr)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read property file %s", p.path)
	}
	return exprs, nil
}

// Save locks the file, then atomically replaces its content with the
// canonical textual form of every expression in exprs, one per line.
func (p *PropertyFile) Save(exprs []config.Expression) error {
	parentDir := filepath.Dir(p.path)
	if _, err := os.Stat(parentDir); os.IsNotExist(err) {
		if err := os.MkdirAll(parentDir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create directory %s", parentDir)
		}
	}

	if err := p.lock.Lock(); err != nil {
		return errors.Wrap(err, "failed to acquire file lock")
	}
	defer func() {
		_ = p.lock.Unlock()
	}()

	var b strings.Builder
	for _, e := range exprs {
		b.WriteString(e.Text())
		b.WriteString("\n")
	}

	tmpPath := p.path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(b.String()), 0o640); err != nil {
		return errors.Wrapf(err, "failed to write property file %s", tmpPath)
	}
	if err := os.Rename(tmpPath, p.path); err != nil {
		return errors.Wrapf(err, "failed to replace property file %s", p.path)
	}
	return nil
}

// Upsert loads the current expressions, replaces the first stored entry
// that expr.Matches (see config.Expression.Matches) with expr, appends expr
// if nothing matched, and saves the result. Later matching entries are
// left in place.
func (p *PropertyFile) Upsert(expr config.Expression) error {
	exprs, err := p.Load()
	if err != nil {
		return err
	}

	replaced := false
	for i, stored := range exprs {
		if expr.Matches(stored) {
			exprs[i] = expr
			replaced = true
			break
		}
	}
	if !replaced {
		exprs = append(exprs, expr)
	}
	return p.Save(exprs)
}
