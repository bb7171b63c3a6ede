// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Command kmerge merges already-sorted, newline-delimited text files named
// in a YAML manifest into a single sorted stream.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/kmergo/kmerge"
)

// lineIterator lazily reads lines from an open file, implementing both
// kmerge.Iterator[string] and io.Closer so that a MergeIter's Close call
// releases the underlying file handle.
type lineIterator struct {
	path string
	f    *os.File
	sc   *bufio.Scanner
	logf func(string, ...interface{})
}

func openLineIterator(path string, logf func(string, ...interface{})) (*lineIterator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &lineIterator{path: path, f: f, sc: bufio.NewScanner(f), logf: logf}, nil
}

func (li *lineIterator) Next() (string, bool) {
	if !li.sc.Scan() {
		return "", false
	}
	return li.sc.Text(), true
}

func (li *lineIterator) SizeHint() (int, int, bool) {
	return 0, 0, false
}

func (li *lineIterator) Close() error {
	if li.logf != nil {
		li.logf("closing %s", li.path)
	}
	return li.f.Close()
}

func main() {
	manifestPath := flag.String("manifest", "", "path to a YAML manifest listing the files to merge")
	verbose := flag.Bool("v", false, "log verbose per-input diagnostics")
	flag.Parse()

	if *manifestPath == "" {
		fmt.Fprintln(os.Stderr, "usage: kmerge -manifest FILE")
		os.Exit(1)
	}

	m, err := loadManifest(*manifestPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sessionID := uuid.New()
	var logf func(string, ...interface{})
	if *verbose {
		logf = func(f string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, "[%s] %s\n", sessionID, fmt.Sprintf(f, args...))
		}
	}

	if err := run(m, logf); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(m *Manifest, logf func(string, ...interface{})) error {
	b := kmerge.NewBuilder[string]()
	if m.Reverse {
		b.Cmp = kmerge.MaxFirst(b.Cmp)
	}

	var iters []*lineIterator
	for _, path := range m.Inputs {
		li, err := openLineIterator(path, logf)
		if err != nil {
			return err
		}
		iters = append(iters, li)
		if logf != nil {
			logf("opened %s", path)
		}
	}

	merged := b.WithStorage(kmerge.NewDynamicStorage[string]())
	storage := merged.Storage.(*kmerge.DynamicStorage[string])
	for _, li := range iters {
		storage.Add(li)
	}
	engine := kmerge.Build[string](storage, merged.Cmp, merged.TieBreak)
	defer engine.Close()

	out := os.Stdout
	if m.Output != "" {
		f, err := os.Create(m.Output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", m.Output, err)
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	defer w.Flush()

	n := 0
	for {
		line, ok := engine.Next()
		if !ok {
			break
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		n++
	}
	if logf != nil {
		logf("merged %d lines from %d inputs", n, len(iters))
	}
	return nil
}
