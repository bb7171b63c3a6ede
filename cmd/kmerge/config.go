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

package main

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Manifest describes the files to merge. It is parsed from YAML (via
// sigs.k8s.io/yaml, which round-trips through JSON so struct tags use the
// ordinary encoding/json conventions) rather than a flag per input, so a
// merge job can be checked into version control and reused.
type Manifest struct {
	// Inputs lists the already-sorted, newline-delimited text files to
	// merge, in no particular order.
	Inputs []string `json:"inputs"`
	// Reverse merges in descending order instead of ascending.
	Reverse bool `json:"reverse"`
	// Output is the path to write the merged output to. Empty means
	// stdout.
	Output string `json:"output"`
}

func loadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if len(m.Inputs) == 0 {
		return nil, fmt.Errorf("manifest %s lists no inputs", path)
	}
	return &m, nil
}
