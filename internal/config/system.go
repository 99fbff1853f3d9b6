// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gausstrace/matrix"
)

// System is an input document describing one linear system as augmented rows.
//
//	rows:
//	  - [1, 1, -1, 9]
//	  - [0, 1, 3, 3]
//	  - [-1, 0, -2, 6]
//
// JSON is accepted too since it is a YAML subset.
type System struct {
	Rows [][]float64 `json:"rows" yaml:"rows"`
}

// LoadSystem reads a system document from path ("-" reads stdin).
// opts set the matrix policy, e.g. matrix.WithEpsilon to match the solver.
func LoadSystem(path string, opts ...matrix.Option) (*matrix.Augmented, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read system: %w", err)
	}

	return ParseSystem(data, opts...)
}

// ParseSystem decodes a system document and builds the augmented matrix.
func ParseSystem(data []byte, opts ...matrix.Option) (*matrix.Augmented, error) {
	var sys System
	if err := yaml.Unmarshal(data, &sys); err != nil {
		return nil, fmt.Errorf("parse system: %w", err)
	}
	m, err := matrix.NewAugmentedFromRows(sys.Rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse system: %w", err)
	}

	return m, nil
}
