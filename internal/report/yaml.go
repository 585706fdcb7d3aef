// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/biotupe/especies/pkg/types"
)

// WriteYAML writes the report as a YAML document to w.
func WriteYAML(w io.Writer, rep types.SpeciesReport) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(rep)
}
