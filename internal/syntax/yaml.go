package syntax

import (
	"io"

	"gopkg.in/yaml.v3"
)

// FprintYAML writes a YAML representation of node to w.
// The document has the same shape as the JSON output.
func FprintYAML(w io.Writer, node Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toTree(node)); err != nil {
		return err
	}
	return enc.Close()
}
