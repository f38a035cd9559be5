// Package fixture loads the YAML test fixtures under testdata/ into Go
// structs, the way hyperpb's parse_test.go loads its table-driven cases.
// It is test-only tooling: nothing in the root package imports it.
package fixture

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path and unmarshals it into dst.
func Load(path string, dst any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, dst)
}
