package load

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// document is the top-level layout of a schema file.
type document struct {
	Entities []yaml.Node `yaml:"entities"`
}

// LoadFile reads the entity schemas of a YAML or JSON schema file.
func LoadFile(path string) ([]*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load: read schema file")
	}
	return Parse(path, data)
}

// Parse decodes the entity schemas of a schema document. The name is only
// used for positions and error messages.
func Parse(name string, data []byte) ([]*Schema, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "load: parse %s", name)
	}
	schemas := make([]*Schema, 0, len(doc.Entities))
	for i := range doc.Entities {
		n := &doc.Entities[i]
		s := &Schema{}
		if err := n.Decode(s); err != nil {
			return nil, errors.Wrapf(err, "load: decode entity at %s:%d", name, n.Line)
		}
		s.Pos = fmt.Sprintf("%s:%d", name, n.Line)
		schemas = append(schemas, s)
	}
	return schemas, nil
}
