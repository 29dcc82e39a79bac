package backend

import "gopkg.in/yaml.v3"

// DecodeParams unmarshals a YAML parameter document into a caller-provided
// Params struct, the way every concrete back-end's ConstructParams is
// expected to implement it. An empty document leaves dst at its
// caller-supplied zero/default value.
func DecodeParams(yamlDoc []byte, dst Params) error {
	if len(yamlDoc) == 0 {
		return nil
	}
	return yaml.Unmarshal(yamlDoc, dst)
}
