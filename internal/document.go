package internal

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadDocument reads a mesh laid out the way Delaunator stores it:
//
//	{"coords": [...], "triangles": [...], "halfedges": [...], "hull": [...]}
//
// Either YAML or JSON works, since JSON is YAML. Other keys are ignored. Unlike
// the other loaders, the adjacency is taken on trust from the file, so the
// result is validated before it is returned.
func LoadDocument(r io.Reader) (*Mesh, error) {
	var mesh Mesh
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&mesh); err != nil {
		return nil, errors.Wrap(err, "decoding mesh document")
	}
	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	return &mesh, nil
}
