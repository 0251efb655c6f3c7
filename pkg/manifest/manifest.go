// Package manifest describes a generated fragment set for client tooling:
// which fragment targets which type, and a checksum of the schema it was
// generated from to detect stale fragment files.
package manifest

import (
	"encoding/binary"
	"io"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v2"

	"github.com/hroi/fraggen/pkg/fraggen"
)

type Manifest struct {
	SchemaChecksum string  `yaml:"schemaChecksum"`
	Fragments      []Entry `yaml:"fragments"`
}

type Entry struct {
	Name string `yaml:"name"`
	On   string `yaml:"on"`
	Kind string `yaml:"kind"`
}

// Build lists fragments in order. schemaSources are hashed in the given order.
func Build(fragments []fraggen.Fragment, schemaSources ...[]byte) Manifest {
	m := Manifest{
		SchemaChecksum: Checksum(schemaSources...),
		Fragments:      make([]Entry, 0, len(fragments)),
	}
	for i := range fragments {
		m.Fragments = append(m.Fragments, Entry{
			Name: fragments[i].Name,
			On:   fragments[i].TypeName,
			Kind: fragments[i].TypeKind.String(),
		})
	}
	return m
}

// Checksum hashes every source prefixed with its length, so the split
// between sources is part of the checksum.
func Checksum(sources ...[]byte) string {
	digest := xxhash.New()
	length := make([]byte, 8)
	for _, src := range sources {
		binary.BigEndian.PutUint64(length, uint64(len(src)))
		_, _ = digest.Write(length)
		_, _ = digest.Write(src)
	}
	return strconv.FormatUint(digest.Sum64(), 16)
}

func (m Manifest) WriteYAML(w io.Writer) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func ReadYAML(r io.Reader) (Manifest, error) {
	var m Manifest
	data, err := io.ReadAll(r)
	if err != nil {
		return m, err
	}
	err = yaml.Unmarshal(data, &m)
	return m, err
}
