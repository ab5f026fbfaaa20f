// Package schema serializes structural descriptions, so that the
// description of a key layout can live next to the data it describes:
//
//	dirs: [environment, table]
//	partitions: [year, month]
//	file:
//	  - name: base
//	    pattern: '[^.]+'
//	  - pattern: '-'          # no name: matched but discarded
//	  - name: ext
//	    pattern: '\.csv\.gz'
package schema

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/Peter-Malcolm/keyparse"
)

// Entry is one filename entry. An entry without a name is ignored
// (matched but discarded); an entry without a pattern uses the default
// file pattern.
type Entry struct {
	Name    string `yaml:"name,omitempty"`
	Pattern string `yaml:"pattern,omitempty"`
}

// Description is the YAML form of a key's structural description.
type Description struct {
	Dirs       []string `yaml:"dirs,omitempty"`
	Partitions []string `yaml:"partitions,omitempty"`
	File       []Entry  `yaml:"file"`
	Separator  string   `yaml:"separator,omitempty"`
	Absolute   bool     `yaml:"absolute,omitempty"`
}

func Parse(d []byte) (*Description, error) {
	desc := &Description{}
	if err := yaml.Unmarshal(d, desc); err != nil {
		return nil, fmt.Errorf("parse description: %w", err)
	}
	return desc, nil
}

func (d *Description) Bytes() ([]byte, error) {
	return yaml.Marshal(d)
}

// Compile translates the description into a keyparse.Parser.
func (d *Description) Compile() (*keyparse.Parser, error) {
	file := make([]keyparse.FilePattern, 0, len(d.File))
	for i, e := range d.File {
		switch {
		case e.Name == "" && e.Pattern == "":
			return nil, fmt.Errorf("file entry %d: name or pattern required", i)
		case e.Name == "":
			file = append(file, keyparse.Ignore(e.Pattern))
		case e.Pattern == "":
			file = append(file, keyparse.Named(e.Name))
		default:
			file = append(file, keyparse.Group(e.Name, e.Pattern))
		}
	}
	var opts []keyparse.Option
	if d.Separator != "" {
		opts = append(opts, keyparse.WithSeparator(d.Separator))
	}
	if d.Absolute {
		opts = append(opts, keyparse.WithAbsolute(true))
	}
	return keyparse.New(d.Dirs, d.Partitions, file, opts...)
}
