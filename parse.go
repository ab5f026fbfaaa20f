package keyparse

import (
	"fmt"
	"strings"

	"github.com/Peter-Malcolm/keyparse/debug"
)

// Parse matches key against the compiled description and returns the
// extracted fields in output order: dirs, then partitions, then
// non-ignored file entries. A key either fully parses or fails with a
// StructureError or NoMatchError; no partial result is returned.
func (p *Parser) Parse(key string) (*Fields, error) {
	k := key
	if p.absolute {
		if !strings.HasPrefix(k, p.sep) {
			return nil, &StructureError{
				Key:    key,
				Reason: fmt.Sprintf("absolute key should start with %q", p.sep),
			}
		}
		k = k[len(p.sep):]
	} else if strings.HasPrefix(k, p.sep) {
		return nil, &StructureError{
			Key:    key,
			Reason: fmt.Sprintf("relative key should not start with %q", p.sep),
		}
	}

	segs := strings.Split(k, p.sep)
	filename := segs[len(segs)-1]
	path := segs[:len(segs)-1]
	if len(path) != len(p.dirs)+len(p.partitions) {
		return nil, &StructureError{
			Key: key,
			Reason: fmt.Sprintf("got %d path segments, want %d dirs + %d partitions",
				len(path), len(p.dirs), len(p.partitions)),
		}
	}

	// Dirs are positional; partitions are keyed by the token left of
	// '=' and may sit anywhere among them.
	dirVals := make([]string, 0, len(p.dirs))
	partVals := make(map[string]string, len(p.partitions))
	for _, seg := range path {
		name, val, found := strings.Cut(seg, "=")
		if found && name != "" {
			if _, ok := p.partIndex[name]; !ok {
				return nil, &StructureError{
					Key:    key,
					Reason: fmt.Sprintf("segment %q names undeclared partition %q", seg, name),
				}
			}
			if _, dup := partVals[name]; dup {
				return nil, &StructureError{
					Key:    key,
					Reason: fmt.Sprintf("partition %q appears more than once", name),
				}
			}
			partVals[name] = val
			continue
		}
		if len(dirVals) == len(p.dirs) {
			return nil, &StructureError{
				Key:    key,
				Reason: fmt.Sprintf("unexpected directory segment %q", seg),
			}
		}
		dirVals = append(dirVals, seg)
	}
	for _, name := range p.partitions {
		if _, ok := partVals[name]; !ok {
			return nil, &StructureError{
				Key:    key,
				Reason: fmt.Sprintf("partition %q not present", name),
			}
		}
	}

	m := p.re.FindStringSubmatch(filename)
	if m == nil {
		return nil, &NoMatchError{Filename: filename, Pattern: p.pattern}
	}

	fields := newFields(len(p.dirs) + len(p.partitions) + len(p.file))
	for i, name := range p.dirs {
		fields.add(name, dirVals[i])
	}
	for _, name := range p.partitions {
		fields.add(name, partVals[name])
	}
	for _, g := range p.file {
		if g.ignore || m[g.index] == "" {
			continue
		}
		fields.add(g.name, m[g.index])
	}
	if debug.Parse() {
		debug.Logf("keyparse: %q -> %s\n", key, fields)
	}
	return fields, nil
}
