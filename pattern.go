package keyparse

import (
	"regexp"
	"strings"

	"github.com/Peter-Malcolm/keyparse/debug"
)

// DefaultFilePattern is used for file entries declared by name only.
const DefaultFilePattern = `[\w.]+`

// IgnorePrefix marks a captured group as matched-but-discarded when it
// leads the group's name.
const IgnorePrefix = "_"

// FilePattern is one entry of the filename section: either a captured
// group or an ignored one. Ignored entries consume input, anchoring the
// entries after them, but never reach the output.
type FilePattern struct {
	name    string
	pattern string
	ignore  bool
}

// Group declares a captured filename entry. A name leading with
// IgnorePrefix degrades to an ignored entry.
func Group(name, pattern string) FilePattern {
	return FilePattern{
		name:    name,
		pattern: pattern,
		ignore:  strings.HasPrefix(name, IgnorePrefix),
	}
}

// Ignore declares an entry which matches and consumes input without
// capturing it.
func Ignore(pattern string) FilePattern {
	return FilePattern{pattern: pattern, ignore: true}
}

// Named declares a captured entry with the default pattern.
func Named(name string) FilePattern {
	return Group(name, DefaultFilePattern)
}

func (f FilePattern) Name() string {
	return f.name
}

func (f FilePattern) Pattern() string {
	return f.pattern
}

func (f FilePattern) Ignored() bool {
	return f.ignore
}

// fileGroup locates one file entry's capture inside the composite
// pattern's submatches.
type fileGroup struct {
	name   string
	index  int
	ignore bool
}

// compileFile builds the composite filename pattern: each entry wrapped
// in a capturing group, concatenated in declared order, anchored at
// both ends. Entries are compiled standalone first, both to report the
// offending entry and to count its own capture groups, so that entry
// patterns may contain groups of their own.
func compileFile(file []FilePattern) (*regexp.Regexp, string, []fileGroup, error) {
	var (
		b      strings.Builder
		groups = make([]fileGroup, 0, len(file))
		next   = 1
	)
	b.WriteString(`\A`)
	for i, fp := range file {
		sub, err := regexp.Compile(fp.pattern)
		if err != nil {
			return nil, "", nil, &PatternError{
				Name:    fp.name,
				Pattern: fp.pattern,
				Pos:     i,
				Err:     err,
			}
		}
		groups = append(groups, fileGroup{
			name:   fp.name,
			index:  next,
			ignore: fp.ignore,
		})
		next += 1 + sub.NumSubexp()
		b.WriteByte('(')
		b.WriteString(fp.pattern)
		b.WriteByte(')')
	}
	b.WriteString(`\z`)
	composite := b.String()
	re, err := regexp.Compile(composite)
	if err != nil {
		// Entries compile standalone but not concatenated, e.g.
		// the same named group declared in two entries.
		return nil, "", nil, &PatternError{Pattern: composite, Pos: -1, Err: err}
	}
	if debug.Compile() {
		debug.Logf("keyparse: composite file pattern %s\n", composite)
	}
	return re, composite, groups, nil
}
