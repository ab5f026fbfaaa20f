package keyparse

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Peter-Malcolm/keyparse/debug"
)

// DefaultSeparator splits keys into segments unless WithSeparator says
// otherwise.
const DefaultSeparator = "/"

type Config struct {
	Separator string
	Absolute  bool
}

type Option func(*Config)

// WithSeparator sets the segment separator.
func WithSeparator(sep string) Option {
	return func(c *Config) { c.Separator = sep }
}

// WithAbsolute requires keys to lead with the separator.
func WithAbsolute(v bool) Option {
	return func(c *Config) { c.Absolute = v }
}

// Parser matches keys against a structural description. It is
// immutable once constructed and may be shared across goroutines.
type Parser struct {
	dirs       []string
	partitions []string
	partIndex  map[string]int
	file       []fileGroup
	re         *regexp.Regexp
	pattern    string
	sep        string
	absolute   bool
}

// New compiles a structural description into a Parser.
//
// dirs name one field per positional directory segment. partitions
// name fields extracted from name=value segments; the name is both the
// token matched left of '=' and the output field. file entries are
// matched left-to-right against the filename segment as one composite
// pattern.
//
// Validation is eager: a file pattern which does not compile yields a
// PatternError, and a non-ignored field name declared twice anywhere
// yields a DuplicateFieldError.
func New(dirs, partitions []string, file []FilePattern, opts ...Option) (*Parser, error) {
	cfg := &Config{Separator: DefaultSeparator}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Separator == "" {
		return nil, fmt.Errorf("%w: empty separator", ErrDescription)
	}
	if len(file) == 0 {
		return nil, fmt.Errorf("%w: file must not be empty", ErrDescription)
	}

	seen := map[string]bool{}
	declare := func(name string) error {
		if name == "" {
			return fmt.Errorf("%w: empty field name", ErrDescription)
		}
		if seen[name] {
			return &DuplicateFieldError{Name: name}
		}
		seen[name] = true
		return nil
	}
	for _, d := range dirs {
		if err := declare(d); err != nil {
			return nil, err
		}
	}
	partIndex := make(map[string]int, len(partitions))
	for i, p := range partitions {
		if strings.Contains(p, "=") || strings.Contains(p, cfg.Separator) {
			return nil, fmt.Errorf("%w: partition name %q cannot contain %q or %q",
				ErrDescription, p, "=", cfg.Separator)
		}
		if err := declare(p); err != nil {
			return nil, err
		}
		partIndex[p] = i
	}
	for _, f := range file {
		if f.ignore {
			continue
		}
		if err := declare(f.name); err != nil {
			return nil, err
		}
	}

	re, pattern, groups, err := compileFile(file)
	if err != nil {
		return nil, err
	}
	p := &Parser{
		dirs:       dirs,
		partitions: partitions,
		partIndex:  partIndex,
		file:       groups,
		re:         re,
		pattern:    pattern,
		sep:        cfg.Separator,
		absolute:   cfg.Absolute,
	}
	if debug.Compile() {
		debug.Dump(p)
	}
	return p, nil
}

// Pattern returns the uncompiled composite filename pattern.
func (p *Parser) Pattern() string {
	return p.pattern
}

// Separator returns the configured segment separator.
func (p *Parser) Separator() string {
	return p.sep
}

// FieldNames returns the output field names in output order: dirs,
// then partitions, then non-ignored file entries.
func (p *Parser) FieldNames() []string {
	names := make([]string, 0, len(p.dirs)+len(p.partitions)+len(p.file))
	names = append(names, p.dirs...)
	names = append(names, p.partitions...)
	for _, g := range p.file {
		if g.ignore {
			continue
		}
		names = append(names, g.name)
	}
	return names
}
