package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const descYAML = `
dirs: [environment, table]
partitions: [year, month]
file:
  - name: base
    pattern: '[^.]+'
  - pattern: '-'
  - name: date
    pattern: '\d{8}'
  - name: ext
    pattern: '\.csv\.gz'
absolute: true
`

func TestParseAndCompile(t *testing.T) {
	desc, err := Parse([]byte(descYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"environment", "table"}, desc.Dirs)
	assert.Equal(t, []string{"year", "month"}, desc.Partitions)
	require.Len(t, desc.File, 4)
	assert.True(t, desc.Absolute)

	p, err := desc.Compile()
	require.NoError(t, err)

	fields, err := p.Parse("/dev/directors/year=1991/month=09/a_file-19910903.csv.gz")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"environment": "dev",
		"table":       "directors",
		"year":        "1991",
		"month":       "09",
		"base":        "a_file",
		"date":        "19910903",
		"ext":         ".csv.gz",
	}, fields.Map())
}

func TestCompileDefaults(t *testing.T) {
	desc := &Description{
		Dirs: []string{"one"},
		File: []Entry{{Name: "filename"}},
	}
	p, err := desc.Compile()
	require.NoError(t, err)

	fields, err := p.Parse("hello/file.csv")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"one": "hello", "filename": "file.csv"}, fields.Map())
}

func TestCompileSeparator(t *testing.T) {
	desc := &Description{
		Dirs:      []string{"one"},
		File:      []Entry{{Name: "filename"}},
		Separator: "|",
	}
	p, err := desc.Compile()
	require.NoError(t, err)

	fields, err := p.Parse("a|f.csv")
	require.NoError(t, err)
	v, ok := fields.Get("one")
	assert.True(t, ok)
	assert.Equal(t, "a", v)
}

func TestCompileEmptyEntry(t *testing.T) {
	desc := &Description{File: []Entry{{}}}
	_, err := desc.Compile()
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	desc, err := Parse([]byte(descYAML))
	require.NoError(t, err)

	out, err := desc.Bytes()
	require.NoError(t, err)

	again, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, desc, again)
}
