package keyparse

import (
	"errors"
	"testing"
)

func TestNewBadPattern(t *testing.T) {
	_, err := New(nil, nil, []FilePattern{
		Group("base", `[^.]+`),
		Group("ext", `(`),
	})
	if !errors.Is(err, ErrPattern) {
		t.Fatalf("got %v, want %v", err, ErrPattern)
	}
	var perr *PatternError
	if !errors.As(err, &perr) {
		t.Fatalf("got %T, want *PatternError", err)
	}
	if perr.Pos != 1 || perr.Name != "ext" || perr.Pattern != "(" {
		t.Errorf("bad error detail: %+v", perr)
	}
}

func TestNewDuplicateField(t *testing.T) {
	cases := []struct {
		name       string
		dirs       []string
		partitions []string
		file       []FilePattern
	}{
		{
			name: "dir vs file",
			dirs: []string{"a"},
			file: []FilePattern{Named("a")},
		},
		{
			name: "dir vs dir",
			dirs: []string{"a", "a"},
			file: []FilePattern{Named("f")},
		},
		{
			name:       "partition vs partition",
			partitions: []string{"p", "p"},
			file:       []FilePattern{Named("f")},
		},
		{
			name:       "dir vs partition",
			dirs:       []string{"a"},
			partitions: []string{"a"},
			file:       []FilePattern{Named("f")},
		},
		{
			name: "file vs file",
			file: []FilePattern{Group("f", `\w+`), Group("f", `\w+`)},
		},
	}
	for _, c := range cases {
		_, err := New(c.dirs, c.partitions, c.file)
		if !errors.Is(err, ErrDuplicateField) {
			t.Errorf("%s: got %v, want %v", c.name, err, ErrDuplicateField)
		}
	}
}

func TestNewIgnoredNamesNeverCollide(t *testing.T) {
	_, err := New(
		[]string{"_x"},
		nil,
		[]FilePattern{Group("_x", `\w+`), Ignore(`\.`), Ignore(`\.`), Named("f")},
	)
	if err != nil {
		t.Fatal(err)
	}
}

func TestNewBadDescription(t *testing.T) {
	if _, err := New([]string{"a"}, nil, nil); !errors.Is(err, ErrDescription) {
		t.Errorf("empty file: got %v, want %v", err, ErrDescription)
	}
	if _, err := New(nil, nil, []FilePattern{Named("f")}, WithSeparator("")); !errors.Is(err, ErrDescription) {
		t.Errorf("empty separator: got %v, want %v", err, ErrDescription)
	}
	if _, err := New(nil, []string{"a=b"}, []FilePattern{Named("f")}); !errors.Is(err, ErrDescription) {
		t.Errorf("partition name with '=': got %v, want %v", err, ErrDescription)
	}
	if _, err := New([]string{""}, nil, []FilePattern{Named("f")}); !errors.Is(err, ErrDescription) {
		t.Errorf("empty field name: got %v, want %v", err, ErrDescription)
	}
}

func TestParserPattern(t *testing.T) {
	p, err := New(nil, nil, []FilePattern{
		Group("base", `[^.]+`),
		Group("ext", `\.\w+`),
	})
	if err != nil {
		t.Fatal(err)
	}
	if want := `\A([^.]+)(\.\w+)\z`; p.Pattern() != want {
		t.Errorf("composite pattern %q, want %q", p.Pattern(), want)
	}
}
