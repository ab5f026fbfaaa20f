// Package keyparse parses delimited, path-like keys — filesystem paths
// or object-store keys — into named fields, given a declarative
// description of the key's structure.
//
// A key is made of directory segments, then partition segments of the
// form name=value, then a filename:
//
//	KEY        := [SEP] [DIRS] [PARTITIONS] FILENAME
//	DIRS       := DIR SEP [DIRS]
//	PARTITIONS := NAME "=" VALUE SEP [PARTITIONS]
//	SEP        := "/"
//
// Dirs are matched positionally, partitions by the name left of '=',
// and the filename against a composite regular expression built from
// the declared file entries:
//
//	p, _ := keyparse.New(
//		[]string{"table"},
//		[]string{"year"},
//		[]keyparse.FilePattern{keyparse.Named("filename")},
//	)
//	f, _ := p.Parse("directors/year=1991/file.csv")
//	f.Map() // map[table:directors year:1991 filename:file.csv]
//
// A Parser is immutable once constructed and safe for concurrent use.
package keyparse
