package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
)

type debug struct {
	Compile bool
	Parse   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Compile = boolEnv("KEYPARSE_DEBUG_COMPILE")
	d.Parse = boolEnv("KEYPARSE_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Compile() bool {
	return d.Compile
}
func Parse() bool {
	return d.Parse
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func Dump(v any) {
	spew.Fdump(os.Stderr, v)
}
