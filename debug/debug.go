// Package debug provides env-gated debug logging for the codec.
// Set PLIST_DEBUG_PARSE or PLIST_DEBUG_ENCODE to a truthy value to get
// trace output on stderr.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Encode bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("PLIST_DEBUG_PARSE")
	d.Encode = boolEnv("PLIST_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
