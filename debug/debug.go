// Package debug provides env-gated debug logging for the transcode
// pipeline. Each area has its own boolean, read once at startup:
//
//	CHANSET_DEBUG_PARSE
//	CHANSET_DEBUG_WIRE
//	CHANSET_DEBUG_TRANSPORT
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse     bool
	Wire      bool
	Transport bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("CHANSET_DEBUG_PARSE")
	d.Wire = boolEnv("CHANSET_DEBUG_WIRE")
	d.Transport = boolEnv("CHANSET_DEBUG_TRANSPORT")
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
func Wire() bool {
	return d.Wire
}
func Transport() bool {
	return d.Transport
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
