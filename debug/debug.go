package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Decode bool
	Encode bool
	Cursor bool
	Patch  bool
	Diff   bool
	Filter bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("JVAL_DEBUG_DECODE")
	d.Encode = boolEnv("JVAL_DEBUG_ENCODE")
	d.Cursor = boolEnv("JVAL_DEBUG_CURSOR")
	d.Patch = boolEnv("JVAL_DEBUG_PATCH")
	d.Diff = boolEnv("JVAL_DEBUG_DIFF")
	d.Filter = boolEnv("JVAL_DEBUG_FILTER")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Encode() bool {
	return d.Encode
}
func Cursor() bool {
	return d.Cursor
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}
func Filter() bool {
	return d.Filter
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
