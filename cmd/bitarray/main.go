// Command bitarray manipulates packed bit arrays written as strings of
// '0' and '1'.
//
// Usage:
//
//	bitarray demo
//	bitarray xor 01101 10001
//	bitarray slice --offset -7 11010110
//	bitarray shift --by -1 --circular 10111
//	bitarray --codec json to-json 11101
//	bitarray from-int --width 8 5
//
// Flags can also be set through BITARRAY_LOG_LEVEL, BITARRAY_LOG_FORMAT and
// BITARRAY_CODEC.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:     "bitarray",
		Usage:    "Packed bit array operations",
		Flags:    appFlags,
		Before:   setup,
		Commands: commands,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
