package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hupe1980/bitarray"
)

// demo prints the walkthrough from the package documentation.
func demo(c *cli.Context) error {
	cfg := configFrom(c)
	logger := cfg.logger.WithOperation("demo")
	w := c.App.Writer

	bits := bitarray.FromString("10010")
	fmt.Fprintln(w, bits)

	bits.ApplyComplement()
	fmt.Fprintln(w, bits)

	if _, err := bits.ApplyXor(bitarray.FromBools([]bool{true, false, false, false, true})); err != nil {
		logger.LogOperation(c.Context, "xor", bits.Size(), err)
		return err
	}
	fmt.Fprintln(w, bits)

	if err := bits.Set(4, true); err != nil {
		logger.LogOperation(c.Context, "set", bits.Size(), err)
		return err
	}
	fmt.Fprintln(w, bits)

	var sb strings.Builder
	for it := bits.Iterator(); it.Valid(); it.Next() {
		v, err := it.Current()
		if err != nil {
			return err
		}
		fmt.Fprintf(&sb, "%d:%s;", it.Key(), boolResult(v))
	}
	fmt.Fprintln(w, sb.String())

	data, err := bits.ToJSON(bitarray.WithCodec(cfg.codec))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(data))

	logger.LogBits(c.Context, "demo finished", bits)
	return nil
}
