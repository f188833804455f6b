package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/hupe1980/bitarray"
)

var commands = []*cli.Command{
	{
		Name:   "demo",
		Usage:  "Run the walkthrough: complement, xor, set, iterate, JSON",
		Action: demo,
	},
	{
		Name:      "not",
		Usage:     "Complement every bit",
		ArgsUsage: "<bits>",
		Action: unary("not", func(b *bitarray.BitArray) (*bitarray.BitArray, error) {
			return b.ApplyComplement(), nil
		}),
	},
	{
		Name:      "and",
		Usage:     "Bitwise AND of two arrays of equal size",
		ArgsUsage: "<bits> <bits>",
		Action:    binary("and", (*bitarray.BitArray).ApplyAnd),
	},
	{
		Name:      "or",
		Usage:     "Bitwise OR of two arrays of equal size",
		ArgsUsage: "<bits> <bits>",
		Action:    binary("or", (*bitarray.BitArray).ApplyOr),
	},
	{
		Name:      "xor",
		Usage:     "Bitwise XOR of two arrays of equal size",
		ArgsUsage: "<bits> <bits>",
		Action:    binary("xor", (*bitarray.BitArray).ApplyXor),
	},
	{
		Name:      "count",
		Usage:     "Print the number of set bits",
		ArgsUsage: "<bits>",
		Action:    count,
	},
	{
		Name:      "get",
		Usage:     "Print the bit at an index",
		ArgsUsage: "<bits> <index>",
		Action:    get,
	},
	{
		Name:      "set",
		Usage:     "Set the bit at an index to 0 or 1",
		ArgsUsage: "<bits> <index> <0|1>",
		Action:    set,
	},
	{
		Name:      "slice",
		Usage:     "Extract a range of bits",
		ArgsUsage: "<bits>",
		Flags:     []cli.Flag{offsetFlag, sizeFlag},
		Action:    slice,
	},
	{
		Name:      "concat",
		Usage:     "Join two arrays",
		ArgsUsage: "<bits> <bits>",
		Action:    concat,
	},
	{
		Name:      "shift",
		Usage:     "Shift or rotate bits",
		ArgsUsage: "<bits>",
		Flags:     []cli.Flag{byFlag, circularFlag, fillFlag},
		Action:    shift,
	},
	{
		Name:      "from-int",
		Usage:     "Print the binary form of an unsigned integer",
		ArgsUsage: "<value>",
		Flags:     []cli.Flag{widthFlag},
		Action:    fromInt,
	},
	{
		Name:      "to-json",
		Usage:     "Encode bits as a JSON array of booleans",
		ArgsUsage: "<bits>",
		Action:    toJSON,
	},
	{
		Name:      "from-json",
		Usage:     "Decode a JSON array into bits",
		ArgsUsage: "<json>",
		Action:    fromJSON,
	},
}

// args returns exactly n positional arguments or a usage error.
func args(c *cli.Context, n int) ([]string, error) {
	if c.NArg() != n {
		return nil, fmt.Errorf("%s: expected %d argument(s), got %d", c.Command.Name, n, c.NArg())
	}
	return c.Args().Slice(), nil
}

// finish logs the outcome of op and prints the result.
func finish(c *cli.Context, op string, out fmt.Stringer, size int, err error) error {
	cfg := configFrom(c)
	cfg.logger.LogOperation(c.Context, op, size, err)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, out)
	return err
}

func unary(op string, fn func(*bitarray.BitArray) (*bitarray.BitArray, error)) cli.ActionFunc {
	return func(c *cli.Context) error {
		a, err := args(c, 1)
		if err != nil {
			return err
		}
		out, err := fn(bitarray.FromString(a[0]))
		if err != nil {
			return finish(c, op, nil, 0, err)
		}
		return finish(c, op, out, out.Size(), nil)
	}
}

func binary(op string, fn func(a, b *bitarray.BitArray) (*bitarray.BitArray, error)) cli.ActionFunc {
	return func(c *cli.Context) error {
		a, err := args(c, 2)
		if err != nil {
			return err
		}
		out, err := fn(bitarray.FromString(a[0]), bitarray.FromString(a[1]))
		if err != nil {
			return finish(c, op, nil, 0, err)
		}
		return finish(c, op, out, out.Size(), nil)
	}
}

func count(c *cli.Context) error {
	a, err := args(c, 1)
	if err != nil {
		return err
	}
	bits := bitarray.FromString(a[0])
	return finish(c, "count", intResult(bits.Count()), bits.Size(), nil)
}

func get(c *cli.Context) error {
	a, err := args(c, 2)
	if err != nil {
		return err
	}
	index, err := strconv.Atoi(a[1])
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", a[1], err)
	}
	bits := bitarray.FromString(a[0])
	v, err := bits.Get(index)
	return finish(c, "get", boolResult(v), bits.Size(), err)
}

func set(c *cli.Context) error {
	a, err := args(c, 3)
	if err != nil {
		return err
	}
	index, err := strconv.Atoi(a[1])
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", a[1], err)
	}
	bits := bitarray.FromString(a[0])
	err = bits.Set(index, a[2] != "0")
	return finish(c, "set", bits, bits.Size(), err)
}

func slice(c *cli.Context) error {
	a, err := args(c, 1)
	if err != nil {
		return err
	}
	size := bitarray.ToEnd
	if c.IsSet(sizeFlag.Name) {
		size = c.Int(sizeFlag.Name)
	}
	out := bitarray.FromSlice(bitarray.FromString(a[0]), c.Int(offsetFlag.Name), size)
	return finish(c, "slice", out, out.Size(), nil)
}

func concat(c *cli.Context) error {
	a, err := args(c, 2)
	if err != nil {
		return err
	}
	out := bitarray.FromConcat(bitarray.FromString(a[0]), bitarray.FromString(a[1]))
	return finish(c, "concat", out, out.Size(), nil)
}

func shift(c *cli.Context) error {
	a, err := args(c, 1)
	if err != nil {
		return err
	}
	bits := bitarray.FromString(a[0])
	amount := c.Int(byFlag.Name)

	var out *bitarray.BitArray
	switch {
	case c.Bool(circularFlag.Name) && c.Bool(fillFlag.Name):
		return fmt.Errorf("--%s and --%s are mutually exclusive", circularFlag.Name, fillFlag.Name)
	case c.Bool(fillFlag.Name):
		out = bits.ShiftFill(amount, true)
	default:
		out = bits.Shift(amount, c.Bool(circularFlag.Name))
	}
	return finish(c, "shift", out, out.Size(), nil)
}

func fromInt(c *cli.Context) error {
	a, err := args(c, 1)
	if err != nil {
		return err
	}
	value, err := strconv.ParseUint(a[0], 0, 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", a[0], err)
	}
	out, err := bitarray.FromUint(c.Int(widthFlag.Name), value)
	if err != nil {
		return finish(c, "from-int", nil, 0, err)
	}
	return finish(c, "from-int", out, out.Size(), nil)
}

func toJSON(c *cli.Context) error {
	a, err := args(c, 1)
	if err != nil {
		return err
	}
	bits := bitarray.FromString(a[0])
	data, err := bits.ToJSON(bitarray.WithCodec(configFrom(c).codec))
	return finish(c, "to-json", stringResult(data), bits.Size(), err)
}

func fromJSON(c *cli.Context) error {
	a, err := args(c, 1)
	if err != nil {
		return err
	}
	out, err := bitarray.FromJSON([]byte(a[0]), bitarray.WithCodec(configFrom(c).codec))
	if err != nil {
		return finish(c, "from-json", nil, 0, err)
	}
	return finish(c, "from-json", out, out.Size(), nil)
}

type intResult int

func (r intResult) String() string { return strconv.Itoa(int(r)) }

type boolResult bool

func (r boolResult) String() string {
	if r {
		return "1"
	}
	return "0"
}

type stringResult []byte

func (r stringResult) String() string { return string(r) }
