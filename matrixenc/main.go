// Matrixenc composes a PDF transformation matrix from a sequence of
// operations and prints its content-stream encoding, optionally followed
// by a matrix-setting operator so the line can be embedded as is.
//
//	matrixenc rotate 90 translate 36 36
//	matrixenc -op cm scale 2 2
package main

import (
	"flag"
	"fmt"
	"github.com/atlas-editor/matrix"
	"log"
	"os"
	"strconv"
)

var (
	operator = flag.String("op", "", "content-stream operator to append (e.g. cm or Tm)")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: matrixenc [-op operator] operation...\n")
	fmt.Fprintf(os.Stderr, "operations:\n")
	fmt.Fprintf(os.Stderr, "  scale X Y\n")
	fmt.Fprintf(os.Stderr, "  rotate DEGREES\n")
	fmt.Fprintf(os.Stderr, "  translate X Y\n")
	fmt.Fprintf(os.Stderr, "  matrix A B C D E F\n")
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("matrixenc: ")

	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		usage()
	}

	m, err := compose(flag.Args())
	if err != nil {
		log.Fatal(err)
	}

	if *operator != "" {
		fmt.Printf("%s %s\n", m.Encode(), *operator)
	} else {
		fmt.Printf("%s\n", m.Encode())
	}
}

// compose concatenates the named operations onto the identity matrix,
// left to right.
func compose(args []string) (matrix.Matrix, error) {
	m := matrix.Identity()
	for len(args) > 0 {
		op := args[0]
		args = args[1:]

		switch op {
		case "scale":
			v, rest, err := operands(op, args, 2)
			if err != nil {
				return matrix.Matrix{}, err
			}
			m, args = m.Scaled(v[0], v[1]), rest
		case "rotate":
			v, rest, err := operands(op, args, 1)
			if err != nil {
				return matrix.Matrix{}, err
			}
			m, args = m.Rotated(v[0]), rest
		case "translate":
			v, rest, err := operands(op, args, 2)
			if err != nil {
				return matrix.Matrix{}, err
			}
			m, args = m.Translated(v[0], v[1]), rest
		case "matrix":
			v, rest, err := operands(op, args, 6)
			if err != nil {
				return matrix.Matrix{}, err
			}
			n, err := matrix.FromShorthand(v)
			if err != nil {
				return matrix.Matrix{}, err
			}
			m, args = m.Mul(n), rest
		default:
			return matrix.Matrix{}, fmt.Errorf("unknown operation %q", op)
		}
	}
	return m, nil
}

// operands parses the leading n arguments of args as floats and returns
// them along with the remaining arguments.
func operands(op string, args []string, n int) ([]float64, []string, error) {
	if len(args) < n {
		return nil, nil, fmt.Errorf("%s: want %d operands, have %d", op, n, len(args))
	}
	v := make([]float64, n)
	for i := range v {
		f, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: bad operand %q", op, args[i])
		}
		v[i] = f
	}
	return v, args[n:], nil
}
