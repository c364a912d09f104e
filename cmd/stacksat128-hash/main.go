// Command stacksat128-hash computes the STACKSAT-128 digest of a file, a
// literal string argument, or standard input, printing it as lowercase hex.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/stacksat128/stacksat128/pkg/stacksat128/hash"
)

func main() {
	filename := flag.String("file", "", "path to a file to hash; if '-' or omitted, the first argument is hashed, or standard input when there is none")
	flag.Parse()

	var input []byte
	var err error

	switch {
	case *filename != "" && *filename != "-":
		input, err = os.ReadFile(*filename)
	case flag.NArg() > 0:
		input = []byte(flag.Arg(0))
	default:
		input, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(hash.Hash(input).Hex())
}
