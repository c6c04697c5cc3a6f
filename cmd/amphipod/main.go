//go:build !lambda

// Command amphipod prints the minimum energy needed to sort an amphipod burrow.
//
// The puzzle diagram (or, with -json, a JSON document) is read from the file
// given by -f, or from standard input. Defaults for -f and -unfold may be set
// through AMPHIPOD_FILE and AMPHIPOD_UNFOLD, optionally from a .env file.
//
// Exit status: 0 solved, 1 error, 2 unsolvable.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/moves"
	"github.com/katalvlaran/burrow/parse"
)

const usage = `Usage: amphipod [flags]

Reads the puzzle diagram from -f (or stdin) and prints the minimum energy.

Flags:
`

// traceEvery controls how often -v reports search progress.
const traceEvery = 100000

func main() {
	log.SetFlags(0)
	log.SetPrefix("amphipod: ")

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	file := flag.String("f", os.Getenv("AMPHIPOD_FILE"), "Input file (default stdin)")
	asJSON := flag.Bool("json", false, "Input is a JSON document instead of a diagram")
	unfold := flag.Bool("unfold", envBool("AMPHIPOD_UNFOLD"), "Insert the two folded rows (depth 2 → 4)")
	showPath := flag.Bool("path", false, "Print the optimal move sequence")
	uniform := flag.Bool("uniform", false, "Disable the heuristic (uniform-cost search)")
	direct := flag.Bool("direct", true, "Allow bay-to-bay moves that skip the hallway")
	jsonOut := flag.Bool("out-json", false, "Print the result as JSON")
	verbose := flag.Bool("v", false, "Report search progress on stderr")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	start, err := load(*file, *asJSON, *unfold)
	if err != nil {
		log.Fatal(err)
	}

	s := settings{Path: *showPath, Uniform: *uniform, Direct: *direct}
	if *verbose {
		s.Trace = tracer()
	}

	began := time.Now()
	rep, res, err := solve(context.Background(), start, s)
	if err != nil {
		log.Fatal(err)
	}
	rep.TimeMs = time.Since(began).Milliseconds()
	if *verbose {
		log.Printf("%s after %d expansions (%d generated) in %s", rep.Status, res.Expanded, res.Generated, time.Since(began))
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			log.Fatal(err)
		}
	} else {
		if *showPath {
			printPath(start, res.Path)
		}
		if res.Solved() {
			fmt.Println(res.Cost)
		} else {
			fmt.Println("unsolvable")
		}
	}

	if !res.Solved() {
		os.Exit(2)
	}
}

// load reads and parses the starting configuration.
func load(file string, asJSON, unfold bool) (burrow.Burrow, error) {
	var r io.Reader = os.Stdin
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return burrow.Burrow{}, err
		}
		defer f.Close()
		r = f
	}

	if asJSON {
		data, err := io.ReadAll(r)
		if err != nil {
			return burrow.Burrow{}, err
		}
		return parse.JSON(data)
	}

	var opts []parse.Option
	if unfold {
		opts = append(opts, parse.Unfold())
	}
	return parse.Grid(r, opts...)
}

// printPath replays the moves from start, printing each intermediate diagram.
func printPath(start burrow.Burrow, path []moves.Move) {
	fmt.Print(start)
	b := start
	var total int64
	for i, m := range path {
		b = moves.Apply(b, m)
		total += m.Cost
		fmt.Printf("\n%2d. %s, total %d\n%s", i+1, m, total, b)
	}
	fmt.Println()
}

// tracer returns an expansion hook that logs every traceEvery expansions.
func tracer() func(burrow.Burrow, int64) {
	n := 0
	return func(b burrow.Burrow, cost int64) {
		n++
		if n%traceEvery == 0 {
			log.Printf("%d expanded, cost-so-far %d, bound %d", n, cost, burrow.LowerBound(b))
		}
	}
}

func envBool(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}
