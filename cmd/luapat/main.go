// Package main is the main entrypoint to the luapat pattern tester.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tanema/luapat"
)

var (
	substitute  string
	limit       int
	allMatches  bool
	interactive bool
)

func init() {
	flag.StringVar(&substitute, "s", "", "substitute matches with the replacement template")
	flag.IntVar(&limit, "n", -1, "maximum number of matches or substitutions")
	flag.BoolVar(&allMatches, "a", false, "list all matches instead of the first")
	flag.BoolVar(&interactive, "i", false, "enter interactive mode")
}

func main() {
	flag.Usage = printUsage
	flag.Parse()

	args := flag.Args()
	if interactive || len(args) == 0 {
		checkErr(luapat.REPL())
		return
	}

	pat, err := luapat.Parse(args[0])
	checkErr(err)

	var subject string
	if len(args) > 1 {
		subject = strings.Join(args[1:], " ")
	} else if stat, _ := os.Stdin.Stat(); (stat.Mode() & os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		checkErr(err)
		subject = string(data)
	} else {
		printUsage()
		os.Exit(1)
	}

	switch {
	case substitute != "":
		out, err := pat.Gsub(subject, substitute, limit)
		checkErr(err)
		fmt.Fprintln(os.Stdout, out)
	case allMatches:
		it := pat.Iter(subject)
		count := 0
		for limit < 0 || count < limit {
			mr, err := it.Next()
			checkErr(err)
			if mr == nil {
				break
			}
			printMatch(mr)
			count++
		}
	default:
		mr, err := pat.Find(subject)
		checkErr(err)
		if mr == nil {
			os.Exit(1)
		}
		printMatch(mr)
	}
}

func printMatch(mr *luapat.MatchResult) {
	start, end := mr.Position()
	fmt.Fprintf(os.Stdout, "[%d:%d]\t%q", start, end, mr.Text())
	for _, sub := range mr.Captures() {
		if sub.Pos {
			fmt.Fprintf(os.Stdout, "\t@%d", sub.Start+1)
		} else {
			fmt.Fprintf(os.Stdout, "\t%q", sub.Text)
		}
	}
	fmt.Fprintln(os.Stdout)
}

func printUsage() {
	fmt.Fprint(os.Stderr, "Usage: luapat [options] pattern [subject]\n\nThe subject is read from stdin when not given as an argument.\n\n")
	flag.PrintDefaults()
}

func checkErr(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
