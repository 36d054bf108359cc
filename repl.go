package luapat

import (
	"fmt"
	"os"

	"github.com/chzyer/readline"
)

// REPL runs an interactive pattern tester. The first prompt reads a pattern,
// the second reads subject strings to match against it; an empty subject
// line returns to the pattern prompt.
func REPL() error {
	rl, err := readline.New("pat> ")
	if err != nil {
		return err
	}
	var pat *Pattern
	for {
		src, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if pat != nil {
					pat = nil
					rl.SetPrompt("pat> ")
					fmt.Fprint(os.Stderr, "Press ctrl-c again to quit.\n")
					continue
				}
				break
			}
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		if pat == nil {
			if src == "" {
				continue
			}
			if pat, err = Parse(src); err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			rl.SetPrompt("str> ")
			continue
		}

		if src == "" {
			pat = nil
			rl.SetPrompt("pat> ")
			continue
		}
		mr, err := pat.Find(src)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		} else if mr == nil {
			fmt.Fprintln(os.Stderr, "no match")
		} else {
			start, end := mr.Position()
			fmt.Fprintf(os.Stderr, "match [%d:%d] %q\n", start, end, mr.Text())
			for i, sub := range mr.Captures() {
				if sub.Pos {
					fmt.Fprintf(os.Stderr, "  %d: position %d\n", i+1, sub.Start+1)
				} else {
					fmt.Fprintf(os.Stderr, "  %d: %q\n", i+1, sub.Text)
				}
			}
		}
	}
	return nil
}
