// Command rex is a small driver for the rex regex engine: it compiles a
// pattern with both engines and reports whether a given text matches,
// printing capture groups from the linear engine when available.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mistwood/rex"
	"github.com/mistwood/rex/internal/logging"
)

func main() {
	logLevel := flag.String("loglevel", "INFO", "diagnostic log level: DEBUG, INFO, WARN, ERROR")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: rex [-loglevel LEVEL] <pattern> <text>")
		os.Exit(2)
	}
	pattern, text := args[0], args[1]

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -loglevel %q: %v\n", *logLevel, err)
		os.Exit(2)
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	re, err := rex.Compile(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "compile error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("nfa:    %v\n", re.Match(text))

	m, ok := re.MatchLinear(text)
	if !ok {
		if re.Linear == nil {
			fmt.Println("linear: unsupported (pattern uses alternation or a quantified group)")
		} else {
			fmt.Println("linear: false")
		}
		return
	}
	fmt.Println("linear: true")
	for _, g := range m.Groups {
		name := g.Name
		if name == "" {
			name = fmt.Sprintf("%d", g.Index)
		}
		if g.End < 0 {
			fmt.Printf("  group %s: (unset)\n", name)
			continue
		}
		fmt.Printf("  group %s: %q\n", name, text[g.Start:g.End])
	}
}
