// Command lfsmctl loads a transition table from a YAML file and drives it
// interactively from stdin, logging every dispatch step. It exists to
// exercise the fsm package end to end outside of tests; it is additive
// scope, not part of the core engine (see SPEC_FULL.md §6).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/larshei/lfsm"
	"github.com/larshei/lfsm/config"
	"github.com/larshei/lfsm/graph"
	"github.com/larshei/lfsm/queue"
	"github.com/rs/zerolog"
)

func main() {
	tablePath := flag.String("table", "", "path to a YAML transition table")
	cfgPath := flag.String("config", "", "optional path to a lfsm.toml settings file")
	initial := flag.Int("initial", 0, "initial state")
	dot := flag.Bool("dot", false, "print the table as Graphviz DOT and exit")
	mermaid := flag.Bool("mermaid", false, "print the table as Mermaid and exit")
	flag.Parse()

	if *tablePath == "" {
		fmt.Fprintln(os.Stderr, "lfsmctl: -table is required")
		os.Exit(2)
	}

	doc, err := loadTable(*tablePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lfsmctl:", err)
		os.Exit(1)
	}
	transitions, callbacks := doc.build()

	if *dot {
		_ = graph.WriteDOT(os.Stdout, transitions, fsm.State(*initial))
		return
	}
	if *mermaid {
		_ = graph.WriteMermaid(os.Stdout, transitions, fsm.State(*initial))
		return
	}

	settings := config.Defaults
	if *cfgPath != "" {
		settings, err = config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "lfsmctl:", err)
			os.Exit(1)
		}
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	q := queue.NewRing(settings.QueueSize)
	ctx, err := fsm.Init(transitions, callbacks, q, nil, fsm.State(*initial),
		fsm.WithLogger(logger), fsm.WithQueueSize(settings.QueueSize))
	if err != nil {
		fmt.Fprintln(os.Stderr, "lfsmctl: init:", err)
		os.Exit(1)
	}
	defer ctx.Deinit()

	fmt.Fprintf(os.Stderr, "ready; current state = %d. Type an event number per line (Ctrl-D to quit).\n", ctx.CurrentState())

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, "lfsmctl: not a number:", line)
			continue
		}
		if err := ctx.AddEvent(fsm.Event(n)); err != nil {
			fmt.Fprintln(os.Stderr, "lfsmctl: add event:", err)
			continue
		}
		for {
			result, err := ctx.Run()
			if err != nil {
				fmt.Fprintln(os.Stderr, "lfsmctl: run:", err)
				break
			}
			fmt.Fprintf(os.Stderr, "status=%s state=%d\n", result.Status, ctx.CurrentState())
			if result.Status != fsm.MoreQueued {
				break
			}
		}
	}
}
