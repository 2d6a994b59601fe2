// Copyright (c) 2025 BVK Chaitanya

// Command diaglog routes diagnostic messages from the command line
// through the diag router, so shell scripts and cron jobs can share the
// same stamped, deduplicated log files as the programs they wrap.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/bvk/diaglog/diag"
	"github.com/visvasity/cli"
	"golang.org/x/term"
)

func main() {
	cmds := []cli.Command{
		new(Send),
		new(Tee),
		new(Levels),
	}
	if err := cli.Run(context.Background(), cmds, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

type Send struct {
	routerFlags

	kind string
}

func (c *Send) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("send", flag.ContinueOnError)
	c.routerFlags.SetFlags(fset)
	fset.StringVar(&c.kind, "kind", "log", "event kind: warn, fatal, log, debug or trace")
	return "send", fset, cli.CmdFunc(c.run)
}

func (c *Send) Purpose() string {
	return "Route one diagnostic message"
}

func (c *Send) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("this command takes the message as arguments")
	}
	r, err := c.newRouter()
	if err != nil {
		return err
	}

	msg := strings.Join(args, " ") + "\n"
	switch c.kind {
	case "warn":
		return r.Warn(msg)
	case "fatal":
		r.Fatal(msg)
		return nil
	case "log":
		return r.Log(msg)
	case "debug":
		return r.Debug(msg)
	case "trace":
		return r.Trace(msg)
	default:
		return fmt.Errorf("unknown event kind %q: %w", c.kind, os.ErrInvalid)
	}
}

type Tee struct {
	routerFlags
}

func (c *Tee) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("tee", flag.ContinueOnError)
	c.routerFlags.SetFlags(fset)
	return "tee", fset, cli.CmdFunc(c.run)
}

func (c *Tee) Purpose() string {
	return "Route every standard input line as a log event"
}

func (c *Tee) run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("this command reads standard input and takes no arguments")
	}
	r, err := c.newRouter()
	if err != nil {
		return err
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "diaglog: reading from terminal; end input with ctrl-d")
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if err := r.Log(scanner.Text() + "\n"); err != nil {
			return err
		}
	}
	return scanner.Err()
}

type Levels struct{}

func (c *Levels) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("levels", flag.ContinueOnError)
	return "levels", fset, cli.CmdFunc(c.run)
}

func (c *Levels) Purpose() string {
	return "Print the coerced verbosity levels for the given tokens"
}

func (c *Levels) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("this command takes level tokens as arguments")
	}
	for _, arg := range args {
		fmt.Printf("%q\tdebug=%d\tlog=%d\n", arg, diag.ParseDebugLevel(arg), diag.ParseLogLevel(arg))
	}
	return nil
}
