// Command automata runs one-dimensional cellular automata in the terminal.
//
//	automata simple [flags]     elementary automaton by Wolfram code
//	automata collider [flags]   weighted particle collisions
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/juju/gnuflag"
	"github.com/juju/loggo"

	"collider/internal/config"
)

var logger = loggo.GetLogger("automata.cmd")

type logConfig struct {
	Spec string `env:"COLLIDER_LOG" envDefault:"<root>=WARNING"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type command interface {
	Bind(fs *gnuflag.FlagSet)
	Run(w io.Writer) error
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}
	var cmd command
	switch args[0] {
	case "simple":
		cmd = newSimpleOptions()
	case "collider":
		opts, err := newColliderOptions()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		cmd = opts
	case "help", "-h", "--help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", args[0])
		usage(stderr)
		return 2
	}

	logCfg := logConfig{}
	if err := config.ParseEnv(&logCfg); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	fs := gnuflag.NewFlagSet(args[0], gnuflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&logCfg.Spec, "log", logCfg.Spec, "logging configuration, e.g. '<root>=DEBUG'")
	cmd.Bind(fs)
	if err := fs.Parse(true, args[1:]); err != nil {
		if err == gnuflag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments %q\n", fs.Args())
		return 2
	}
	if err := loggo.ConfigureLoggers(logCfg.Spec); err != nil {
		fmt.Fprintf(stderr, "invalid log configuration: %v\n", err)
		return 2
	}
	if err := cmd.Run(stdout); err != nil {
		logger.Errorf("%s: %v", args[0], err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: automata <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	fmt.Fprintln(w, "  simple     run an elementary cellular automaton by Wolfram number")
	fmt.Fprintln(w, "  collider   run a cellular automaton that simulates collisions")
}
