package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"hop.computer/seq/dialogue"
	"hop.computer/seq/flags"
	"hop.computer/seq/stress"
)

func main() {
	f, err := flags.ParseStressArgs(os.Args)
	if err != nil {
		logrus.Error(err)
		os.Exit(2)
	}

	sc, err := flags.LoadStressConfigFromFlags(f)
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
	if sc.LogLevel != "" {
		level, _ := logrus.ParseLevel(sc.LogLevel) // validated by config
		logrus.SetLevel(level)
	}

	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if !tty {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := stress.NewRunner(sc, logrus.WithField("cmd", "seq-stress"))

	if f.Interactive && tty {
		// log lines would tear the rendered view
		logrus.SetOutput(io.Discard)
		runs, err := dialogue.RunRounds(ctx, runner)
		if err != nil {
			logrus.SetOutput(os.Stderr)
			logrus.WithField("runs", runs).Error(err)
			os.Exit(1)
		}
		return
	}
	if f.Interactive {
		logrus.Warn("stdout is not a terminal, running once")
	}

	results, err := runner.Run(ctx)
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
	fmt.Print(dialogue.RenderResults(results, tty))
	if tty {
		fmt.Println()
	}
}
