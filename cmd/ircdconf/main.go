package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ircdconf/ircdconf"
	"github.com/ircdconf/ircdconf/resolvconf"
)

type options struct {
	logLevel uint32
	watch    bool
}

func main() {
	var opt options
	root := &cobra.Command{
		Use:   "ircdconf <config>",
		Short: "IRC daemon configuration loader, validator and rehash driver",
		Long: `Loads, validates and commits an IRC daemon's configuration file.

Supports the same two-phase load/validate/commit pipeline the daemon
itself uses for both its initial boot and every subsequent live
rehash, so a configuration can be checked for errors before it is ever
handed to a running server.
`,
	}
	root.PersistentFlags().Uint32VarP(&opt.logLevel, "log-level", "l", 4, "log level; 0=None .. 6=Trace")

	root.AddCommand(newTestCmd(&opt))
	root.AddCommand(newRunCmd(&opt))

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newTestCmd(opt *options) *cobra.Command {
	return &cobra.Command{
		Use:     "test <config>",
		Short:   "Load and validate a configuration without committing it",
		Args:    cobra.ExactArgs(1),
		Example: "  ircdconf test /etc/ircd.conf",
		RunE: func(cmd *cobra.Command, args []string) error {
			applyLogLevel(opt)
			return runTest(args[0])
		},
	}
}

func newRunCmd(opt *options) *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:     "run <config>",
		Short:   "Load, validate and commit a configuration, then watch for rehash signals",
		Args:    cobra.ExactArgs(1),
		Example: "  ircdconf run /etc/ircd.conf",
		RunE: func(cmd *cobra.Command, args []string) error {
			applyLogLevel(opt)
			return runServe(args[0], o.watch)
		},
	}
	cmd.Flags().BoolVar(&o.watch, "watch", false, "also rehash automatically when the config file changes on disk")
	return cmd
}

func applyLogLevel(opt *options) {
	if opt.logLevel <= 6 {
		ircdconf.Log.SetLevel(logrus.Level(opt.logLevel))
	}
}

func runTest(path string) error {
	sink := ircdconf.NewErrorSink()
	loader := ircdconf.NewLoader(sink)
	files, err := loader.Load(path)
	if err != nil {
		return err
	}
	ok := ircdconf.Validate(files, sink)
	fmt.Printf("%d errors encountered, %d warnings\n", sink.Count(), sink.Warnings())
	for _, e := range sink.Errors() {
		fmt.Fprintln(os.Stderr, e.Error())
	}
	if !ok {
		os.Exit(1)
	}
	return nil
}

func runServe(path string, watch bool) error {
	store := ircdconf.NewConfigurationStore()
	r := ircdconf.NewRehasher(path, store)

	sink, ok := r.Run()
	fmt.Printf("%d errors encountered, %d warnings\n", sink.Count(), sink.Warnings())
	for _, e := range sink.Errors() {
		fmt.Fprintln(os.Stderr, e.Error())
	}
	if !ok {
		// Validation failure on initial boot is fatal; a failed rehash
		// later on is merely logged and leaves the prior config running.
		os.Exit(1)
	}
	ircdconf.SetBooted(true)

	resolvconf.Init()

	if watch {
		if err := r.WatchFile(); err != nil {
			ircdconf.Log.WithError(err).Warn("could not watch config file for changes")
		} else {
			defer r.StopWatch()
		}
	}

	stop := make(chan struct{})
	r.RehashOnSIGHUP(stop)
	return nil
}
