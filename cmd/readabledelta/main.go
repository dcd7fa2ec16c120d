package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
	"k8s.io/utils/clock"
)

func main() {
	klog.InitFlags(flag.CommandLine)

	rootCmd := newRootCmd(clock.RealClock{})
	addKlogFlags(rootCmd.PersistentFlags())
	err := rootCmd.Execute()
	klog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// addKlogFlags exposes the klog flags (-v, --logtostderr, ...) on fs.
func addKlogFlags(fs *pflag.FlagSet) {
	flag.CommandLine.VisitAll(func(f *flag.Flag) {
		fs.AddGoFlag(f)
	})
}
