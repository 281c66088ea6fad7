// Command colorlabels demonstrates the cliout and progress packages.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/gousaiyang/colorlabels/cliout"
	"github.com/gousaiyang/colorlabels/version"
)

// Set via ldflags.
var (
	Version   string
	GitCommit string
	BuildDate string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	info := version.New("colorlabels")
	if Version != "" {
		info.Version = Version
	}
	if GitCommit != "" {
		info.GitCommit = GitCommit
	}
	if BuildDate != "" {
		info.BuildDate = BuildDate
	}

	a := newApp(cliout.Default())
	if err := newRootCmd(a, info).ExecuteContext(ctx); err != nil {
		a.console.Error("%v", err)
		stop()
		os.Exit(1)
	}
}
