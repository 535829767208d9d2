package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var (
	Version   = "DEV"
	BuildTime = "unknown"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "nttbench: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := &cli.App{}
	app.Name = "nttbench"
	app.Usage = "Profile the Kyber NTT engine"
	app.UsageText = "nttbench [options]"
	app.Version = fmt.Sprintf("%s (built %s)", Version, BuildTime)
	app.Description = `nttbench samples secret vectors from a deterministic counter source,
	runs them through the forward and inverse NTT and reports how long each stage took.
	Every round trip is checked to restore the sampled vector.`
	app.Flags = flags()
	app.Action = action
	return app
}
