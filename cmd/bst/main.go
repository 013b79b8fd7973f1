// Command bst demonstrates the balanced binary search tree: it builds trees
// from random or given values, prints them, and shows how inserts at one end
// unbalance a tree until it is rebalanced.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// only try dotenv if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "error loading .env file: %v\n", err)
			os.Exit(1)
		}
	}
	newApp().RunAndExitOnError()
}

func newApp() *cli.App {
	app := &cli.App{
		Name:  "bst",
		Usage: "build, print, and rebalance binary search trees",
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity (debug, info, warn, error)",
			Value:   "info",
			EnvVars: []string{"BST_LOG_LEVEL"},
		},
	}
	app.Before = configureLogging
	app.Commands = []*cli.Command{
		&cli.Command{
			Name:   "demo",
			Usage:  "build a tree from random values, unbalance it, then rebalance it",
			Action: runDemo,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "size",
					Usage:   "number of random values to generate",
					Value:   10,
					EnvVars: []string{"BST_SIZE"},
				},
				&cli.IntFlag{
					Name:    "max",
					Usage:   "random values are generated in [0, max)",
					Value:   100,
					EnvVars: []string{"BST_MAX"},
				},
				&cli.Int64Flag{
					Name:    "seed",
					Usage:   "random seed, zero picks a random one",
					EnvVars: []string{"BST_SEED"},
				},
				&cli.IntSliceFlag{
					Name:  "unbalance",
					Usage: "values inserted to unbalance the tree",
					Value: cli.NewIntSlice(150, 200, 250, 300),
				},
				&cli.BoolFlag{
					Name:  "print-tree",
					Usage: "pretty print the tree after each step",
				},
			},
		},
		&cli.Command{
			Name:      "build",
			Usage:     "build a tree from the given values and print it",
			ArgsUsage: "VALUES...",
			Action:    runBuild,
		},
	}
	return app
}

func configureLogging(cctx *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cctx.String("log-level"))); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	h := slog.NewTextHandler(cctx.App.ErrWriter, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
	return nil
}
