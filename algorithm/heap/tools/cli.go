package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "heap_tools",
		Usage: "inspect and sort integer sequences with the heap algorithms",
		Commands: []*cli.Command{
			{
				Name:   "sort",
				Action: sortNumbers,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "descending",
						Usage: "sort from largest to smallest",
					},
				},
			},
			{
				Name:   "visualize",
				Action: visualizeHeap,
			},
			{
				Name:   "check",
				Action: checkHeap,
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
