package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/navijation/njcontainers/algorithm/heap"
)

func sortNumbers(ctx context.Context, cmd *cli.Command) error {
	numbers, err := readNumbers(cmd)
	if err != nil {
		return err
	}

	comparator := heap.Ordered[int]()
	if cmd.Bool("descending") {
		comparator = heap.Reverse(comparator)
	}

	heap.MakeHeap[int](&numbers, comparator)
	heap.SortHeap[int](&numbers, comparator)

	for number := range numbers.Items() {
		fmt.Println(number)
	}

	return nil
}
