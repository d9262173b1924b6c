package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/navijation/njcontainers/algorithm/heap"
)

func checkHeap(ctx context.Context, cmd *cli.Command) error {
	numbers, err := readNumbers(cmd)
	if err != nil {
		return err
	}

	if heap.IsHeap[int](&numbers, heap.Ordered[int]()) {
		fmt.Println("max-heap")
	} else if heap.IsHeap[int](&numbers, heap.Reverse(heap.Ordered[int]())) {
		fmt.Println("min-heap")
	} else {
		fmt.Println("not a heap")
	}

	return nil
}
