package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/navijation/njcontainers/algorithm/heap"
)

func visualizeHeap(ctx context.Context, cmd *cli.Command) error {
	numbers, err := readNumbers(cmd)
	if err != nil {
		return err
	}

	heap.MakeHeap[int](&numbers, heap.Ordered[int]())

	// level-order rows: [0,1), [1,3), [3,7), ...
	for first := 0; first < numbers.Size(); first = 2*first + 1 {
		last := min(2*first+1, numbers.Size())

		row := make([]string, 0, last-first)
		for i := first; i < last; i++ {
			row = append(row, fmt.Sprintf("%d", numbers.Get(i)))
		}
		fmt.Println(strings.Join(row, " "))
	}

	return nil
}
