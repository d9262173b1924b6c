package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/navijation/njcontainers/container/vector"
)

// readNumbers collects the integers to operate on, either from the command
// arguments or, when none are given, whitespace-separated from stdin.
func readNumbers(cmd *cli.Command) (out vector.Vector[int], _ error) {
	if cmd.Args().Len() > 0 {
		for _, arg := range cmd.Args().Slice() {
			number, err := strconv.Atoi(arg)
			if err != nil {
				return out, fmt.Errorf("%q is not an integer: %w", arg, err)
			}
			out.PushBack(number)
		}
		return out, nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		number, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return out, fmt.Errorf("%q is not an integer: %w", scanner.Text(), err)
		}
		out.PushBack(number)
	}

	return out, scanner.Err()
}
