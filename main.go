// Command exercises runs the exercise packages from the command line.
//
// Run:
//
//	go run . demo
//	go run . square --delay 200ms 2 3 4
package main

import "github.com/marcodamonte/exercises/internal/cli"

func main() {
	cli.Execute()
}
