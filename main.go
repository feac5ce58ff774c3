// Package main is the entry point for the mutaprompt CLI.
package main

import "gooze.dev/pkg/mutaprompt/cmd"

func main() {
	cmd.Execute()
}
