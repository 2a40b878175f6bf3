// Command pathfind answers shortest-path questions about a "who knows whom"
// graph: the built-in social network or one loaded from a YAML file.
//
//	pathfind path Jayden Adam
//	pathfind --symmetric walk Min --max-depth 2
//	pathfind --graph team.yaml matrix --workers 8
//	pathfind export > social.yaml
package main

import (
	"os"
)

// Exit codes.
const (
	exitSuccess = 0
	exitError   = 1
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(exitError)
	}
	os.Exit(exitSuccess)
}
