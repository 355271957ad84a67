package main

import "github.com/ChakkritGit/calflow/cmd/calflow"

func main() {
	calflow.Execute()
}
