package main

import (
	"fmt"
	"os"

	"raj/stmt-extract/cmd/categorize"
	"raj/stmt-extract/cmd/extract"
	"raj/stmt-extract/cmd/root"
)

func init() {
	root.Init()
	root.Cmd.AddCommand(extract.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
