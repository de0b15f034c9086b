package main

import "github.com/OpenTraceLab/pinaf/cmd/make-pins/cmd"

func main() {
	cmd.Execute()
}
