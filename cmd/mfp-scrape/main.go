package main

import "github.com/OpenTraceLab/pinaf/cmd/mfp-scrape/cmd"

func main() {
	cmd.Execute()
}
