package main

import "github.com/mouse-blink/scrub/cmd"

func main() {
	cmd.Execute()
}
