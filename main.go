package main

import "github.com/Manu343726/xtensa/cmd"

func main() {
	cmd.Execute()
}
