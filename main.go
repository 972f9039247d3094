package main

import "camancipate/cmd"

func main() {
	cmd.Execute()
}
