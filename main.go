package main

import "github.com/CosmoTheDev/actionfix/cmd"

func main() {
	cmd.Execute()
}
