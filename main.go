package main

import "github.com/cashpipeplusplus/generic-webdriver-server/cmd"

func main() {
	cmd.Execute()
}
