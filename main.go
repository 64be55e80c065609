package main

import "github.com/smartinvest/apiserver/cmd"

func main() {
	cmd.Execute()
}
