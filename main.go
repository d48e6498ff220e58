package main

import "github.com/dfjacobs/tropo-gateway/cmd"

func main() {
	cmd.Execute()
}
