package main

import "github.com/internlink/internlink_backend/cmd"

func main() {
	cmd.Execute()
}
