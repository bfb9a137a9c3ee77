package main

import "github.com/yutoain/savings-app/cmd"

func main() {
	cmd.Execute()
}
