/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/mergington-edu/mhs/cmd/mhsapid/cmd"

func main() {
	cmd.Execute()
}
