/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/apex/log"
	"github.com/mergington-edu/mhs/pkg/mhsapi"
	"github.com/spf13/cobra"
)

// signupCmd represents the signup command
var signupCmd = &cobra.Command{
	Use:   "signup <activity> <email>",
	Short: "Sign a student up for an activity",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		client := mhsapi.New(serverURL)

		message, err := client.Signup(args[0], args[1])
		if err != nil {
			log.Fatalf("Signup failed: %s", err)
		}

		fmt.Println(message)
	},
}

func init() {
	rootCmd.AddCommand(signupCmd)
}
