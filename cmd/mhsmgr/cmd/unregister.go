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

// unregisterCmd represents the unregister command
var unregisterCmd = &cobra.Command{
	Use:   "unregister <activity> <email>",
	Short: "Remove a student from an activity",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		client := mhsapi.New(serverURL)

		message, err := client.Unregister(args[0], args[1])
		if err != nil {
			log.Fatalf("Unregister failed: %s", err)
		}

		fmt.Println(message)
	},
}

func init() {
	rootCmd.AddCommand(unregisterCmd)
}
