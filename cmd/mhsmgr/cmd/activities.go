/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"sort"

	"github.com/apex/log"
	"github.com/mergington-edu/mhs/pkg/mhsapi"
	"github.com/spf13/cobra"
)

// activitiesCmd represents the activities command
var activitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "List activities with their schedules and signup counts",
	Run: func(cmd *cobra.Command, args []string) {
		client := mhsapi.New(serverURL)

		directory, err := client.ListActivities()
		if err != nil {
			log.Fatalf("Unable to list activities: %s", err)
		}

		names := make([]string, 0, len(directory))
		for name := range directory {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			activity := directory[name]
			fmt.Printf("%s (%d/%d signed up)\n", name, len(activity.Participants), activity.MaxParticipants)
			fmt.Printf("    %s\n", activity.Description)
			fmt.Printf("    Schedule: %s\n", activity.Schedule)
		}
	},
}

func init() {
	rootCmd.AddCommand(activitiesCmd)
}
