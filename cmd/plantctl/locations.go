package main

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"planttracker/internal/models"
)

var flagLocationLight string

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "Manage a plant's placement records",
}

var locationsListCmd = &cobra.Command{
	Use:   "list <plant-id>",
	Short: "List every placement of a plant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parsePlantID(args[0])
		if err != nil {
			return err
		}
		var locations []models.Location
		if err := newAPIClient().do("GET", fmt.Sprintf("/api/v1/plants/%d/locations", id), nil, &locations); err != nil {
			return err
		}
		return printJSON(locations)
	},
}

var locationsGetCmd = &cobra.Command{
	Use:   "get <plant-id> <name>",
	Short: "Show one placement by name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parsePlantID(args[0])
		if err != nil {
			return err
		}
		var location models.Location
		err = newAPIClient().do("GET", locationPath(id, args[1]), nil, &location)
		if errors.Is(err, errNotFound) {
			return fmt.Errorf("plant %d has no location %q", id, args[1])
		}
		if err != nil {
			return err
		}
		return printJSON(location)
	},
}

var locationsSaveCmd = &cobra.Command{
	Use:   "save <plant-id> <name>",
	Short: "Create or overwrite one placement by name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parsePlantID(args[0])
		if err != nil {
			return err
		}

		location := models.Location{LightLevel: flagLocationLight}

		var saved models.Location
		if err := newAPIClient().do("PUT", locationPath(id, args[1]), location, &saved); err != nil {
			return err
		}
		return printJSON(saved)
	},
}

var locationsDeleteCmd = &cobra.Command{
	Use:   "delete <plant-id> <name>",
	Short: "Delete one placement by name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parsePlantID(args[0])
		if err != nil {
			return err
		}
		if err := newAPIClient().do("DELETE", locationPath(id, args[1]), nil, nil); err != nil {
			return err
		}
		fmt.Printf("location %q of plant %d deleted\n", args[1], id)
		return nil
	},
}

func locationPath(plantID int, name string) string {
	return fmt.Sprintf("/api/v1/plants/%d/locations/%s", plantID, url.PathEscape(name))
}

func init() {
	locationsSaveCmd.Flags().StringVar(&flagLocationLight, "light-level", "", "light level at this placement")

	locationsCmd.AddCommand(locationsListCmd)
	locationsCmd.AddCommand(locationsGetCmd)
	locationsCmd.AddCommand(locationsSaveCmd)
	locationsCmd.AddCommand(locationsDeleteCmd)
}
