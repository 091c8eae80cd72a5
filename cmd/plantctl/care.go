package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"planttracker/internal/models"
)

var (
	flagCareSoilChange string
	flagCareWatering   string
)

var careCmd = &cobra.Command{
	Use:   "care",
	Short: "Manage a plant's care record",
}

var careGetCmd = &cobra.Command{
	Use:   "get <plant-id>",
	Short: "Show the care record of a plant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parsePlantID(args[0])
		if err != nil {
			return err
		}
		var care models.Care
		err = newAPIClient().do("GET", fmt.Sprintf("/api/v1/plants/%d/care", id), nil, &care)
		if errors.Is(err, errNotFound) {
			return fmt.Errorf("plant %d has no care record", id)
		}
		if err != nil {
			return err
		}
		return printJSON(care)
	},
}

var careSaveCmd = &cobra.Command{
	Use:   "save <plant-id>",
	Short: "Create or overwrite the care record of a plant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parsePlantID(args[0])
		if err != nil {
			return err
		}

		var care models.Care
		if flagCareSoilChange != "" {
			d, err := models.ParseDate(flagCareSoilChange)
			if err != nil {
				return err
			}
			care.LastSoilChange = &d
		}
		if flagCareWatering != "" {
			d, err := models.ParseDate(flagCareWatering)
			if err != nil {
				return err
			}
			care.LastWatering = &d
		}

		var saved models.Care
		if err := newAPIClient().do("PUT", fmt.Sprintf("/api/v1/plants/%d/care", id), care, &saved); err != nil {
			return err
		}
		return printJSON(saved)
	},
}

var careDeleteCmd = &cobra.Command{
	Use:   "delete <plant-id>",
	Short: "Delete the care record of a plant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parsePlantID(args[0])
		if err != nil {
			return err
		}
		if err := newAPIClient().do("DELETE", fmt.Sprintf("/api/v1/plants/%d/care", id), nil, nil); err != nil {
			return err
		}
		fmt.Printf("care record of plant %d deleted\n", id)
		return nil
	},
}

func parsePlantID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid plant id %q", arg)
	}
	return id, nil
}

func init() {
	careSaveCmd.Flags().StringVar(&flagCareSoilChange, "last-soil-change", "", "last soil change (YYYY-MM-DD)")
	careSaveCmd.Flags().StringVar(&flagCareWatering, "last-watering", "", "last watering (YYYY-MM-DD)")

	careCmd.AddCommand(careGetCmd)
	careCmd.AddCommand(careSaveCmd)
	careCmd.AddCommand(careDeleteCmd)
}
