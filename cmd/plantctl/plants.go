package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"planttracker/internal/models"
)

var (
	flagPlantID       int
	flagPlantName     string
	flagPlantType     string
	flagPlantHeight   float64
	flagPlantDate     string
	flagPlantLocation string
)

var plantsCmd = &cobra.Command{
	Use:   "plants",
	Short: "Manage plant records",
}

var plantsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all plants",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var plants []models.Plant
		if err := newAPIClient().do("GET", "/api/v1/plants", nil, &plants); err != nil {
			return err
		}
		return printJSON(plants)
	},
}

var plantsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one plant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid plant id %q", args[0])
		}
		var plant models.Plant
		err = newAPIClient().do("GET", fmt.Sprintf("/api/v1/plants/%d", id), nil, &plant)
		if errors.Is(err, errNotFound) {
			return fmt.Errorf("plant %d not found", id)
		}
		if err != nil {
			return err
		}
		return printJSON(plant)
	},
}

var plantsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Create a plant, or update one when --id is given",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		plant := models.Plant{
			PlantID:      flagPlantID,
			Name:         flagPlantName,
			Type:         flagPlantType,
			LocationName: flagPlantLocation,
		}
		if cmd.Flags().Changed("height") {
			h := flagPlantHeight
			plant.Height = &h
		}
		if flagPlantDate != "" {
			d, err := models.ParseDate(flagPlantDate)
			if err != nil {
				return err
			}
			plant.DateAcquired = &d
		}

		var saved models.Plant
		var err error
		if plant.PlantID == 0 {
			err = newAPIClient().do("POST", "/api/v1/plants", plant, &saved)
		} else {
			err = newAPIClient().do("PUT", fmt.Sprintf("/api/v1/plants/%d", plant.PlantID), plant, &saved)
		}
		if err != nil {
			return err
		}
		return printJSON(saved)
	},
}

var plantsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a plant and its dependent records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid plant id %q", args[0])
		}
		if err := newAPIClient().do("DELETE", fmt.Sprintf("/api/v1/plants/%d", id), nil, nil); err != nil {
			return err
		}
		fmt.Printf("plant %d deleted\n", id)
		return nil
	},
}

func init() {
	plantsSaveCmd.Flags().IntVar(&flagPlantID, "id", 0, "plant id (omit to create)")
	plantsSaveCmd.Flags().StringVar(&flagPlantName, "name", "", "plant name")
	plantsSaveCmd.Flags().StringVar(&flagPlantType, "type", "", "plant type")
	plantsSaveCmd.Flags().Float64Var(&flagPlantHeight, "height", 0, "height in centimeters")
	plantsSaveCmd.Flags().StringVar(&flagPlantDate, "date-acquired", "", "acquisition date (YYYY-MM-DD)")
	plantsSaveCmd.Flags().StringVar(&flagPlantLocation, "location", "", "location label")
	_ = plantsSaveCmd.MarkFlagRequired("name")
	_ = plantsSaveCmd.MarkFlagRequired("type")

	plantsCmd.AddCommand(plantsListCmd)
	plantsCmd.AddCommand(plantsGetCmd)
	plantsCmd.AddCommand(plantsSaveCmd)
	plantsCmd.AddCommand(plantsDeleteCmd)
}
