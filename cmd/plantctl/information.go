package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"planttracker/internal/models"
)

var (
	flagInfoFromAnother bool
	flagInfoSoilType    string
	flagInfoPotSize     string
	flagInfoWaterGlobe  bool
)

var informationCmd = &cobra.Command{
	Use:     "information",
	Aliases: []string{"info"},
	Short:   "Manage a plant's information record",
}

var informationGetCmd = &cobra.Command{
	Use:   "get <plant-id>",
	Short: "Show the information record of a plant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parsePlantID(args[0])
		if err != nil {
			return err
		}
		var info models.Information
		err = newAPIClient().do("GET", fmt.Sprintf("/api/v1/plants/%d/information", id), nil, &info)
		if errors.Is(err, errNotFound) {
			return fmt.Errorf("plant %d has no information record", id)
		}
		if err != nil {
			return err
		}
		return printJSON(info)
	},
}

var informationSaveCmd = &cobra.Command{
	Use:   "save <plant-id>",
	Short: "Create or overwrite the information record of a plant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parsePlantID(args[0])
		if err != nil {
			return err
		}

		info := models.Information{
			FromAnotherPlant:   flagInfoFromAnother,
			SoilType:           flagInfoSoilType,
			PotSize:            flagInfoPotSize,
			WaterGlobeRequired: flagInfoWaterGlobe,
		}

		var saved models.Information
		if err := newAPIClient().do("PUT", fmt.Sprintf("/api/v1/plants/%d/information", id), info, &saved); err != nil {
			return err
		}
		return printJSON(saved)
	},
}

var informationDeleteCmd = &cobra.Command{
	Use:   "delete <plant-id>",
	Short: "Delete the information record of a plant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parsePlantID(args[0])
		if err != nil {
			return err
		}
		if err := newAPIClient().do("DELETE", fmt.Sprintf("/api/v1/plants/%d/information", id), nil, nil); err != nil {
			return err
		}
		fmt.Printf("information record of plant %d deleted\n", id)
		return nil
	},
}

func init() {
	informationSaveCmd.Flags().BoolVar(&flagInfoFromAnother, "from-another-plant", false, "propagated from another plant")
	informationSaveCmd.Flags().StringVar(&flagInfoSoilType, "soil-type", "", "soil type")
	informationSaveCmd.Flags().StringVar(&flagInfoPotSize, "pot-size", "", "pot size")
	informationSaveCmd.Flags().BoolVar(&flagInfoWaterGlobe, "water-globe", false, "water globe required")

	informationCmd.AddCommand(informationGetCmd)
	informationCmd.AddCommand(informationSaveCmd)
	informationCmd.AddCommand(informationDeleteCmd)
}
