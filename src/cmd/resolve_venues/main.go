package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kmalloy/seatscan/src/models"
	"github.com/kmalloy/seatscan/src/services"
	"github.com/kmalloy/seatscan/src/transport"
	"github.com/kmalloy/seatscan/src/utils"
)

type VenueIDRowDTO struct {
	Venue         string `csv:"venue"`
	VenueID       string `csv:"venue_id"`
	SearchedVenue string `csv:"searched_venue"`
}

type RunArgs struct {
	Names   []string
	OutFile string
}

type RunResults struct {
	Venues *models.Table
}

var runCmd = &cobra.Command{
	Use:   `go run src/cmd/resolve_venues/main.go --names "Madison Square Garden,Red Rocks Amphitheatre"`,
	Short: "Resolves venue names to venue ids, keeping only venues with upcoming events.",
	Run: func(cmd *cobra.Command, args []string) {
		names, err := cmd.Flags().GetStringSlice("names")
		if err != nil {
			log.Fatalf("error getting names: %v", err)
		}

		outFile, err := cmd.Flags().GetString("outFile")
		if err != nil {
			log.Fatalf("error getting outFile: %v", err)
		}

		result, err := Run(RunArgs{
			Names:   names,
			OutFile: outFile,
		})

		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		render(result)
	},
}

func Run(args RunArgs) (RunResults, error) {
	if err := utils.InitEnvironmentVariables(); err != nil {
		return RunResults{}, fmt.Errorf("failed to init environment variables: %w", err)
	}

	clientID, err := utils.GetClientID()
	if err != nil {
		return RunResults{}, err
	}

	client := services.NewClient(transport.NewClient(clientID), nil)

	venues, err := client.GetVenueIDs(context.Background(), args.Names...)
	if err != nil {
		return RunResults{}, fmt.Errorf("failed to resolve venues: %w", err)
	}

	if args.OutFile != "" {
		if err := exportCsv(venues, args.OutFile); err != nil {
			return RunResults{}, err
		}
	}

	return RunResults{Venues: venues}, nil
}

func exportCsv(venues *models.Table, outFile string) error {
	rows := make([]*VenueIDRowDTO, 0, venues.Len())
	for _, row := range venues.Rows {
		rows = append(rows, &VenueIDRowDTO{
			Venue:         utils.FormatCell(row["venue"]),
			VenueID:       utils.FormatCell(row["venue_id"]),
			SearchedVenue: utils.FormatCell(row["searched_venue"]),
		})
	}

	file, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outFile, err)
	}

	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("failed to write %s: %w", outFile, err)
	}

	log.Infof("Exported %d rows to %s", len(rows), outFile)

	return nil
}

func render(result RunResults) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Venue", "Venue ID", "Searched Venue"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, row := range result.Venues.Rows {
		table.Append([]string{
			utils.FormatCell(row["venue"]),
			utils.FormatCell(row["venue_id"]),
			utils.FormatCell(row["searched_venue"]),
		})
	}

	table.Render()
}

func main() {
	runCmd.PersistentFlags().StringSlice("names", nil, "The venue names to resolve, comma separated.")
	runCmd.PersistentFlags().String("outFile", "", "Optional CSV file to export the matches to.")
	runCmd.MarkPersistentFlagRequired("names")
	runCmd.Execute()
}
