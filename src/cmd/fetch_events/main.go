package main

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kmalloy/seatscan/src/models"
	"github.com/kmalloy/seatscan/src/services"
	"github.com/kmalloy/seatscan/src/transport"
	"github.com/kmalloy/seatscan/src/utils"
)

const maxDisplayRows = 25

type RunArgs struct {
	Join      string
	IDs       []string
	EventType string
	PerPage   int
	OutDir    string
}

type RunResults struct {
	Events  *models.Response
	Summary *services.StatsSummary
	OutFile string
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/fetch_events/main.go --join venue --ids 9,12 --outDir data",
	Short: "Fetches all events joined to the given performer, venue or event ids.",
	Run: func(cmd *cobra.Command, args []string) {
		join, err := cmd.Flags().GetString("join")
		if err != nil {
			log.Fatalf("error getting join: %v", err)
		}

		ids, err := cmd.Flags().GetStringSlice("ids")
		if err != nil {
			log.Fatalf("error getting ids: %v", err)
		}

		eventType, err := cmd.Flags().GetString("eventType")
		if err != nil {
			log.Fatalf("error getting eventType: %v", err)
		}

		perPage, err := cmd.Flags().GetInt("perPage")
		if err != nil {
			log.Fatalf("error getting perPage: %v", err)
		}

		outDir, err := cmd.Flags().GetString("outDir")
		if err != nil {
			log.Fatalf("error getting outDir: %v", err)
		}

		result, err := Run(RunArgs{
			Join:      join,
			IDs:       ids,
			EventType: eventType,
			PerPage:   perPage,
			OutDir:    outDir,
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

	resp, err := client.GetEventsBy(context.Background(), services.EventJoin(args.Join), models.IDList(args.IDs), args.PerPage, args.EventType)
	if err != nil {
		return RunResults{}, fmt.Errorf("failed to fetch events: %w", err)
	}

	results := RunResults{Events: resp}

	if summary, err := services.SummarizeEventStats(resp.Table); err != nil {
		log.Warnf("no stats summary available: %v", err)
	} else {
		results.Summary = summary
	}

	if args.OutDir != "" {
		outFile, err := utils.ExportTableToCsv(resp.Table, args.OutDir, "events")
		if err != nil {
			return RunResults{}, err
		}

		results.OutFile = outFile
	}

	return results, nil
}

func render(result RunResults) {
	events := result.Events.Table

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Short Title", "Date (UTC)", "Status"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for i, row := range events.Rows {
		if i >= maxDisplayRows {
			break
		}

		table.Append([]string{
			utils.FormatCell(row["id"]),
			utils.FormatCell(row["short_title"]),
			utils.FormatCell(row["datetime_utc"]),
			utils.FormatCell(row["status"]),
		})
	}

	table.Render()

	if events.Len() > maxDisplayRows {
		fmt.Printf("... and %d more rows\n", events.Len()-maxDisplayRows)
	}

	fmt.Printf("fetched %d events\n", events.Len())

	if result.Summary != nil {
		fmt.Printf(
			"priced events: %d, listings: %.0f, avg price: $%.2f, median price: $%.2f, range: $%.2f - $%.2f\n",
			result.Summary.PricedEventCount,
			result.Summary.TotalListings,
			result.Summary.MeanAveragePrice,
			result.Summary.MedianAveragePrice,
			result.Summary.LowestPrice,
			result.Summary.HighestPrice,
		)
	}

	if result.OutFile != "" {
		fmt.Printf("wrote %s\n", result.OutFile)
	}
}

func main() {
	runCmd.PersistentFlags().String("join", "", "The field to join events on: performers, venue or events.")
	runCmd.PersistentFlags().StringSlice("ids", nil, "The ids to look up, comma separated.")
	runCmd.PersistentFlags().String("eventType", "", "Optional event type filter, e.g. concert.")
	runCmd.PersistentFlags().Int("perPage", services.DefaultEventsPerPage, "The page size to request.")
	runCmd.PersistentFlags().String("outDir", "", "Optional directory to export the events CSV to.")
	runCmd.MarkPersistentFlagRequired("join")
	runCmd.MarkPersistentFlagRequired("ids")
	runCmd.Execute()
}
