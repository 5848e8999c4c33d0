package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	fromDate  string
	toDate    string
	matchType string
	sortBy    string
	order     string
)

func init() {
	rankingsCmd.Flags().StringVar(&fromDate, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	rankingsCmd.Flags().StringVar(&toDate, "to", "", "End date (YYYY-MM-DD, inclusive)")
	rankingsCmd.Flags().StringVar(&matchType, "type", "all", "Match type: all, singles or doubles")
	rankingsCmd.Flags().StringVar(&sortBy, "sort", "points", "Sort field: points, total, wins, draws, losses, winRate, notLoseRate")
	rankingsCmd.Flags().StringVar(&order, "order", "desc", "Sort order: asc or desc")

	feesCmd.Flags().StringVar(&fromDate, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	feesCmd.Flags().StringVar(&toDate, "to", "", "End date (YYYY-MM-DD, inclusive)")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(rankingsCmd)
	rootCmd.AddCommand(feesCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(countersCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the players in the club store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List the recorded matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/matches")
	},
}

var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Show the ranking table",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/rankings?" + periodQuery().Encode())
	},
}

var feesCmd = &cobra.Command{
	Use:   "fees",
	Short: "Show per-player fees for a period",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/fees?" + periodQuery().Encode())
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [matches|fees]",
	Short: "Download a CSV export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "matches":
			return performGetRequest("/export/matches.csv")
		case "fees":
			return performGetRequest("/export/fees.csv")
		default:
			return fmt.Errorf("unknown export %q, expected matches or fees", args[0])
		}
	},
}

var countersCmd = &cobra.Command{
	Use:   "counters",
	Short: "Show the persistent application counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/counters")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func periodQuery() url.Values {
	q := url.Values{}
	if fromDate != "" {
		q.Set("from", fromDate)
	}
	if toDate != "" {
		q.Set("to", toDate)
	}
	if matchType != "" {
		q.Set("type", matchType)
	}
	if sortBy != "" {
		q.Set("sort", sortBy)
	}
	if order != "" {
		q.Set("order", order)
	}
	return q
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
