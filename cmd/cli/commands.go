package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(courtsCmd)
	rootCmd.AddCommand(sportsCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(reservationsCmd)
	rootCmd.AddCommand(availabilityCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(metricsCmd)

	sweepCmd.Flags().Bool("dry-run", false, "Report transitions without writing them")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health")
	},
}

var courtsCmd = &cobra.Command{
	Use:   "courts",
	Short: "List the facilities in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/api/courts")
	},
}

var sportsCmd = &cobra.Command{
	Use:   "sports",
	Short: "List the sports in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/api/sports")
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List open matches with free seats",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/api/matches/available")
	},
}

var reservationsCmd = &cobra.Command{
	Use:   "reservations",
	Short: "List your reservations (requires --token)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/api/reservations/user")
	},
}

var availabilityCmd = &cobra.Command{
	Use:   "availability <courtID> <date> <start> <end>",
	Short: "Check whether a court is free for a window (times in RFC 3339)",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		q.Set("court_id", args[0])
		q.Set("date", args[1])
		q.Set("start", args[2])
		q.Set("end", args[3])
		return performRequest(http.MethodGet, "/api/reservations/available?"+q.Encode())
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run one lifecycle pass over reservations and matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/sweep"
		if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
			endpoint += "?dry_run=true"
		}
		return performRequest(http.MethodPost, endpoint)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics")
	},
}

func performRequest(method, endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	req, err := http.NewRequest(method, url, strings.NewReader(""))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
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
