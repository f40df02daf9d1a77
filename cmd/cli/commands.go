package main

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
)

var (
	limit  int
	season int
)

func init() {
	fixturesCmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of items to return")
	fixturesCmd.Flags().IntVar(&season, "season", 0, "Season year to query")
	resultsCmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of items to return")
	resultsCmd.Flags().IntVar(&season, "season", 0, "Season year to query")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(setConfigCmd)
	rootCmd.AddCommand(fixturesCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(foundersCmd)
	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the stored club config",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/club-config")
	},
}

var setConfigCmd = &cobra.Command{
	Use:   "set-config [json]",
	Short: "Upsert the club config from a JSON payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/api/club-config", args[0])
	},
}

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "List upcoming fixtures",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/fixtures" + feedQuery())
	},
}

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "List past results",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/results" + feedQuery())
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the club roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/players")
	},
}

var foundersCmd = &cobra.Command{
	Use:   "founders",
	Short: "List the club founders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/founders")
	},
}

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Post the fixtures digest to Slack",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/api/notify/fixtures", "")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func feedQuery() string {
	params := []string{}
	if limit > 0 {
		params = append(params, fmt.Sprintf("limit=%d", limit))
	}
	if season > 0 {
		params = append(params, fmt.Sprintf("season=%d", season))
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + strings.Join(params, "&")
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint string, body string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
