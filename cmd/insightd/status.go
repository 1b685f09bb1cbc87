package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"insightd/internal/models"
)

func newStatusCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show usage stats from a running server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "http://localhost:8080", "base URL of the running server")
	return cmd
}

type statusPayload struct {
	UsageStats     models.UsageStats `json:"usage_stats"`
	APIHealth      string            `json:"api_health"`
	FallbackActive bool              `json:"fallback_active"`
	LastRequest    string            `json:"last_request"`
	RequestsToday  int               `json:"requests_today"`
	ErrorsToday    int               `json:"errors_today"`
}

func runStatus(ctx context.Context, addr string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr+"/status", nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach server at %s: %w", addr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status endpoint returned %d", resp.StatusCode)
	}

	var payload statusPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("failed to decode status: %w", err)
	}

	lastRequest := payload.LastRequest
	if lastRequest == "" {
		lastRequest = "never"
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendRows([]table.Row{
		{"API health", payload.APIHealth},
		{"Fallback active", payload.FallbackActive},
		{"Requests", payload.RequestsToday},
		{"Errors", payload.ErrorsToday},
		{"Last request", lastRequest},
	})
	t.Render()
	return nil
}
