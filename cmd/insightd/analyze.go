package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"insightd/internal/config"
	"insightd/internal/logging"
	"insightd/internal/services"
)

func newAnalyzeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Analyze one journal entry and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return runAnalyze(cmd.Context(), cfg, strings.Join(args, " "))
		},
	}
}

func runAnalyze(ctx context.Context, cfg config.Config, text string) error {
	logger := logging.New(cfg.LogLevel, os.Stderr)

	tracker := services.NewUsageTracker()
	classifier := services.NewHuggingFaceClient(cfg.HuggingFace.Token, cfg.HuggingFace.BaseURL, cfg.HuggingFace.Timeout)
	analyzer := services.NewAnalyzer(
		classifier,
		tracker,
		services.NewMoodResolver(cfg.Tunables),
		cfg.HuggingFace.SentimentModel,
		cfg.HuggingFace.EmotionModel,
		logger,
	)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	result := analyzer.Analyze(ctx, text)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendRows([]table.Row{
		{"Heading", result.AIHeading},
		{"Mood", result.PrimaryMood},
		{"Energy", result.Energy},
		{"Category", result.BusinessCategory},
		{"Confidence", fmt.Sprintf("%d%%", result.Confidence)},
		{"Source", result.AnalysisSource},
	})
	t.Render()

	fmt.Println()
	for _, insight := range result.Insights {
		fmt.Printf("  - %s\n", insight)
	}
	return nil
}
