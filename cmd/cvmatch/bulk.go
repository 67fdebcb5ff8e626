package main

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cv-match/internal/service"
)

var bulkCmd = &cobra.Command{
	Use:   "bulk <resume-file>...",
	Short: "Analyze several resumes against one job description, ranked by score",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runBulk(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(bulkCmd)

	bulkCmd.Flags().StringP("job", "J", "", "file containing the job description (required)")
	bulkCmd.MarkFlagRequired("job")
}

type bulkReport struct {
	ID       string   `json:"id"`
	Document string   `json:"document"`
	Score    *float64 `json:"score,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func runBulk(cmd *cobra.Command, resumePaths []string) {
	svc, zlog := buildService()
	defer zlog.Sync()

	jobPath, _ := cmd.Flags().GetString("job")
	jobDescription := mustReadFile(zlog, jobPath)

	docs := make([]service.Document, 0, len(resumePaths))
	for _, path := range resumePaths {
		docs = append(docs, service.Document{
			Name: filepath.Base(path),
			Text: mustReadFile(zlog, path),
		})
	}

	items := svc.AnalyzeBulk(context.Background(), docs, jobDescription)

	reports := make([]bulkReport, 0, len(items))
	for _, item := range items {
		report := bulkReport{ID: item.ID, Document: item.Document}
		if item.Err != nil {
			report.Error = item.Err.Error()
		} else {
			score := item.Result.Score
			report.Score = &score
		}
		reports = append(reports, report)
	}

	zlog.Info("ranking complete", zap.Int("resumes", len(reports)))
	printJSON(zlog, reports)
}
