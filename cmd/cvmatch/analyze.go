package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"cv-match/internal/analyzer"
	"cv-match/internal/config"
	"cv-match/internal/logger"
	"cv-match/internal/service"
	"cv-match/internal/similarity"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Analyze one resume against a job description",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runAnalyze(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("job", "J", "", "file containing the job description (required)")
	analyzeCmd.Flags().Bool("profile-only", false, "extract the candidate profile without the full analysis")
	analyzeCmd.MarkFlagRequired("job")
}

func runAnalyze(cmd *cobra.Command, resumePath string) {
	svc, zlog := buildService()
	defer zlog.Sync()

	jobPath, _ := cmd.Flags().GetString("job")
	jobDescription := mustReadFile(zlog, jobPath)

	doc := service.Document{
		Name: filepath.Base(resumePath),
		Text: mustReadFile(zlog, resumePath),
	}

	profileOnly, _ := cmd.Flags().GetBool("profile-only")

	ctx := context.Background()
	var out any
	var err error
	if profileOnly {
		out, err = svc.ExtractProfile(ctx, doc, jobDescription)
	} else {
		out, err = svc.Analyze(ctx, doc, jobDescription)
	}
	if err != nil {
		zlog.Fatal("analysis failed", zap.String("resume", resumePath), zap.Error(err))
	}

	printJSON(zlog, out)
}

func buildService() (*service.Service, *zap.Logger) {
	zlog, err := logger.New(viper.GetBool("json-logs"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	cfg := config.Load()

	var engine similarity.Engine = similarity.NewLocal()
	if !cfg.FastMode && cfg.RemoteSimilarityURL != "" {
		engine = similarity.NewRemote(cfg.RemoteSimilarityURL, cfg.HFAPIKey)
		zlog.Debug("remote similarity enabled", zap.String("endpoint", cfg.RemoteSimilarityURL))
	}

	a := analyzer.New(analyzer.Config{Engine: engine})
	return service.New(a, zlog, cfg), zlog
}

func mustReadFile(zlog *zap.Logger, path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		zlog.Fatal("reading input file", zap.String("path", path), zap.Error(err))
	}
	return string(data)
}

func printJSON(zlog *zap.Logger, v any) {
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		zlog.Fatal("encoding result", zap.Error(err))
	}
	fmt.Println(string(pretty))
}
