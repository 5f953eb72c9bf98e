package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arkusai/memgraph/access"
	"github.com/arkusai/memgraph/pipeline"
	"github.com/arkusai/memgraph/result"
)

var (
	analyzeConfigPath string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <trace-file>",
	Short: "Analyze a single native-format trace file and print the result as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfigPath, "config", "c", "", "path to a YAML config file (defaults to pipeline.DefaultConfig)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := loadConfig(analyzeConfigPath)
	if err != nil {
		return err
	}

	res, err := analyzeFile(cmd.Context(), path, cfg)
	if err != nil {
		return err
	}

	return printResult(res)
}

func loadConfig(path string) (pipeline.Config, error) {
	if path == "" {
		return pipeline.DefaultConfig(), nil
	}

	return pipeline.LoadConfigFile(path)
}

func analyzeFile(ctx context.Context, path string, cfg pipeline.Config) (result.AnalysisResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return result.AnalysisResult{}, fmt.Errorf("opening trace %q: %w", path, err)
	}
	defer f.Close()

	accesses, err := parseNativeTrace(f)
	if err != nil {
		return result.AnalysisResult{}, err
	}

	stream := access.NewSliceStream(expandModifies(accesses))

	return pipeline.Analyze(ctx, path, stream, cfg)
}

func printResult(res result.AnalysisResult) error {
	data, err := res.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	_, err = os.Stdout.Write(append(data, '\n'))

	return err
}
