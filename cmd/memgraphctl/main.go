// Command memgraphctl is the reference CLI harness for the memgraph
// core: it turns a native-format trace file (or a directory watched for
// new ones) into a result.AnalysisResult, via pipeline.Analyze.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "memgraphctl",
	Short: "Classify memory-access traces by structural graphlet signature",
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cobra.OnInitialize(func() {
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	})

	rootCmd.AddCommand(analyzeCmd, watchCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("memgraphctl failed")
	}
}
