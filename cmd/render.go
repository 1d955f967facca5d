package cmd

import (
	"fmt"
	"os"

	"github.com/Sena-ops/reportguard/internal/adapters"
	"github.com/Sena-ops/reportguard/internal/config"
	"github.com/Sena-ops/reportguard/internal/filter"
	"github.com/Sena-ops/reportguard/internal/logging"
	"github.com/Sena-ops/reportguard/internal/pipeline"
	"github.com/Sena-ops/reportguard/internal/report"
	"github.com/spf13/cobra"
)

// Exit codes. Findings-vs-clean stays distinguishable from "could not run"
// so CI can gate on finding presence without mistaking crashes for success.
const (
	exitClean        = 0
	exitFindings     = 1
	exitPrecondition = 2
	exitConfig       = 3
)

var (
	inputFile  string
	outputFile string
	configFile string
	jsonOutput bool
	zeroExit   bool
	inputKind  string
	repoURL    string
	repoRef    string
	debugMode  bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Normalize a findings document and render a JSON or HTML report",
	Run: func(cmd *cobra.Command, args []string) {
		logging.InitLogger(debugMode)
		logger := logging.Logger
		defer logger.Sync()

		// Config and preconditions fail before any record is touched.
		cfg, found, err := config.Load(configFile)
		if err != nil {
			logger.Error(err)
			os.Exit(exitConfig)
		}
		if found {
			logger.Infof("using config file %q", configFile)
		}

		msgFilter, err := filter.New(cfg.Filter)
		if err != nil {
			logger.Error(err)
			os.Exit(exitConfig)
		}

		kind, err := pipeline.ParseKind(inputKind)
		if err != nil {
			logger.Error(err)
			os.Exit(exitPrecondition)
		}

		if kind == pipeline.KindSemgrep && repoURL != "" && repoRef == "" {
			logger.Error("missing --sha: deep links need a commit, branch, or tag to pin to")
			os.Exit(exitPrecondition)
		}

		doc, err := os.ReadFile(inputFile)
		if err != nil {
			logger.Errorf("can't read input file %q: %v", inputFile, err)
			os.Exit(exitPrecondition)
		}

		findings, stats, err := pipeline.Run(doc, kind, msgFilter, pipeline.Options{
			Semgrep: adapters.SemgrepOptions{RepoURL: repoURL, Ref: repoRef},
		})
		if err != nil {
			logger.Error(err)
			os.Exit(exitPrecondition)
		}

		meta := report.CollectMeta(stats.Total, stats.Filtered)

		var content []byte
		if jsonOutput {
			content, err = report.RenderJSON(meta, findings)
		} else {
			content, err = report.RenderHTML(meta, findings)
		}
		if err != nil {
			logger.Error(err)
			os.Exit(exitPrecondition)
		}

		path := outputFile
		if path == report.DefaultBase {
			if jsonOutput {
				path += ".json"
			} else {
				path += ".html"
			}
		}
		if err := os.WriteFile(path, content, 0644); err != nil {
			logger.Errorf("can't write report %q: %v", path, err)
			os.Exit(exitPrecondition)
		}
		logger.Infof("report written to %s", path)

		code := exitClean
		if len(findings) > 0 {
			fmt.Printf("still %d findings after filtering...\n", len(findings))
			code = exitFindings
		} else {
			fmt.Println("no findings after filtering...")
		}
		if zeroExit {
			code = exitClean
		}
		os.Exit(code)
	},
}

func init() {
	renderCmd.Flags().StringVarP(&inputFile, "input", "i", "", "input findings JSON file")
	renderCmd.Flags().StringVarP(&outputFile, "output", "o", report.DefaultBase, "output file name")
	renderCmd.Flags().StringVarP(&configFile, "config", "c", config.DefaultPath, "filter config file")
	renderCmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "dump output as JSON instead of HTML")
	renderCmd.Flags().BoolVarP(&zeroExit, "zero-exit", "z", false, "always exit with zero return code")
	renderCmd.Flags().StringVarP(&inputKind, "filter", "f", "prospector", "input kind (prospector, gitlab-sast, semgrep)")
	renderCmd.Flags().StringVarP(&repoURL, "repository-url", "l", "https://github.com", "repository base URL for deep links")
	renderCmd.Flags().StringVarP(&repoRef, "sha", "s", "", "commit sha, branch, or tag for deep links")
	renderCmd.Flags().BoolVar(&debugMode, "debug", false, "enable debug-level logs")
	renderCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(renderCmd)
}
