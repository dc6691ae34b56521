package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nihei9/ecparse/config"
)

var rootFlags = struct {
	str         *string
	infile      *string
	grammarFile *string
	configFile  *string
	reportFile  *string
}{}

var rootCmd = &cobra.Command{
	Use:   "ecparse",
	Short: "Parse a string against a grammar, correcting it toward the nearest derivable string",
	Long: `ecparse builds an error-correcting covering grammar from a grammar source
and uses it to find, for each input string, the nearest string the grammar
can derive and the edit distance to it.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runEcparse,
}

func init() {
	rootFlags.str = rootCmd.Flags().StringP("string", "s", "", "string to parse")
	rootFlags.infile = rootCmd.Flags().StringP("infile", "i", "", "file of strings to parse, one per line")
	rootFlags.grammarFile = rootCmd.Flags().StringP("grammar-file", "g", "grammar.txt", "grammar source file")
	rootFlags.configFile = rootCmd.Flags().String("config", "", "optional TOML configuration file")
	rootFlags.reportFile = rootCmd.Flags().String("report", "", "write a JSON build report to this path")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func runEcparse(cmd *cobra.Command, args []string) error {
	if *rootFlags.str != "" && *rootFlags.infile != "" {
		return fmt.Errorf("you cannot pass both --string and --infile")
	}
	if *rootFlags.str == "" && *rootFlags.infile == "" {
		return fmt.Errorf("you must pass one of --string or --infile")
	}

	cfg, err := config.Load(*rootFlags.configFile)
	if err != nil {
		return fmt.Errorf("cannot read config file %s: %w", *rootFlags.configFile, err)
	}
	grammarFile := *rootFlags.grammarFile
	if cfg.GrammarFile != "" && !cmd.Flags().Changed("grammar-file") {
		grammarFile = cfg.GrammarFile
	}
	reportFile := *rootFlags.reportFile
	if cfg.ReportFile != "" && !cmd.Flags().Changed("report") {
		reportFile = cfg.ReportFile
	}

	engine, err := newEngine(grammarFile, cfg)
	if err != nil {
		return err
	}

	inputs, err := collectInputs()
	if err != nil {
		return err
	}

	ok := true
	for _, w := range inputs {
		if err := engine.runOne(os.Stdout, w); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			ok = false
		}
	}

	if reportFile != "" {
		if err := engine.writeReport(reportFile); err != nil {
			return fmt.Errorf("cannot write report to %s: %w", reportFile, err)
		}
	}

	if !ok {
		return fmt.Errorf("one or more inputs could not be parsed")
	}
	return nil
}

func collectInputs() ([]string, error) {
	if *rootFlags.str != "" {
		return []string{*rootFlags.str}, nil
	}

	f, err := os.Open(*rootFlags.infile)
	if err != nil {
		return nil, fmt.Errorf("cannot open infile %s: %w", *rootFlags.infile, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), " \t\r\n"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading infile %s: %w", *rootFlags.infile, err)
	}
	return lines, nil
}
