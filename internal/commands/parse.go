package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lifeledger/bill-importer/internal/extractor"
	"github.com/lifeledger/bill-importer/internal/models"
	"github.com/lifeledger/bill-importer/internal/parser"
	"github.com/lifeledger/bill-importer/internal/writer"
)

func newParseCommand() *cobra.Command {
	var (
		sourceFlag  string
		outputFlag  string
		summaryFlag bool
	)

	cmd := &cobra.Command{
		Use:   "parse <bill-file> [bill-file ...]",
		Short: "Parse bill export files and write review CSVs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source models.BillSource
			if sourceFlag != "" {
				switch strings.ToLower(sourceFlag) {
				case "wechat", "weixin":
					source = models.SourceWeChat
				case "alipay":
					source = models.SourceAlipay
				default:
					return fmt.Errorf("unknown source %q; use wechat or alipay", sourceFlag)
				}
			}

			for _, path := range args {
				if err := processFile(cmd, path, source, outputFlag, summaryFlag); err != nil {
					return fmt.Errorf("processing %s: %w", path, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sourceFlag, "source", "", "bill source: wechat or alipay (auto-detected if omitted)")
	cmd.Flags().StringVar(&outputFlag, "output", "", "output CSV path (defaults to input filename with .csv extension)")
	cmd.Flags().BoolVar(&summaryFlag, "summary", true, "include summary rows in the CSV output")
	return cmd
}

func processFile(cmd *cobra.Command, path string, source models.BillSource, outputPath string, summary bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	text, err := extractor.Decode(data)
	if err != nil {
		return err
	}

	var result *models.ParseResult
	if source != "" {
		result, err = parser.ParseAs(text, source)
	} else {
		result, err = parser.Parse(text)
	}
	if err != nil {
		return err
	}

	outPath := outputPath
	if outPath == "" {
		outPath = strings.TrimSuffix(path, filepath.Ext(path)) + ".csv"
	}

	w := &writer.CSVWriter{IncludeSummary: summary}
	if err := w.WriteToFile(outPath, result); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s, %d record(s), income %s, expense %s, %d skipped\n",
		path, result.Source, len(result.Records),
		result.TotalIncome.StringFixed(2), result.TotalExpense.StringFixed(2),
		result.SkippedCount)
	fmt.Fprintf(out, "  -> %s\n", outPath)
	return nil
}
