package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"stocktake-manager/core/config"
	"stocktake-manager/core/database"
	"stocktake-manager/core/logger"
	"stocktake-manager/core/textenc"
	"stocktake-manager/feature/catalog"
	"stocktake-manager/feature/report"
	"stocktake-manager/feature/stocktake"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the variance command
	countsPath  string
	journalPath string
	outputPath  string
	asCSV       bool
	byBin       bool
	applyCounts bool
	yesConfirm  bool
)

// varianceCmd reconciles local count and journal exports without the server.
var varianceCmd = &cobra.Command{
	Use:   "variance",
	Short: "Compute a variance report from local count and journal files",
	Long: `Compute a variance report from exported files on disk, without running
the HTTP server or staging anything in object storage.

The counts file is required; the journal file is optional. Book quantities
for codes absent from the journal come out as zero and are flagged missing.

Examples:
  # JSON report to stdout
  variance --counts counts.csv --journal journal.csv

  # Flat CSV report to a file
  variance --counts counts.csv --journal journal.csv --csv --out report.csv

  # Bin-walk CSV for a recount round
  variance --counts counts.csv --csv --bins

  # Write counted quantities back to the catalog (with confirmation)
  variance --counts counts.csv --journal journal.csv --apply

  # Apply with auto-confirm (non-interactive)
  variance --counts counts.csv --journal journal.csv --apply --yes`,
	RunE: runVariance,
}

func init() {
	varianceCmd.Flags().StringVar(&countsPath, "counts", "", "Path to the count export (required)")
	varianceCmd.Flags().StringVar(&journalPath, "journal", "", "Path to the journal export (optional)")
	varianceCmd.Flags().StringVar(&outputPath, "out", "", "Write the report to this file instead of stdout")
	varianceCmd.Flags().BoolVar(&asCSV, "csv", false, "Render the report as CSV instead of JSON")
	varianceCmd.Flags().BoolVar(&byBin, "bins", false, "Group the CSV report by bin location (implies --csv)")
	varianceCmd.Flags().BoolVar(&applyCounts, "apply", false, "Write counted quantities back to the catalog as new on-hand stock")
	varianceCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm the catalog write-back (non-interactive)")
	_ = varianceCmd.MarkFlagRequired("counts")

	RootCmd.AddCommand(varianceCmd)
}

func runVariance(cmd *cobra.Command, args []string) error {
	// Storage is never touched in offline mode; the database only with --apply.
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	countsText, err := readTextFile(countsPath)
	if err != nil {
		return fmt.Errorf("failed to read counts file: %w", err)
	}

	var journalText string
	if journalPath != "" {
		journalText, err = readTextFile(journalPath)
		if err != nil {
			return fmt.Errorf("failed to read journal file: %w", err)
		}
	}

	svc := stocktake.NewService(stocktake.NewMemoryStaging(), nil, l)
	rows := svc.Compute(countsText, journalText)

	l.Info("Computed variance report",
		zap.Int("rows", len(rows)),
		zap.String("counts", countsPath),
		zap.String("journal", journalPath),
	)

	var out []byte
	switch {
	case byBin:
		out = report.RenderBinCSV(rows)
	case asCSV:
		out = report.RenderVarianceCSV(rows)
	default:
		out, err = json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		out = append(out, '\n')
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, out, 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		l.Info("Wrote report", zap.String("path", outputPath))
	} else if _, err := os.Stdout.Write(out); err != nil {
		return err
	}

	if !applyCounts {
		return nil
	}

	// Write-back path: counted quantities become the new on-hand stock.
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to catalog database: %w", err)
	}

	if !confirmApply() {
		l.Warn("Apply cancelled; no catalog rows were changed")
		return nil
	}

	updated, err := catalog.NewService(db, l).ApplyCounts(cmd.Context(), rows)
	if err != nil {
		return fmt.Errorf("failed to apply counted quantities: %w", err)
	}
	l.Info("Applied counted quantities", zap.Int("updated", updated), zap.Int("rows", len(rows)))
	return nil
}

// confirmApply prompts before overwriting on-hand stock, or honors --yes.
func confirmApply() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Applying overwrites on-hand stock. Type 'yes' to confirm: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}

// readTextFile reads a file and decodes it to UTF-8, tolerating BOMs and
// UTF-16 exports the same way the upload endpoints do.
func readTextFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return textenc.DecodeBytes(b)
}
