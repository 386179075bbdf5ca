// Package report 提供 decomment 的输出能力。
// 当前实现支持 table 控制台格式和 JSON 格式（含文件导出）。
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/fatih/color"

	"decomment/internal/model"
)

// statusLabel 返回带颜色的状态标签。
// 输出到管道或文件时 color 会自动退化为纯文本。
func statusLabel(outcome model.FileOutcome) string {
	switch outcome.Status {
	case model.StatusApplied:
		return color.New(color.FgGreen).Sprint("APPLIED")
	case model.StatusDryRun:
		return color.New(color.FgCyan).Sprint("DRY-RUN")
	case model.StatusFailed:
		return color.New(color.FgRed).Sprint("FAILED")
	case model.StatusSkipped:
		return color.New(color.FgYellow).Sprint("SKIPPED")
	default:
		return string(outcome.Status)
	}
}

// PrintTable 使用表格展示运行报告。
func PrintTable(writer io.Writer, report model.RunReport) error {
	tw := tabwriter.NewWriter(writer, 0, 4, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "SCANNED PATH\t%s\n\n", report.ScannedPath); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(tw, "FILE\tLANGUAGE\tSTATUS\tREASON\tDETAIL"); err != nil {
		return err
	}
	for _, outcome := range report.Outcomes {
		if _, err := fmt.Fprintf(
			tw,
			"%s\t%s\t%s\t%s\t%s\n",
			outcome.Path,
			outcome.Language,
			statusLabel(outcome),
			outcome.Reason,
			outcome.Detail,
		); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(tw, "\nOUTCOME\tCOUNT"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "applied\t%d\n", report.Applied); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "dry-run\t%d\n", report.DryRun); err != nil {
		return err
	}
	for _, reason := range model.SkipReasons() {
		if count := report.SkippedByReason[reason]; count > 0 {
			if _, err := fmt.Fprintf(tw, "skipped (%s)\t%d\n", reason, count); err != nil {
				return err
			}
		}
	}
	for _, reason := range model.FailureReasons() {
		if count := report.FailedByReason[reason]; count > 0 {
			if _, err := fmt.Fprintf(tw, "failed (%s)\t%d\n", reason, count); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(
		tw,
		"\nTOTAL\t%d file(s), %d byte(s) of comments removed\n",
		report.TotalFiles,
		report.TotalRemovedBytes,
	); err != nil {
		return err
	}

	return tw.Flush()
}

// PrintJSON 把运行报告按易读 JSON 输出到任意 writer。
func PrintJSON(writer io.Writer, report model.RunReport) error {
	content, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := writer.Write(content); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteJSONFile 将 JSON 报告导出到指定路径。
// 如果目录不存在会自动创建。
func WriteJSONFile(path string, report model.RunReport) error {
	content, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if mkErr := os.MkdirAll(directory, 0o755); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	if writeErr := os.WriteFile(path, content, 0o644); writeErr != nil {
		return fmt.Errorf("write output file: %w", writeErr)
	}
	return nil
}
