// Package model 定义 decomment 的核心数据模型。
// 这些结构会被流水线、调度器、输出层和命令层共同使用。
package model

// Status 表示单文件处理的最终状态。
type Status string

const (
	// StatusApplied 表示清理结果已经写回原文件。
	StatusApplied Status = "applied"
	// StatusSkipped 表示文件被安全跳过，原文件保持不变。
	StatusSkipped Status = "skipped"
	// StatusFailed 表示处理过程中出现 I/O 类错误，原文件保持不变。
	StatusFailed Status = "failed"
	// StatusDryRun 表示 dry-run 模式下的预览结果，未发生任何写入。
	StatusDryRun Status = "dry-run"
)

// Reason 解释文件为何被跳过或失败。
// Applied/DryRun 状态下 Reason 为空。
type Reason string

const (
	// ReasonUnsupportedLanguage 表示后缀没有对应的语言规则。
	ReasonUnsupportedLanguage Reason = "unsupported-language"
	// ReasonNoChange 表示清理前后内容一致，无需写回。
	ReasonNoChange Reason = "no-change"
	// ReasonMalformed 表示扫描结束时仍停留在字符串或块注释内部。
	ReasonMalformed Reason = "malformed-comment-or-string"
	// ReasonValidationFailed 表示清理结果未通过语法校验。
	ReasonValidationFailed Reason = "validation-failed"
	// ReasonReadError 表示读取原文件失败。
	ReasonReadError Reason = "read-error"
	// ReasonBackupError 表示备份写入失败，原文件未被覆盖。
	ReasonBackupError Reason = "backup-error"
	// ReasonWriteError 表示写回清理结果失败。
	ReasonWriteError Reason = "write-error"
)

// SkipReasons 列出全部“预期内跳过”的原因。
func SkipReasons() []Reason {
	return []Reason{ReasonUnsupportedLanguage, ReasonNoChange, ReasonMalformed, ReasonValidationFailed}
}

// FailureReasons 列出全部“非预期失败”的原因。
func FailureReasons() []Reason {
	return []Reason{ReasonReadError, ReasonBackupError, ReasonWriteError}
}

// FileOutcome 表示单文件的处理结论。
// 同一次运行中每个文件只会产生一条记录。
type FileOutcome struct {
	Path         string `json:"path"`
	Language     string `json:"language,omitempty"`
	Status       Status `json:"status"`
	Reason       Reason `json:"reason,omitempty"`
	Detail       string `json:"detail,omitempty"`
	RemovedBytes int    `json:"removed_bytes,omitempty"`
	BackupPath   string `json:"backup_path,omitempty"`
}

// RunReport 是一次完整运行的输出模型。
// 包含文件级明细、按状态/原因的计数和全局合计。
type RunReport struct {
	ScannedPath       string           `json:"scanned_path"`
	Outcomes          []FileOutcome    `json:"outcomes"`
	Applied           int64            `json:"applied"`
	DryRun            int64            `json:"dry_run"`
	SkippedByReason   map[Reason]int64 `json:"skipped_by_reason"`
	FailedByReason    map[Reason]int64 `json:"failed_by_reason"`
	TotalFiles        int64            `json:"total_files"`
	TotalRemovedBytes int64            `json:"total_removed_bytes"`
}

// NewRunReport 创建空报告。
func NewRunReport(scannedPath string) RunReport {
	return RunReport{
		ScannedPath:     scannedPath,
		Outcomes:        make([]FileOutcome, 0),
		SkippedByReason: make(map[Reason]int64),
		FailedByReason:  make(map[Reason]int64),
	}
}

// Add 把单文件结论并入报告。
// 这是报告唯一的写入入口，调度器保证同一时刻只有一个调用者。
func (r *RunReport) Add(outcome FileOutcome) {
	r.Outcomes = append(r.Outcomes, outcome)
	r.TotalFiles++

	switch outcome.Status {
	case StatusApplied:
		r.Applied++
		r.TotalRemovedBytes += int64(outcome.RemovedBytes)
	case StatusDryRun:
		r.DryRun++
		r.TotalRemovedBytes += int64(outcome.RemovedBytes)
	case StatusSkipped:
		r.SkippedByReason[outcome.Reason]++
	case StatusFailed:
		r.FailedByReason[outcome.Reason]++
	}
}

// Skipped 返回跳过文件总数。
func (r *RunReport) Skipped() int64 {
	var total int64
	for _, count := range r.SkippedByReason {
		total += count
	}
	return total
}

// Failed 返回失败文件总数。
func (r *RunReport) Failed() int64 {
	var total int64
	for _, count := range r.FailedByReason {
		total += count
	}
	return total
}
