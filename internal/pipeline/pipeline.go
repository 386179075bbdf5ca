// Package pipeline 实现单文件处理流水线。
// 每个文件独立走完 读取 → 扫描 → 比对 → 校验 → 备份 → 写回 的序列，
// 任何一步都可能提前终止为 Skipped/Failed，所有错误都在本层
// 转换成 FileOutcome，绝不向调度器抛出。
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"decomment/internal/languages"
	"decomment/internal/model"
	"decomment/internal/scanner"
	"decomment/internal/storage"
	"decomment/internal/validate"
)

// Options 是流水线的行为开关。
type Options struct {
	// Validate 为 true 时对清理结果执行语法校验，Invalid 则跳过写回。
	Validate bool
	// Backup 为 true 时先写 <path>.bak 再覆盖，备份失败即中止该文件。
	Backup bool
	// DryRun 为 true 时只产出预览，不发生任何写入。
	DryRun bool
}

// Task 描述一个待处理文件。
type Task struct {
	// AbsolutePath 用于实际 I/O，DisplayPath 用于报告展示。
	AbsolutePath string
	DisplayPath  string
}

// Pipeline 按固定配置处理一批文件任务。
type Pipeline struct {
	registry *languages.Registry
	gate     *validate.Gate
	store    *storage.Store
	options  Options
}

// New 创建流水线。gate 传 nil 时校验一律按 Unsupported 放行。
func New(registry *languages.Registry, gate *validate.Gate, store *storage.Store, options Options) *Pipeline {
	if gate == nil {
		gate = validate.NewGate()
	}
	return &Pipeline{
		registry: registry,
		gate:     gate,
		store:    store,
		options:  options,
	}
}

// Process 处理单个文件，返回唯一的处理结论。
func (p *Pipeline) Process(ctx context.Context, task Task) model.FileOutcome {
	outcome := model.FileOutcome{Path: task.DisplayPath}

	// 1. 语言识别：没有规则表的后缀直接跳过。
	profile, ok := p.registry.ProfileForFile(task.AbsolutePath)
	if !ok {
		outcome.Status = model.StatusSkipped
		outcome.Reason = model.ReasonUnsupportedLanguage
		return outcome
	}
	outcome.Language = profile.Name

	// 2. 读取原文。
	content, err := p.store.Read(ctx, task.AbsolutePath)
	if err != nil {
		outcome.Status = model.StatusFailed
		outcome.Reason = model.ReasonReadError
		outcome.Detail = err.Error()
		return outcome
	}

	// 3. 词法扫描。扫描未闭合说明输入本身残缺，绝不写回半成品。
	result := scanner.Strip(content, profile)
	if result.Unterminated {
		outcome.Status = model.StatusSkipped
		outcome.Reason = model.ReasonMalformed
		return outcome
	}

	// 4. 无变化的文件不写回、不备份，也不算 Applied。
	if result.Cleaned == content {
		outcome.Status = model.StatusSkipped
		outcome.Reason = model.ReasonNoChange
		return outcome
	}
	outcome.RemovedBytes = result.RemovedBytes

	// 5. dry-run 只给预览，不碰文件系统。
	if p.options.DryRun {
		outcome.Status = model.StatusDryRun
		outcome.Detail = fmt.Sprintf("would remove %d byte(s)", result.RemovedBytes)
		return outcome
	}

	// 6. 语法校验：Invalid 阻止写回，Unsupported 视为放行。
	// 文件自身的后缀随行传入，让外部工具选对语言前端。
	if p.options.Validate {
		verdict := p.gate.Validate(ctx, profile.Name, filepath.Ext(task.AbsolutePath), result.Cleaned)
		if verdict.Verdict == validate.VerdictInvalid {
			outcome.Status = model.StatusSkipped
			outcome.Reason = model.ReasonValidationFailed
			outcome.Detail = verdict.Message
			return outcome
		}
	}

	// 7. 备份：失败时原文件保持原样。
	if p.options.Backup {
		backupPath, backupErr := p.store.WriteBackup(ctx, task.AbsolutePath, content)
		if backupErr != nil {
			outcome.Status = model.StatusFailed
			outcome.Reason = model.ReasonBackupError
			outcome.Detail = backupErr.Error()
			return outcome
		}
		outcome.BackupPath = backupPath
	}

	// 8. 整文件替换写回。
	if err := p.store.Replace(ctx, task.AbsolutePath, result.Cleaned); err != nil {
		outcome.Status = model.StatusFailed
		outcome.Reason = model.ReasonWriteError
		outcome.Detail = err.Error()
		return outcome
	}

	outcome.Status = model.StatusApplied
	return outcome
}
