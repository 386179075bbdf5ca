package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"decomment/internal/languages"
	"decomment/internal/model"
	"decomment/internal/storage"
	"decomment/internal/validate"
)

// newTestPipeline 是测试辅助函数，按给定开关构造流水线。
func newTestPipeline(gate *validate.Gate, options Options) *Pipeline {
	return New(languages.NewRegistry(), gate, storage.NewStore(), options)
}

// writeTestFile 在临时目录落地一个待处理文件并返回任务。
func writeTestFile(t *testing.T, name string, content string) Task {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return Task{AbsolutePath: path, DisplayPath: name}
}

// readTestFile 读取文件当前内容。
func readTestFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

// TestProcessApplied 验证有注释的文件被清理并写回。
func TestProcessApplied(t *testing.T) {
	task := writeTestFile(t, "main.go", "package main // note\nvar x = 1\n")
	subject := newTestPipeline(nil, Options{})

	outcome := subject.Process(context.Background(), task)

	assert.Equal(t, model.StatusApplied, outcome.Status)
	assert.Equal(t, "Go", outcome.Language)
	assert.Positive(t, outcome.RemovedBytes)
	assert.Equal(t, "package main \nvar x = 1\n", readTestFile(t, task.AbsolutePath))

	_, err := os.Stat(task.AbsolutePath + storage.BackupSuffix)
	assert.True(t, os.IsNotExist(err), "backup must not exist when backup mode is off")
}

// TestProcessNoChange 验证无注释文件即使开启备份也不落任何写入。
func TestProcessNoChange(t *testing.T) {
	content := "package main\nvar x = 1\n"
	task := writeTestFile(t, "main.go", content)
	subject := newTestPipeline(nil, Options{Backup: true, Validate: true})

	outcome := subject.Process(context.Background(), task)

	assert.Equal(t, model.StatusSkipped, outcome.Status)
	assert.Equal(t, model.ReasonNoChange, outcome.Reason)
	assert.Equal(t, content, readTestFile(t, task.AbsolutePath))

	_, err := os.Stat(task.AbsolutePath + storage.BackupSuffix)
	assert.True(t, os.IsNotExist(err), "no-change file must never be backed up")
}

// TestProcessDryRun 验证 dry-run 只预览不改盘。
func TestProcessDryRun(t *testing.T) {
	content := "x = 1  # note\n"
	task := writeTestFile(t, "tool.py", content)
	subject := newTestPipeline(nil, Options{DryRun: true, Backup: true})

	outcome := subject.Process(context.Background(), task)

	assert.Equal(t, model.StatusDryRun, outcome.Status)
	assert.Positive(t, outcome.RemovedBytes)
	assert.Contains(t, outcome.Detail, "would remove")
	assert.Equal(t, content, readTestFile(t, task.AbsolutePath))
}

// TestProcessBackup 验证备份内容是原文且主文件被清理。
func TestProcessBackup(t *testing.T) {
	content := "const x = 1; // note\n"
	task := writeTestFile(t, "app.js", content)
	subject := newTestPipeline(nil, Options{Backup: true})

	outcome := subject.Process(context.Background(), task)

	require.Equal(t, model.StatusApplied, outcome.Status)
	require.NotEmpty(t, outcome.BackupPath)
	assert.Equal(t, content, readTestFile(t, outcome.BackupPath))
	assert.Equal(t, "const x = 1; \n", readTestFile(t, task.AbsolutePath))
}

// TestProcessBackupError 验证备份失败时原文件绝不被覆盖。
func TestProcessBackupError(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "main.go")
	content := "package main // note\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	// 用非空目录占住备份目标位置，备份写入必然失败。
	// （空目录会被 afs.Upload 直接移除后照常写入，无法触发故障。）
	require.NoError(t, os.MkdirAll(filepath.Join(path+storage.BackupSuffix, "occupied"), 0o755))

	subject := newTestPipeline(nil, Options{Backup: true})
	outcome := subject.Process(context.Background(), Task{AbsolutePath: path, DisplayPath: "main.go"})

	assert.Equal(t, model.StatusFailed, outcome.Status)
	assert.Equal(t, model.ReasonBackupError, outcome.Reason)
	assert.NotEmpty(t, outcome.Detail)
	assert.Equal(t, content, readTestFile(t, path), "original must stay untouched without a successful backup")
}

// TestProcessWriteError 验证写回失败转换为 Failed 结论且原文件保持原样。
func TestProcessWriteError(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses directory write permission")
	}

	lockedDir := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.Mkdir(lockedDir, 0o755))
	path := filepath.Join(lockedDir, "main.go")
	content := "package main // note\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, os.Chmod(lockedDir, 0o555))
	t.Cleanup(func() { _ = os.Chmod(lockedDir, 0o755) })

	subject := newTestPipeline(nil, Options{})
	outcome := subject.Process(context.Background(), Task{AbsolutePath: path, DisplayPath: "main.go"})

	assert.Equal(t, model.StatusFailed, outcome.Status)
	assert.Equal(t, model.ReasonWriteError, outcome.Reason)
	assert.Equal(t, content, readTestFile(t, path))
}

// TestProcessMalformed 验证未闭合输入绝不写回半成品。
func TestProcessMalformed(t *testing.T) {
	content := "package main\n/* never closed\n"
	task := writeTestFile(t, "main.go", content)
	subject := newTestPipeline(nil, Options{})

	outcome := subject.Process(context.Background(), task)

	assert.Equal(t, model.StatusSkipped, outcome.Status)
	assert.Equal(t, model.ReasonMalformed, outcome.Reason)
	assert.Equal(t, content, readTestFile(t, task.AbsolutePath))
}

// TestProcessValidationFailed 验证 Invalid 结论阻止写回。
func TestProcessValidationFailed(t *testing.T) {
	content := "package main // note\n"
	task := writeTestFile(t, "main.go", content)

	gate := validate.NewGate()
	gate.Register("Go", func(_ context.Context, _ string, _ string) validate.Result {
		return validate.Result{Verdict: validate.VerdictInvalid, Message: "broken"}
	})
	subject := newTestPipeline(gate, Options{Validate: true})

	outcome := subject.Process(context.Background(), task)

	assert.Equal(t, model.StatusSkipped, outcome.Status)
	assert.Equal(t, model.ReasonValidationFailed, outcome.Reason)
	assert.Equal(t, "broken", outcome.Detail)
	assert.Equal(t, content, readTestFile(t, task.AbsolutePath))
}

// TestProcessValidationUnsupportedProceeds 验证无校验能力时照常写回。
func TestProcessValidationUnsupportedProceeds(t *testing.T) {
	task := writeTestFile(t, "main.go", "package main // note\n")
	subject := newTestPipeline(validate.NewGate(), Options{Validate: true})

	outcome := subject.Process(context.Background(), task)

	assert.Equal(t, model.StatusApplied, outcome.Status)
}

// TestProcessUnsupportedLanguage 验证未注册后缀直接跳过。
func TestProcessUnsupportedLanguage(t *testing.T) {
	task := writeTestFile(t, "notes.txt", "plain text // not code\n")
	subject := newTestPipeline(nil, Options{})

	outcome := subject.Process(context.Background(), task)

	assert.Equal(t, model.StatusSkipped, outcome.Status)
	assert.Equal(t, model.ReasonUnsupportedLanguage, outcome.Reason)
}

// TestProcessReadError 验证读取失败转换为 Failed 结论。
func TestProcessReadError(t *testing.T) {
	task := Task{
		AbsolutePath: filepath.Join(t.TempDir(), "absent.go"),
		DisplayPath:  "absent.go",
	}
	subject := newTestPipeline(nil, Options{})

	outcome := subject.Process(context.Background(), task)

	assert.Equal(t, model.StatusFailed, outcome.Status)
	assert.Equal(t, model.ReasonReadError, outcome.Reason)
	assert.NotEmpty(t, outcome.Detail)
}

// TestProcessSecondRunNoChange 验证流水线的幂等性。
func TestProcessSecondRunNoChange(t *testing.T) {
	task := writeTestFile(t, "main.go", "package main // note\n/* block */var x = 1\n")
	subject := newTestPipeline(nil, Options{})

	first := subject.Process(context.Background(), task)
	require.Equal(t, model.StatusApplied, first.Status)

	second := subject.Process(context.Background(), task)
	assert.Equal(t, model.StatusSkipped, second.Status)
	assert.Equal(t, model.ReasonNoChange, second.Reason)
}
