package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"decomment/internal/model"
)

// buildSampleReport 构造一份覆盖各状态的样例报告。
func buildSampleReport() model.RunReport {
	report := model.NewRunReport("/tmp/project")
	report.Add(model.FileOutcome{Path: "main.go", Language: "Go", Status: model.StatusApplied, RemovedBytes: 12})
	report.Add(model.FileOutcome{Path: "app.js", Language: "JavaScript", Status: model.StatusSkipped, Reason: model.ReasonNoChange})
	report.Add(model.FileOutcome{Path: "broken.py", Language: "Python", Status: model.StatusSkipped, Reason: model.ReasonMalformed})
	report.Add(model.FileOutcome{Path: "locked.rb", Language: "Ruby", Status: model.StatusFailed, Reason: model.ReasonWriteError, Detail: "permission denied"})
	return report
}

// TestPrintTable 验证表格输出包含关键信息。
func TestPrintTable(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, PrintTable(&buffer, buildSampleReport()))

	output := buffer.String()
	assert.Contains(t, output, "/tmp/project")
	assert.Contains(t, output, "main.go")
	assert.Contains(t, output, "skipped (no-change)")
	assert.Contains(t, output, "skipped (malformed-comment-or-string)")
	assert.Contains(t, output, "failed (write-error)")
	assert.Contains(t, output, "12 byte(s) of comments removed")
}

// TestPrintJSON 验证 JSON 输出可以解析回报告模型。
func TestPrintJSON(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, PrintJSON(&buffer, buildSampleReport()))

	var decoded model.RunReport
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &decoded))
	assert.Equal(t, int64(4), decoded.TotalFiles)
	assert.Equal(t, int64(1), decoded.Applied)
	assert.Len(t, decoded.Outcomes, 4)
}

// TestWriteJSONFile 验证导出路径上的目录会被自动创建。
func TestWriteJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "report.json")
	require.NoError(t, WriteJSONFile(path, buildSampleReport()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded model.RunReport
	require.NoError(t, json.Unmarshal(content, &decoded))
	assert.Equal(t, "/tmp/project", decoded.ScannedPath)
}
