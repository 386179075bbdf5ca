package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultConfig 验证内置默认值。
func TestDefaultConfig(t *testing.T) {
	result := Default()

	assert.Equal(t, runtime.NumCPU(), result.Workers)
	assert.False(t, result.Backup)
	assert.False(t, result.Validate)
	assert.False(t, result.DryRun)
	assert.Contains(t, result.ExcludeDirs, "node_modules")
	assert.Contains(t, result.ExcludeDirs, ".git")
	assert.Empty(t, result.Extensions)
}

// TestLoadEmptyPath 验证不给配置文件时直接返回默认值。
func TestLoadEmptyPath(t *testing.T) {
	result, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), result)
}

// TestLoadOverrides 验证 YAML 文件覆盖默认值，未出现的键保持默认。
func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decomment.yaml")
	content := "workers: 2\nbackup: true\nextensions:\n  - .go\n  - .py\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	result, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Workers)
	assert.True(t, result.Backup)
	assert.False(t, result.Validate)
	assert.Equal(t, []string{".go", ".py"}, result.Extensions)
	assert.Contains(t, result.ExcludeDirs, "vendor")
}

// TestLoadInvalidWorkers 验证非法 workers 值回落到核数。
func TestLoadInvalidWorkers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decomment.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: -3\n"), 0o644))

	result, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, runtime.NumCPU(), result.Workers)
}

// TestLoadMissingFile 验证文件缺失时报错。
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
