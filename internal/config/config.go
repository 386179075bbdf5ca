// Package config 定义运行配置及其 YAML 加载逻辑。
// 配置文件是可选项：缺省时使用内置默认值，命令行标志优先于文件。
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config 是一次运行的完整配置。
type Config struct {
	// Workers 是并发 worker 数量，默认为宿主机核数。
	Workers int `yaml:"workers"`
	// Backup 为 true 时覆盖前写 .bak 备份。
	Backup bool `yaml:"backup"`
	// Validate 为 true 时对清理结果执行语法校验。
	Validate bool `yaml:"validate"`
	// DryRun 为 true 时只预览不写回。
	DryRun bool `yaml:"dry_run"`
	// Extensions 限定参与处理的后缀，为空时取全部已注册后缀。
	Extensions []string `yaml:"extensions"`
	// ExcludeDirs 是目录遍历时整体跳过的目录名。
	ExcludeDirs []string `yaml:"exclude_dirs"`
}

// DefaultExcludeDirs 返回默认排除目录集合。
// 覆盖常见的依赖目录、构建产物目录和版本库目录。
func DefaultExcludeDirs() []string {
	return []string{
		"vendor",
		"node_modules",
		".git",
		"venv",
		"__pycache__",
		"storage",
		"bootstrap",
		"dist",
		"build",
		".next",
		"out",
		"coverage",
	}
}

// Default 返回内置默认配置。
func Default() Config {
	return Config{
		Workers:     runtime.NumCPU(),
		ExcludeDirs: DefaultExcludeDirs(),
	}
}

// Load 在默认配置之上叠加 YAML 文件内容。
// path 为空时直接返回默认配置。
func Load(path string) (Config, error) {
	result := Default()
	if path == "" {
		return result, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return result, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("parse config file: %w", err)
	}

	if result.Workers <= 0 {
		result.Workers = runtime.NumCPU()
	}

	return result, nil
}
