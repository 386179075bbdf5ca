// Package cmd 提供 decomment 的命令行入口与子命令编排。
package cmd

import (
	"decomment/internal/languages"

	"github.com/spf13/cobra"
)

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	registry := languages.NewRegistry()
	rootCmd := newRootCmd(version, registry)
	return rootCmd.Execute()
}

// newRootCmd 创建根命令并注册全部子命令。
func newRootCmd(version string, registry *languages.Registry) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "decomment",
		Short: "基于规则表词法扫描的多语言注释清理工具",
		Long: "decomment 按语言规则表对源码做单遍词法扫描，\n" +
			"删除注释但逐字保留字符串字面量与行结构，\n" +
			"支持备份、语法校验、dry-run 预览与并发处理。",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newLanguageCmd(registry))
	rootCmd.AddCommand(newCleanCmd(registry))

	return rootCmd
}
