package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"decomment/internal/config"
	"decomment/internal/languages"
	"decomment/internal/pipeline"
	"decomment/internal/report"
	"decomment/internal/runner"
	"decomment/internal/storage"
	"decomment/internal/validate"
)

// cleanOptions 存放 clean 命令的可配置参数。
type cleanOptions struct {
	configPath string
	backup     bool
	validate   bool
	dryRun     bool
	workers    int
	extensions []string
	excludes   []string
	format     string
	output     string
	verbose    bool
}

// newCleanCmd 创建 clean 子命令。
// 示例：
//
//	decomment clean .
//	decomment clean ./project --backup --validate
//	decomment clean ./project --dry-run --format json --output result.json
func newCleanCmd(registry *languages.Registry) *cobra.Command {
	options := cleanOptions{
		format: "table",
		output: "report.json",
	}

	cleanCmd := &cobra.Command{
		Use:   "clean [path]",
		Short: "扫描目录或文件并删除注释",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := strings.ToLower(strings.TrimSpace(options.format))
			if format != "table" && format != "json" {
				return errors.New("unsupported format, allowed values: table, json")
			}

			// 配置优先级：命令行标志 > 配置文件 > 内置默认值。
			runConfig, err := config.Load(options.configPath)
			if err != nil {
				return err
			}
			applyFlagOverrides(cmd, &options, &runConfig)

			if runConfig.Workers <= 0 {
				return errors.New("workers must be greater than 0")
			}

			logLevel := hclog.Warn
			if options.verbose {
				logLevel = hclog.Debug
			}
			logger := hclog.New(&hclog.LoggerOptions{
				Name:   "decomment",
				Level:  logLevel,
				Output: cmd.ErrOrStderr(),
			})

			filePipeline := pipeline.New(registry, validate.DefaultGate(), storage.NewStore(), pipeline.Options{
				Validate: runConfig.Validate,
				Backup:   runConfig.Backup,
				DryRun:   runConfig.DryRun,
			})
			service := runner.New(registry, filePipeline, logger, runner.Config{
				Workers:     runConfig.Workers,
				ExcludeDirs: runConfig.ExcludeDirs,
				Extensions:  runConfig.Extensions,
			})

			result, err := service.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			switch format {
			case "table":
				return report.PrintTable(cmd.OutOrStdout(), result)
			case "json":
				if err := report.PrintJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}

				outputPath := strings.TrimSpace(options.output)
				if outputPath == "" {
					outputPath = "report.json"
				}
				if err := report.WriteJSONFile(outputPath, result); err != nil {
					return err
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nJSON exported to %s\n", outputPath)
				return nil
			default:
				return errors.New("unsupported format")
			}
		},
	}

	cleanCmd.Flags().StringVar(&options.configPath, "config", "", "YAML 配置文件路径（可选）")
	cleanCmd.Flags().BoolVar(&options.backup, "backup", false, "覆盖前写 .bak 备份")
	cleanCmd.Flags().BoolVar(&options.validate, "validate", false, "对清理结果执行语法校验")
	cleanCmd.Flags().BoolVar(&options.dryRun, "dry-run", false, "只预览将发生的修改，不写回")
	cleanCmd.Flags().IntVar(&options.workers, "workers", 0, "并发 worker 数量，默认为宿主机核数")
	cleanCmd.Flags().StringSliceVar(&options.extensions, "ext", nil, "限定处理的文件后缀，默认全部已注册后缀")
	cleanCmd.Flags().StringSliceVar(&options.excludes, "exclude", nil, "额外排除的目录名")
	cleanCmd.Flags().StringVar(&options.format, "format", options.format, "输出格式: table 或 json")
	cleanCmd.Flags().StringVar(&options.output, "output", options.output, "json 报告导出路径，默认 report.json")
	cleanCmd.Flags().BoolVarP(&options.verbose, "verbose", "v", false, "输出每个文件的处理日志")

	return cleanCmd
}

// applyFlagOverrides 把显式设置过的命令行标志覆盖到配置上。
// 未显式设置的标志保持配置文件或默认值不变。
func applyFlagOverrides(cmd *cobra.Command, options *cleanOptions, runConfig *config.Config) {
	if cmd.Flags().Changed("backup") {
		runConfig.Backup = options.backup
	}
	if cmd.Flags().Changed("validate") {
		runConfig.Validate = options.validate
	}
	if cmd.Flags().Changed("dry-run") {
		runConfig.DryRun = options.dryRun
	}
	if cmd.Flags().Changed("workers") {
		runConfig.Workers = options.workers
	}
	if cmd.Flags().Changed("ext") {
		runConfig.Extensions = options.extensions
	}
	if cmd.Flags().Changed("exclude") {
		runConfig.ExcludeDirs = append(runConfig.ExcludeDirs, options.excludes...)
	}
}
