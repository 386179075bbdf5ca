// Package runner 提供并发调度能力。
// 该层负责目录遍历、排除过滤、任务分发、并发执行和报告聚合，
// 不负责任何词法与写回细节（它们在 pipeline 层）。
package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"

	"decomment/internal/languages"
	"decomment/internal/model"
	"decomment/internal/pipeline"
)

// Config 是一次运行的调度配置。
type Config struct {
	// Workers 是并发 worker 数量，<=0 时取宿主机核数。
	Workers int
	// ExcludeDirs 是目录遍历时按名字整体剪掉的目录集合。
	ExcludeDirs []string
	// Extensions 限定参与处理的后缀（含点号），为空时取注册中心全部后缀。
	Extensions []string
}

// Runner 是调度服务对象。
type Runner struct {
	registry *languages.Registry
	pipeline *pipeline.Pipeline
	logger   hclog.Logger
	config   Config
}

// New 创建调度服务。logger 传 nil 时静默运行。
func New(registry *languages.Registry, filePipeline *pipeline.Pipeline, logger hclog.Logger, config Config) *Runner {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if len(config.Extensions) == 0 {
		config.Extensions = registry.Extensions()
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Runner{
		registry: registry,
		pipeline: filePipeline,
		logger:   logger,
		config:   config,
	}
}

// Run 处理目录或单文件，返回聚合报告。
// 文件之间相互独立，单文件的完整流水线永远由同一个 worker 执行。
func (r *Runner) Run(ctx context.Context, targetPath string) (model.RunReport, error) {
	trimmedPath := strings.TrimSpace(targetPath)
	if trimmedPath == "" {
		return model.RunReport{}, errors.New("target path is empty")
	}

	absoluteTarget, err := filepath.Abs(trimmedPath)
	if err != nil {
		return model.RunReport{}, fmt.Errorf("resolve absolute path: %w", err)
	}

	info, err := os.Stat(absoluteTarget)
	if err != nil {
		return model.RunReport{}, fmt.Errorf("stat path: %w", err)
	}

	report := model.NewRunReport(absoluteTarget)

	tasks := make(chan pipeline.Task, r.config.Workers*4)
	results := make(chan model.FileOutcome, r.config.Workers*4)
	walkErrChan := make(chan error, 1)

	var workerGroup sync.WaitGroup
	for i := 0; i < r.config.Workers; i++ {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			r.runWorker(ctx, tasks, results)
		}()
	}

	go func() {
		defer close(tasks)
		if info.IsDir() {
			walkErrChan <- r.enqueueDirectoryTasks(ctx, absoluteTarget, tasks)
			return
		}
		walkErrChan <- r.enqueueSingleFileTask(ctx, absoluteTarget, tasks)
	}()

	go func() {
		workerGroup.Wait()
		close(results)
	}()

	// 结果聚合只在这一个循环里发生，报告无须加锁。
	for outcome := range results {
		r.logger.Debug("file processed",
			"path", outcome.Path,
			"status", outcome.Status,
			"reason", outcome.Reason,
		)
		report.Add(outcome)
	}

	if walkErr := <-walkErrChan; walkErr != nil {
		return report, walkErr
	}

	sort.Slice(report.Outcomes, func(i int, j int) bool {
		return report.Outcomes[i].Path < report.Outcomes[j].Path
	})

	return report, nil
}

// enqueueDirectoryTasks 遍历目录，剪掉排除目录，按后缀过滤后入队。
func (r *Runner) enqueueDirectoryTasks(ctx context.Context, root string, tasks chan<- pipeline.Task) error {
	excluded := make(map[string]bool, len(r.config.ExcludeDirs))
	for _, name := range r.config.ExcludeDirs {
		excluded[name] = true
	}

	allowed := make(map[string]bool, len(r.config.Extensions))
	for _, ext := range r.config.Extensions {
		allowed[strings.ToLower(ext)] = true
	}

	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// 单个路径不可读不终止整体运行，记录后继续遍历其余文件。
			r.logger.Warn("walk error", "path", path, "error", walkErr)
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if entry.IsDir() {
			if path != root && excluded[entry.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if !allowed[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		relativePath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relativePath = path
		}

		select {
		case <-ctx.Done():
			// 中断后不再入队，已入队的文件由 worker 完整处理完。
			return ctx.Err()
		case tasks <- pipeline.Task{
			AbsolutePath: path,
			DisplayPath:  filepath.ToSlash(relativePath),
		}:
		}
		return nil
	})
}

// enqueueSingleFileTask 在用户给定单文件路径时创建任务。
// 后缀是否受支持交由流水线判定并体现在报告里。
func (r *Runner) enqueueSingleFileTask(ctx context.Context, filePath string, tasks chan<- pipeline.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case tasks <- pipeline.Task{
		AbsolutePath: filePath,
		DisplayPath:  filepath.Base(filePath),
	}:
	}
	return nil
}

// runWorker 从队列取任务并执行完整的单文件流水线。
func (r *Runner) runWorker(ctx context.Context, tasks <-chan pipeline.Task, results chan<- model.FileOutcome) {
	for task := range tasks {
		results <- r.pipeline.Process(ctx, task)
	}
}
