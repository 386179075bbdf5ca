// Package storage 封装流水线需要的全部文件操作：
// 读取原文、写备份、原子覆盖。读取与备份走 afs 抽象存储服务，
// 覆盖写采用“同目录临时文件 + rename”的整文件替换，
// 保证运行中断时目标文件要么是原文要么是完整的清理结果。
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
)

// BackupSuffix 是备份文件的固定后缀，追加在原路径之后。
const BackupSuffix = ".bak"

// Store 是文件操作服务。
type Store struct {
	fs afs.Service
}

// NewStore 创建文件操作服务。
func NewStore() *Store {
	return &Store{fs: afs.New()}
}

// Read 读取文件全文。
func (s *Store) Read(ctx context.Context, path string) (string, error) {
	data, err := s.fs.DownloadWithURL(ctx, path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// WriteBackup 把原始内容写到 <path>.bak，返回备份路径。
// 备份失败时调用方必须放弃覆盖原文件。
func (s *Store) WriteBackup(ctx context.Context, path string, content string) (string, error) {
	backupPath := path + BackupSuffix
	if err := s.fs.Upload(ctx, backupPath, 0o644, strings.NewReader(content)); err != nil {
		return "", fmt.Errorf("write backup %s: %w", backupPath, err)
	}
	return backupPath, nil
}

// Replace 用清理结果整体替换目标文件。
// 先写同目录临时文件再 rename，避免留下半成品；文件权限沿用原文件。
func (s *Store) Replace(ctx context.Context, path string, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	directory := filepath.Dir(path)
	tempFile, err := os.CreateTemp(directory, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", directory, err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.WriteString(content); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return fmt.Errorf("write temp file %s: %w", tempPath, err)
	}
	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("close temp file %s: %w", tempPath, err)
	}

	if err := os.Chmod(tempPath, info.Mode().Perm()); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("chmod temp file %s: %w", tempPath, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
