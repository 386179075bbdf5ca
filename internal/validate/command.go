package validate

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// CommandValidator 构造一个“落临时文件 + 调外部命令”的校验能力。
// 临时文件后缀优先取被处理文件自身的后缀（多数工具按后缀识别语言，
// gcc 更是据此切换 C/C++ 前端），调用方没给后缀时退回 defaultSuffix。
// 命令参数末尾会追加临时文件路径，退出码非零即 Invalid。
// 宿主机上找不到命令时返回 Unsupported，而不是 Invalid。
func CommandValidator(defaultSuffix string, command string, args ...string) Func {
	return func(ctx context.Context, suffix string, content string) Result {
		if _, err := exec.LookPath(command); err != nil {
			return Result{Verdict: VerdictUnsupported}
		}

		if suffix == "" {
			suffix = defaultSuffix
		}

		tempFile, err := os.CreateTemp("", "decomment-*"+suffix)
		if err != nil {
			return Result{Verdict: VerdictUnsupported, Message: fmt.Sprintf("create temp file: %v", err)}
		}
		tempPath := tempFile.Name()
		defer os.Remove(tempPath)

		if _, err := tempFile.WriteString(content); err != nil {
			tempFile.Close()
			return Result{Verdict: VerdictUnsupported, Message: fmt.Sprintf("write temp file: %v", err)}
		}
		if err := tempFile.Close(); err != nil {
			return Result{Verdict: VerdictUnsupported, Message: fmt.Sprintf("close temp file: %v", err)}
		}

		commandArgs := append(append([]string(nil), args...), tempPath)
		output, runErr := exec.CommandContext(ctx, command, commandArgs...).CombinedOutput()
		if runErr != nil {
			message := strings.TrimSpace(string(output))
			if message == "" {
				message = runErr.Error()
			}
			return Result{Verdict: VerdictInvalid, Message: message}
		}

		return Result{Verdict: VerdictValid}
	}
}

// DefaultGate 注册内置的外部校验能力。
// 对应工具缺失时各能力自动退化为 Unsupported，不影响运行。
func DefaultGate() *Gate {
	gate := NewGate()
	gate.Register("JavaScript", CommandValidator(".js", "node", "--check"))
	gate.Register("TypeScript", CommandValidator(".ts", "node", "--check"))
	gate.Register("PHP", CommandValidator(".php", "php", "-l"))
	gate.Register("C/C++", CommandValidator(".c", "gcc", "-fsyntax-only"))
	gate.Register("Python", CommandValidator(".py", "python3", "-m", "py_compile"))
	return gate
}
