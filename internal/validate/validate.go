// Package validate 实现清理结果的语法校验闸门。
// 校验器以“能力注入”的方式按语言注册：核心契约只有
// Valid/Invalid/Unsupported 三种结论，不依赖任何具体工具链，
// 没有注册校验器的语言一律返回 Unsupported，属于正常情况。
package validate

import "context"

// Verdict 是校验结论。
type Verdict int

const (
	// VerdictValid 表示清理结果通过语法检查。
	VerdictValid Verdict = iota
	// VerdictInvalid 表示清理结果未通过语法检查，禁止写回。
	VerdictInvalid
	// VerdictUnsupported 表示该语言没有可用的校验能力。
	VerdictUnsupported
)

// String 返回结论的可读名称。
func (v Verdict) String() string {
	switch v {
	case VerdictValid:
		return "valid"
	case VerdictInvalid:
		return "invalid"
	case VerdictUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Result 携带结论和可选的错误信息。
type Result struct {
	Verdict Verdict
	Message string
}

// Func 是单语言校验能力：输入清理后的文本，输出结论。
// suffix 是被处理文件自身的后缀（含点号），外部工具类校验器
// 用它决定临时文件后缀，保证工具选对语言前端（如 gcc 的 C/C++）。
type Func func(ctx context.Context, suffix string, content string) Result

// Gate 按语言名持有校验能力。
// 注册在运行开始前完成，之后只读，可并发调用。
type Gate struct {
	validators map[string]Func
}

// NewGate 创建空的校验闸门。
func NewGate() *Gate {
	return &Gate{validators: make(map[string]Func)}
}

// Register 为指定语言注册校验能力，重复注册时后者覆盖前者。
func (g *Gate) Register(language string, fn Func) {
	g.validators[language] = fn
}

// Validate 执行校验。未注册的语言返回 Unsupported。
func (g *Gate) Validate(ctx context.Context, language string, suffix string, content string) Result {
	fn, ok := g.validators[language]
	if !ok {
		return Result{Verdict: VerdictUnsupported}
	}
	return fn(ctx, suffix, content)
}
