// Package scanner 实现共享的词法清理状态机。
// 扫描器本身不包含任何语言知识，全部规则来自 languages.Profile：
// 同一套状态转移按规则表处理所有语言，新增语言不会新增控制流。
package scanner

import (
	"strings"

	"decomment/internal/languages"
)

// Result 是一次扫描的完整产物。
type Result struct {
	// Cleaned 是去掉注释后的文本。Unterminated 为 true 时内容不完整，
	// 调用方不应把它写回磁盘。
	Cleaned string
	// OriginalLines 与 CleanedLines 用于校验“清理不增删行”的约束。
	OriginalLines int
	CleanedLines  int
	// RemovedBytes 是被删除的字节数，供 dry-run 预览展示。
	RemovedBytes int
	// Unterminated 表示扫描结束时仍停留在字符串或块注释内部，
	// 或在不允许跨行的字符串里遇到了裸换行。
	Unterminated bool
}

// Strip 对整段文本执行单次从左到右扫描，删除注释并原样保留其余内容。
//
// 不变式：
// - 字符串字面量内部的字节逐一原样输出，包括看起来像注释标记的内容；
// - 行注释删除到行尾，换行符本身保留；
// - 块注释内部的换行符保留，其余内容丢弃，保证行号不漂移。
func Strip(content string, profile *languages.Profile) Result {
	engine := &stripEngine{
		profile: profile,
		input:   content,
	}
	engine.output.Grow(len(content))

	unterminated := engine.run()
	cleaned := engine.output.String()

	return Result{
		Cleaned:       cleaned,
		OriginalLines: countLines(content),
		CleanedLines:  countLines(cleaned),
		RemovedBytes:  len(content) - len(cleaned),
		Unterminated:  unterminated,
	}
}

// stripEngine 保存扫描过程中的全部可变状态。
type stripEngine struct {
	profile *languages.Profile
	input   string
	pos     int
	output  strings.Builder

	// lineHasToken 表示当前行在行首空白之后是否已出现有效内容，
	// 用于判定只在行首生效的块注释标记（Ruby =begin/=end）。
	lineHasToken bool
}

// run 执行 Code 状态主循环，返回是否以未闭合状态结束。
func (e *stripEngine) run() bool {
	for e.pos < len(e.input) {
		current := e.input[e.pos]

		if current == '\n' {
			e.emitByte('\n')
			e.lineHasToken = false
			e.pos++
			continue
		}

		// 注释类标记优先于字符串类标记；各类内部按最长匹配取胜。
		if rule, ok := e.matchBlockOpen(); ok {
			e.pos += len(rule.Open)
			if rule.SwallowLine {
				e.discardToLineEnd()
			}
			if !e.consumeBlockComment(rule) {
				return true
			}
			continue
		}

		if marker, ok := e.matchLineMarker(); ok {
			e.pos += len(marker)
			e.discardToLineEnd()
			continue
		}

		if rule, consumed, hashes, ok := e.matchStringOpen(); ok {
			e.emit(e.input[e.pos : e.pos+consumed])
			e.pos += consumed
			e.lineHasToken = true
			if !e.consumeString(rule, hashes) {
				return true
			}
			continue
		}

		e.emitByte(current)
		if !isLineSpace(current) {
			e.lineHasToken = true
		}
		e.pos++
	}

	return false
}

// matchBlockOpen 在当前位置匹配块注释开始标记，多规则时取最长者。
func (e *stripEngine) matchBlockOpen() (*languages.BlockRule, bool) {
	var best *languages.BlockRule
	for i := range e.profile.BlockRules {
		rule := &e.profile.BlockRules[i]
		if rule.LineAnchored && e.lineHasToken {
			continue
		}
		if !e.lookingAt(rule.Open) {
			continue
		}
		if best == nil || len(rule.Open) > len(best.Open) {
			best = rule
		}
	}
	return best, best != nil
}

// matchLineMarker 在当前位置匹配行注释标记，取最长者。
func (e *stripEngine) matchLineMarker() (string, bool) {
	best := ""
	for _, marker := range e.profile.LineMarkers {
		if e.lookingAt(marker) && len(marker) > len(best) {
			best = marker
		}
	}
	return best, best != ""
}

// matchStringOpen 在当前位置匹配字符串开始定界符。
// 返回值 consumed 是开始定界符实际占用的字节数（含原始字符串的 # 序列），
// hashes 是原始字符串的 # 数量。
func (e *stripEngine) matchStringOpen() (rule *languages.StringRule, consumed int, hashes int, ok bool) {
	for i := range e.profile.StringRules {
		candidate := &e.profile.StringRules[i]

		candidateConsumed, candidateHashes, matched := e.matchOneStringOpen(candidate)
		if !matched {
			continue
		}
		if rule == nil || candidateConsumed > consumed {
			rule = candidate
			consumed = candidateConsumed
			hashes = candidateHashes
		}
	}
	return rule, consumed, hashes, rule != nil
}

// matchOneStringOpen 针对单条规则判断开始定界符是否命中。
func (e *stripEngine) matchOneStringOpen(rule *languages.StringRule) (consumed int, hashes int, ok bool) {
	if rule.HashDelim {
		return e.matchHashDelimOpen(rule)
	}

	if !e.lookingAt(rule.Open) {
		return 0, 0, false
	}

	if rule.Guarded && !e.guardedCloseNearby(rule, len(rule.Open)) {
		return 0, 0, false
	}

	return len(rule.Open), 0, true
}

// matchHashDelimOpen 匹配 Rust 原始字符串的开始形态：
// Open 的末字节是引号，引号前允许插入任意数量的 #（r"、r#"、br##" 等）。
// 为避免把标识符结尾的 r 误判成前缀，要求前一个字节不是标识符字符。
func (e *stripEngine) matchHashDelimOpen(rule *languages.StringRule) (consumed int, hashes int, ok bool) {
	prefix := rule.Open[:len(rule.Open)-1]
	quote := rule.Open[len(rule.Open)-1]

	if !e.lookingAt(prefix) {
		return 0, 0, false
	}
	if e.pos > 0 && isIdentByte(e.input[e.pos-1]) {
		return 0, 0, false
	}

	cursor := e.pos + len(prefix)
	for cursor < len(e.input) && e.input[cursor] == '#' {
		hashes++
		cursor++
	}
	if cursor >= len(e.input) || e.input[cursor] != quote {
		return 0, 0, false
	}

	return cursor + 1 - e.pos, hashes, true
}

// guardedCloseNearby 判断带守卫的定界符近处是否存在合法闭合。
// 对应 Rust 的字符字面量：'a' 或 '\n'，否则按生命周期标注放行。
func (e *stripEngine) guardedCloseNearby(rule *languages.StringRule, openLen int) bool {
	body := e.pos + openLen
	if body >= len(e.input) {
		return false
	}

	if rule.Escape != 0 && e.input[body] == rule.Escape {
		// 转义形态：'\x'，闭合符在转义字符之后两个位置。
		return body+2 < len(e.input) && strings.HasPrefix(e.input[body+2:], rule.Close)
	}

	return body+1 < len(e.input) && strings.HasPrefix(e.input[body+1:], rule.Close)
}

// consumeBlockComment 处理 InBlockComment 状态。
// 注释内容全部丢弃，只保留换行；支持嵌套时用深度计数。
// 返回 false 表示输入结束时注释仍未闭合。
func (e *stripEngine) consumeBlockComment(rule *languages.BlockRule) bool {
	depth := 1

	// lineClean 表示注释内部当前行到目前为止只有空白，
	// 用于行首锚定的闭合标记（=end）判定。
	lineClean := !e.lineHasToken

	for e.pos < len(e.input) {
		current := e.input[e.pos]

		if current == '\n' {
			e.emitByte('\n')
			e.lineHasToken = false
			lineClean = true
			e.pos++
			continue
		}

		anchorOK := !rule.LineAnchored || lineClean

		if rule.Nested && anchorOK && e.lookingAt(rule.Open) {
			depth++
			e.pos += len(rule.Open)
			lineClean = false
			continue
		}

		if anchorOK && e.lookingAt(rule.Close) {
			depth--
			e.pos += len(rule.Close)
			if rule.SwallowLine {
				e.discardToLineEnd()
			}
			if depth == 0 {
				return true
			}
			lineClean = false
			continue
		}

		if !isLineSpace(current) {
			lineClean = false
		}
		e.pos++
	}

	return false
}

// consumeString 处理 InString 状态，内容原样输出直到闭合。
// 返回 false 表示字符串未闭合（输入结束或不允许的裸换行）。
func (e *stripEngine) consumeString(rule *languages.StringRule, hashes int) bool {
	escaped := false

	for e.pos < len(e.input) {
		current := e.input[e.pos]

		// 被转义的字符永远按字面内容输出，包括被转义的换行。
		if escaped {
			e.emitByte(current)
			if current == '\n' {
				e.lineHasToken = false
			}
			escaped = false
			e.pos++
			continue
		}

		if rule.Escape != 0 && current == rule.Escape {
			e.emitByte(current)
			escaped = true
			e.pos++
			continue
		}

		if current == '\n' {
			if !rule.MultiLine {
				return false
			}
			e.emitByte('\n')
			e.lineHasToken = false
			e.pos++
			continue
		}

		// SQL 风格的双写闭合符是转义而非闭合。
		if rule.Doubled && e.lookingAt(rule.Close) && e.lookingAtOffset(rule.Close, len(rule.Close)) {
			e.emit(e.input[e.pos : e.pos+2*len(rule.Close)])
			e.pos += 2 * len(rule.Close)
			continue
		}

		if e.matchStringClose(rule, hashes) {
			closeLen := len(rule.Close) + hashes
			e.emit(e.input[e.pos : e.pos+closeLen])
			e.pos += closeLen
			e.lineHasToken = true
			return true
		}

		e.emitByte(current)
		e.pos++
	}

	return false
}

// matchStringClose 判断当前位置是否命中字符串闭合符。
// 原始字符串要求引号后跟随与开头数量一致的 #。
func (e *stripEngine) matchStringClose(rule *languages.StringRule, hashes int) bool {
	if !e.lookingAt(rule.Close) {
		return false
	}
	for i := 0; i < hashes; i++ {
		index := e.pos + len(rule.Close) + i
		if index >= len(e.input) || e.input[index] != '#' {
			return false
		}
	}
	return true
}

// discardToLineEnd 丢弃从当前位置到行尾的内容。
// 换行符本身不消费，交给主循环统一输出。
func (e *stripEngine) discardToLineEnd() {
	for e.pos < len(e.input) && e.input[e.pos] != '\n' {
		e.pos++
	}
}

// lookingAt 判断输入在当前位置是否以 token 开头。
func (e *stripEngine) lookingAt(token string) bool {
	return token != "" && strings.HasPrefix(e.input[e.pos:], token)
}

// lookingAtOffset 判断输入在当前位置偏移 offset 处是否以 token 开头。
func (e *stripEngine) lookingAtOffset(token string, offset int) bool {
	index := e.pos + offset
	return index <= len(e.input) && strings.HasPrefix(e.input[index:], token)
}

// emit 追加一段原文到输出。
func (e *stripEngine) emit(text string) {
	e.output.WriteString(text)
}

// emitByte 追加单个字节到输出。
func (e *stripEngine) emitByte(b byte) {
	e.output.WriteByte(b)
}

// isLineSpace 判断是否行内空白（不含换行）。
func isLineSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}

// isIdentByte 判断是否标识符组成字符。
func isIdentByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// countLines 统计文本行数，末行没有换行符时同样计 1 行。
func countLines(text string) int {
	if text == "" {
		return 0
	}
	count := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		count++
	}
	return count
}
