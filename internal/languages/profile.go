// Package languages 定义各语言的词法规则表与注册中心。
// 每种语言只是一份数据记录（Profile），真正的扫描逻辑由
// internal/scanner 里共享的状态机完成：新增语言只需新增记录，
// 不需要新增任何控制流。
package languages

// StringRule 描述一种字符串字面量的定界规则。
type StringRule struct {
	// Open 与 Close 是开闭定界符，多数语言二者相同。
	Open  string
	Close string
	// Escape 是字符串内部的转义字符，0 表示该字面量不处理转义（如 Go 反引号）。
	Escape byte
	// Doubled 表示用“写两遍闭合符”转义闭合符（SQL 的 '' 与 ""）。
	Doubled bool
	// MultiLine 表示字面量允许包含裸换行。
	// 为 false 时，闭合前遇到换行按“未闭合字符串”处理。
	MultiLine bool
	// Guarded 表示只有在近距离内能看到闭合符时才进入字符串状态，
	// 用于区分 Rust 的字符字面量 'a' 与生命周期标注 'a。
	Guarded bool
	// HashDelim 表示 Rust 原始字符串：Open 前缀之后允许若干 #，
	// 闭合时引号后必须跟数量一致的 #。
	HashDelim bool
}

// BlockRule 描述一种块注释的定界规则。
type BlockRule struct {
	Open  string
	Close string
	// Nested 表示开闭符可以嵌套（Rust、SQL），扫描器用深度计数处理。
	Nested bool
	// LineAnchored 表示开闭符只在行首（允许前导空白）生效，
	// 对应 Ruby 的 =begin/=end。
	LineAnchored bool
	// SwallowLine 表示命中开闭符后丢弃该行剩余内容（=begin doc 之类的尾巴）。
	SwallowLine bool
}

// Profile 是一种语言的完整词法规则表。
// 注册完成后不再修改，可被任意多个 goroutine 并发读取。
type Profile struct {
	Name        string
	Extensions  []string
	LineMarkers []string
	BlockRules  []BlockRule
	StringRules []StringRule
}
