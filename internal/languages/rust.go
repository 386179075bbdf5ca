package languages

// rustProfile 定义 Rust 的词法规则。
//
// Rust 是本表中规则最复杂的语言：
// - 块注释支持嵌套，用深度计数处理；
// - 普通字符串允许跨行；
// - 原始字符串 r"..."、r#"..."#、br#"..."# 的 # 数量必须前后一致；
// - 单引号既是字符字面量又是生命周期标注（'a），
//   因此带 Guarded 标记，只有近距离内存在闭合引号才按字符串处理。
func rustProfile() *Profile {
	return &Profile{
		Name:        "Rust",
		Extensions:  []string{".rs"},
		LineMarkers: []string{"//"},
		BlockRules: []BlockRule{
			{Open: "/*", Close: "*/", Nested: true},
		},
		StringRules: []StringRule{
			{Open: `br"`, Close: `"`, MultiLine: true, HashDelim: true},
			{Open: `r"`, Close: `"`, MultiLine: true, HashDelim: true},
			{Open: `"`, Close: `"`, Escape: '\\', MultiLine: true},
			{Open: `'`, Close: `'`, Escape: '\\', Guarded: true},
		},
	}
}
