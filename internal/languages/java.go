package languages

// javaProfile 定义 Java 的词法规则。
// 文本块 """...""" 自 Java 15 起可用，允许跨行，必须先于普通双引号匹配。
func javaProfile() *Profile {
	return &Profile{
		Name:        "Java",
		Extensions:  []string{".java"},
		LineMarkers: []string{"//"},
		BlockRules: []BlockRule{
			{Open: "/*", Close: "*/"},
		},
		StringRules: []StringRule{
			{Open: `"""`, Close: `"""`, Escape: '\\', MultiLine: true},
			{Open: `"`, Close: `"`, Escape: '\\'},
			{Open: `'`, Close: `'`, Escape: '\\'},
		},
	}
}
