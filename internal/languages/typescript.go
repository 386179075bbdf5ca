package languages

// typeScriptProfile 定义 TypeScript 的词法规则。
// 注释与字符串语法与 JavaScript 一致，仅后缀不同。
func typeScriptProfile() *Profile {
	return &Profile{
		Name:        "TypeScript",
		Extensions:  []string{".ts", ".tsx"},
		LineMarkers: []string{"//"},
		BlockRules: []BlockRule{
			{Open: "/*", Close: "*/"},
		},
		StringRules: []StringRule{
			{Open: `"`, Close: `"`, Escape: '\\'},
			{Open: `'`, Close: `'`, Escape: '\\'},
			{Open: "`", Close: "`", Escape: '\\', MultiLine: true},
		},
	}
}
