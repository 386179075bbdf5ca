package languages

// goProfile 定义 Go 语言的词法规则。
// Go 的块注释不支持嵌套；反引号原始字符串不处理转义且允许跨行。
func goProfile() *Profile {
	return &Profile{
		Name:        "Go",
		Extensions:  []string{".go"},
		LineMarkers: []string{"//"},
		BlockRules: []BlockRule{
			{Open: "/*", Close: "*/"},
		},
		StringRules: []StringRule{
			{Open: `"`, Close: `"`, Escape: '\\'},
			{Open: `'`, Close: `'`, Escape: '\\'},
			{Open: "`", Close: "`", MultiLine: true},
		},
	}
}
