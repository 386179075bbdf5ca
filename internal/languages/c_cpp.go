package languages

// cCPPProfile 定义 C/C++ 共用的词法规则。
// 两种语言的注释与字符串语法一致，这里合并为一个规则表。
func cCPPProfile() *Profile {
	return &Profile{
		Name:        "C/C++",
		Extensions:  []string{".c", ".h", ".cc", ".hh", ".cpp", ".hpp"},
		LineMarkers: []string{"//"},
		BlockRules: []BlockRule{
			{Open: "/*", Close: "*/"},
		},
		StringRules: []StringRule{
			{Open: `"`, Close: `"`, Escape: '\\'},
			{Open: `'`, Close: `'`, Escape: '\\'},
		},
	}
}
