package languages

// cssProfile 定义 CSS 的词法规则。
// CSS 只有块注释，没有行注释。
func cssProfile() *Profile {
	return &Profile{
		Name:       "CSS",
		Extensions: []string{".css"},
		BlockRules: []BlockRule{
			{Open: "/*", Close: "*/"},
		},
		StringRules: []StringRule{
			{Open: `"`, Close: `"`, Escape: '\\'},
			{Open: `'`, Close: `'`, Escape: '\\'},
		},
	}
}
