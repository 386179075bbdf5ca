package languages

// pythonProfile 定义 Python 的词法规则。
//
// Python 没有块注释；三引号字符串是字符串而不是注释，
// docstring 会被原样保留。三引号规则必须排在单引号规则之前
// 依赖扫描器的最长匹配，此处顺序只是便于阅读。
func pythonProfile() *Profile {
	return &Profile{
		Name:        "Python",
		Extensions:  []string{".py"},
		LineMarkers: []string{"#"},
		StringRules: []StringRule{
			{Open: `"""`, Close: `"""`, Escape: '\\', MultiLine: true},
			{Open: `'''`, Close: `'''`, Escape: '\\', MultiLine: true},
			{Open: `"`, Close: `"`, Escape: '\\'},
			{Open: `'`, Close: `'`, Escape: '\\'},
		},
	}
}
