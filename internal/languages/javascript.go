package languages

// javaScriptProfile 定义 JavaScript 的词法规则。
//
// 说明：
// - 模板字符串（反引号）允许跨行，内部的 // 与 /* 均为普通文本；
// - 普通字符串不允许裸换行，但 \ 转义换行（行继续）可以通过转义路径合法通过；
// - 正则字面量未建模，/pattern// 这类极端写法不在保证范围内。
func javaScriptProfile() *Profile {
	return &Profile{
		Name:        "JavaScript",
		Extensions:  []string{".js", ".mjs", ".cjs", ".jsx"},
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
