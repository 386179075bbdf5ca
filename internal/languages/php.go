package languages

// phpProfile 定义 PHP 的词法规则。
// PHP 同时支持 // 与 # 两种行注释；字符串允许跨行。
// heredoc/nowdoc 未建模，其内容若包含注释标记可能被误删，见 DESIGN.md。
func phpProfile() *Profile {
	return &Profile{
		Name:        "PHP",
		Extensions:  []string{".php"},
		LineMarkers: []string{"//", "#"},
		BlockRules: []BlockRule{
			{Open: "/*", Close: "*/"},
		},
		StringRules: []StringRule{
			{Open: `"`, Close: `"`, Escape: '\\', MultiLine: true},
			{Open: `'`, Close: `'`, Escape: '\\', MultiLine: true},
		},
	}
}
