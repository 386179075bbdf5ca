package languages

// sqlProfile 定义 SQL 的词法规则。
// 块注释按主流方言（PostgreSQL 等）支持嵌套；
// 字符串用写两遍引号的方式转义（'' 与 ""）。
func sqlProfile() *Profile {
	return &Profile{
		Name:        "SQL",
		Extensions:  []string{".sql"},
		LineMarkers: []string{"--"},
		BlockRules: []BlockRule{
			{Open: "/*", Close: "*/", Nested: true},
		},
		StringRules: []StringRule{
			{Open: `'`, Close: `'`, Doubled: true, MultiLine: true},
			{Open: `"`, Close: `"`, Doubled: true, MultiLine: true},
		},
	}
}
