package languages

// htmlProfile 定义 HTML 的词法规则。
//
// HTML 不登记字符串规则：正文里的撇号（don't）会被误判为
// 打开引号，导致大量文件被标记为未闭合。代价是属性值内部的
// <!-- 也会被当注释删除，这与原始行为一致，属于可接受的取舍。
func htmlProfile() *Profile {
	return &Profile{
		Name:       "HTML",
		Extensions: []string{".html", ".htm"},
		BlockRules: []BlockRule{
			{Open: "<!--", Close: "-->"},
		},
	}
}
