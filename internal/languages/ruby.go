package languages

// rubyProfile 定义 Ruby 的词法规则。
// =begin/=end 只在行首生效，且指令所在行的剩余内容一并属于注释。
func rubyProfile() *Profile {
	return &Profile{
		Name:        "Ruby",
		Extensions:  []string{".rb"},
		LineMarkers: []string{"#"},
		BlockRules: []BlockRule{
			{Open: "=begin", Close: "=end", LineAnchored: true, SwallowLine: true},
		},
		StringRules: []StringRule{
			{Open: `"`, Close: `"`, Escape: '\\', MultiLine: true},
			{Open: `'`, Close: `'`, Escape: '\\', MultiLine: true},
		},
	}
}
