package languages

import (
	"path/filepath"
	"sort"
	"strings"
)

// LanguageDescriptor 用于对外展示语言及后缀信息。
type LanguageDescriptor struct {
	Name       string
	Extensions []string
}

// Registry 管理语言规则表注册与后缀映射。
// 构造完成后只读，并发查询无需加锁。
type Registry struct {
	profiles     []*Profile
	profileByExt map[string]*Profile
}

// NewRegistry 创建并注册所有内置语言规则表。
func NewRegistry() *Registry {
	profiles := []*Profile{
		goProfile(),
		javaScriptProfile(),
		typeScriptProfile(),
		pythonProfile(),
		rustProfile(),
		rubyProfile(),
		javaProfile(),
		cCPPProfile(),
		phpProfile(),
		cssProfile(),
		htmlProfile(),
		sqlProfile(),
	}

	registry := &Registry{
		profiles:     profiles,
		profileByExt: make(map[string]*Profile),
	}

	for _, profile := range profiles {
		for _, ext := range profile.Extensions {
			registry.profileByExt[strings.ToLower(ext)] = profile
		}
	}

	return registry
}

// ProfileForFile 根据文件后缀查找语言规则表。
func (r *Registry) ProfileForFile(path string) (*Profile, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	profile, ok := r.profileByExt[ext]
	return profile, ok
}

// Extensions 返回全部已注册后缀，供目录遍历做默认过滤。
func (r *Registry) Extensions() []string {
	result := make([]string, 0, len(r.profileByExt))
	for ext := range r.profileByExt {
		result = append(result, ext)
	}
	sort.Strings(result)
	return result
}

// Languages 返回已注册语言清单。
func (r *Registry) Languages() []LanguageDescriptor {
	result := make([]LanguageDescriptor, 0, len(r.profiles))
	for _, profile := range r.profiles {
		extensions := append([]string(nil), profile.Extensions...)
		sort.Strings(extensions)
		result = append(result, LanguageDescriptor{
			Name:       profile.Name,
			Extensions: extensions,
		})
	}

	sort.Slice(result, func(i int, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// ExtensionsForLanguage 返回指定语言对应的全部后缀。
func (r *Registry) ExtensionsForLanguage(language string) []string {
	for _, profile := range r.profiles {
		if profile.Name == language {
			extensions := append([]string(nil), profile.Extensions...)
			sort.Strings(extensions)
			return extensions
		}
	}
	return nil
}
