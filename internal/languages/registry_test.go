package languages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistryLookup 验证后缀到语言规则表的映射。
func TestRegistryLookup(t *testing.T) {
	registry := NewRegistry()

	cases := map[string]string{
		"main.go":    "Go",
		"app.jsx":    "JavaScript",
		"app.tsx":    "TypeScript",
		"tool.py":    "Python",
		"lib.rs":     "Rust",
		"task.rb":    "Ruby",
		"App.java":   "Java",
		"core.hpp":   "C/C++",
		"index.php":  "PHP",
		"site.css":   "CSS",
		"page.htm":   "HTML",
		"schema.sql": "SQL",
	}

	for path, language := range cases {
		profile, ok := registry.ProfileForFile(path)
		require.True(t, ok, "missing profile for %s", path)
		assert.Equal(t, language, profile.Name, path)
	}
}

// TestRegistryCaseInsensitive 验证后缀匹配不区分大小写。
func TestRegistryCaseInsensitive(t *testing.T) {
	registry := NewRegistry()

	profile, ok := registry.ProfileForFile("MAIN.GO")
	require.True(t, ok)
	assert.Equal(t, "Go", profile.Name)
}

// TestRegistryUnknownExtension 验证未注册后缀返回未命中。
func TestRegistryUnknownExtension(t *testing.T) {
	registry := NewRegistry()

	_, ok := registry.ProfileForFile("README.txt")
	assert.False(t, ok)
	_, ok = registry.ProfileForFile("Makefile")
	assert.False(t, ok)
}

// TestRegistryLanguages 验证语言清单完整且有序。
func TestRegistryLanguages(t *testing.T) {
	registry := NewRegistry()
	descriptors := registry.Languages()

	require.Len(t, descriptors, 12)
	for i := 1; i < len(descriptors); i++ {
		assert.Less(t, descriptors[i-1].Name, descriptors[i].Name)
	}

	assert.Equal(t, []string{".c", ".cc", ".cpp", ".h", ".hh", ".hpp"}, registry.ExtensionsForLanguage("C/C++"))
	assert.Nil(t, registry.ExtensionsForLanguage("COBOL"))
	assert.Contains(t, registry.Extensions(), ".py")
}
