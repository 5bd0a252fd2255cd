package util

import (
	"strings"
)

// languageAliases maps fence language tokens to the names the syntax
// highlighter registry knows. Only aliases the registry itself does not
// resolve need an entry here.
var languageAliases = map[string]string{
	"golang":     "go",
	"shell":      "bash",
	"sh":         "bash",
	"zsh":        "bash",
	"dotenv":     "properties",
	"jsonc":      "json",
	"yml":        "yaml",
	"plaintext":  "text",
	"plain":      "text",
	"txt":        "text",
	"c++":        "cpp",
	"ts":         "typescript",
	"js":         "javascript",
	"py":         "python",
	"rb":         "ruby",
	"rs":         "rust",
	"dockerfile": "docker",
}

// NormalizeLanguage reduces a fence info string to a lexer lookup token.
//
// Fence info strings may carry extra fields after a comma or whitespace
// ("python,linenos", "go title=..."); only the first field names the
// language.
func NormalizeLanguage(token string) string {
	lang := strings.TrimSpace(token)
	if i := strings.IndexAny(lang, ", \t"); i >= 0 {
		lang = lang[:i]
	}
	lang = strings.ToLower(lang)
	if alias, ok := languageAliases[lang]; ok {
		return alias
	}
	return lang
}
