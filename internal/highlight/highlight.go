// Package highlight 封装 chroma 语法高亮，供代码块渲染使用
package highlight

import (
	"bytes"
	"sync"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/riverfjs/treemark-go/internal/util"
)

var (
	lexerCache   = make(map[string]chroma.Lexer)
	lexerCacheMu sync.RWMutex

	formatter = chromahtml.New(chromahtml.TabWidth(4))
)

// lookupLexer resolves a normalized language token to a coalesced lexer,
// caching the result. Returns nil when the language is unknown.
func lookupLexer(lang string) chroma.Lexer {
	lexerCacheMu.RLock()
	lexer := lexerCache[lang]
	lexerCacheMu.RUnlock()
	if lexer != nil {
		return lexer
	}

	lexer = lexers.Get(lang)
	if lexer == nil {
		// Try with a file extension; some tokens only match by filename.
		lexer = lexers.Match("file." + lang)
	}
	if lexer == nil {
		return nil
	}

	lexer = chroma.Coalesce(lexer)
	lexerCacheMu.Lock()
	lexerCache[lang] = lexer
	lexerCacheMu.Unlock()
	return lexer
}

// Highlight 将代码渲染为带内联样式的 HTML 标记
//
// 返回值第二项为 false 时表示无法高亮（语言未知或 tokenize 失败），
// 调用方应回退到无样式的预格式化文本。
func Highlight(code, language string, style *chroma.Style) (string, bool) {
	lang := util.NormalizeLanguage(language)
	if lang == "" || lang == "text" {
		return "", false
	}

	lexer := lookupLexer(lang)
	if lexer == nil {
		return "", false
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", false
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return "", false
	}
	return buf.String(), true
}
