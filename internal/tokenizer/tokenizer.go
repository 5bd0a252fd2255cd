// Package tokenizer 将 Markdown 源文本解析为扁平的 (事件, 源区间) 流
//
// 解析委托给 goldmark，随后一次 AST 遍历把嵌套结构摊平：每个容器
// 节点变成一对 Start/End 事件，叶子节点变成单个事件。goldmark 不
// 认识的行内语法（$ 公式定界、[[wiki 链接]]、文件头部的 YAML
// frontmatter）由本包自行扫描补充。
package tokenizer

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/riverfjs/treemark-go/internal/types"
)

// Options 控制 goldmark 之外的识别能力
type Options struct {
	// Wikilinks 识别 [[目标]] 与 [[目标|显示文本]] 语法
	Wikilinks bool
	// EnableMath 识别 $...$ 与 $$...$$ 公式定界
	EnableMath bool
	// GoldmarkOptions 追加在标准配置之后，可覆盖或扩展解析能力
	GoldmarkOptions []goldmark.Option
}

// StandardOptions 默认的 goldmark 配置：GFM（表格、删除线、任务
// 列表、自动链接）加脚注和定义列表
func StandardOptions() []goldmark.Option {
	return []goldmark.Option{
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			extension.DefinitionList,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	}
}

// Tokenize 解析 source 并返回事件流
//
// 事件区间以 source 的字节偏移表示，叶子事件的区间精确指向其
// 源文本。流保证结构良好：Start/End 严格配对，代码块内容恰为
// 零或一个 Text 事件。
func Tokenize(source []byte, opts Options) []types.Spanned {
	w := &walker{source: source}

	if meta, metaStart, bodyStart := splitFrontmatter(source); bodyStart > 0 {
		w.emit(types.Start{Tag: types.MetadataBlock{}}, types.Range{Start: 0, End: bodyStart})
		if len(meta) > 0 {
			w.emit(types.Text{Content: string(meta)}, types.Range{Start: metaStart, End: metaStart + len(meta)})
		}
		w.emit(types.End{Tag: types.EndMetadataBlock}, types.Range{Start: bodyStart, End: bodyStart})
		w.source = source[bodyStart:]
		w.base = bodyStart
	}

	gmOpts := StandardOptions()
	var inline []util.PrioritizedValue
	if opts.EnableMath {
		inline = append(inline, util.Prioritized(&mathParser{}, 150))
	}
	if opts.Wikilinks {
		// 优先级要高于内置的链接 parser，否则 [[ 被当成普通括号
		inline = append(inline, util.Prioritized(&wikilinkParser{}, 150))
	}
	if len(inline) > 0 {
		gmOpts = append(gmOpts, goldmark.WithParserOptions(parser.WithInlineParsers(inline...)))
	}
	gmOpts = append(gmOpts, opts.GoldmarkOptions...)

	md := goldmark.New(gmOpts...)
	doc := md.Parser().Parse(text.NewReader(w.source))
	_ = ast.Walk(doc, w.Walk)

	return w.events
}

// splitFrontmatter 识别源文本首字节处以 --- 围栏包住的 YAML
// frontmatter。返回围栏之间的内容、内容的字节偏移和正文的字节
// 偏移；没有 frontmatter 时 bodyStart 为 0。
func splitFrontmatter(source []byte) (meta []byte, metaStart, bodyStart int) {
	fenceLen := 0
	switch {
	case bytes.HasPrefix(source, []byte("---\n")):
		fenceLen = 4
	case bytes.HasPrefix(source, []byte("---\r\n")):
		fenceLen = 5
	default:
		return nil, 0, 0
	}

	rest := source[fenceLen:]
	idx := 0
	for {
		j := bytes.Index(rest[idx:], []byte("\n---"))
		if j < 0 {
			return nil, 0, 0
		}
		pos := idx + j
		after := rest[pos+4:]
		switch {
		case len(after) == 0:
			return rest[:pos], fenceLen, len(source)
		case after[0] == '\n':
			return rest[:pos], fenceLen, fenceLen + pos + 5
		case len(after) >= 2 && after[0] == '\r' && after[1] == '\n':
			return rest[:pos], fenceLen, fenceLen + pos + 6
		}
		idx = pos + 1
	}
}
