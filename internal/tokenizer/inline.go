package tokenizer

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/treemark-go/internal/types"
)

// goldmark 本身不认识 $ 公式定界和 [[wiki 链接]]，用行内 parser
// 扩展补上。不能在 Text 事件里做字符串扫描：goldmark 会把括号、
// 强调符号拆成多个 Text 节点，定界符可能被切开。

// ---- 公式 ----

var kindMath = ast.NewNodeKind("Math")

type mathNode struct {
	ast.BaseInline
	mode    types.MathMode
	content string
	// seg 含定界符的源区间
	seg text.Segment
}

func (n *mathNode) Kind() ast.NodeKind { return kindMath }

func (n *mathNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

type mathParser struct{}

func (p *mathParser) Trigger() []byte { return []byte{'$'} }

func (p *mathParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, seg := block.PeekLine()
	body, mode, consumed, ok := scanMath(string(line))
	if !ok {
		return nil
	}
	block.Advance(consumed)
	return &mathNode{
		mode:    mode,
		content: body,
		seg:     text.NewSegment(seg.Start, seg.Start+consumed),
	}
}

// scanMath 尝试在行首（line[0] 必为 '$'）识别公式定界，返回公式体、
// 模式和消费的字节数。$$...$$ 为块级；$...$ 为行内，要求内容非空、
// 定界符内侧无空白（避免把货币金额当成公式）。定界必须在行内闭合。
func scanMath(line string) (string, types.MathMode, int, bool) {
	if strings.HasPrefix(line, "$$") {
		rest := line[2:]
		end := strings.Index(rest, "$$")
		if end < 0 || strings.TrimSpace(rest[:end]) == "" {
			return "", 0, 0, false
		}
		return rest[:end], types.MathDisplay, 2 + end + 2, true
	}

	rest := line[1:]
	end := strings.IndexByte(rest, '$')
	if end <= 0 {
		return "", 0, 0, false
	}
	body := rest[:end]
	if strings.TrimSpace(body) == "" || body[0] == ' ' || body[len(body)-1] == ' ' {
		return "", 0, 0, false
	}
	return body, types.MathInline, 1 + end + 1, true
}

// ---- wiki 链接 ----

var kindWikilink = ast.NewNodeKind("Wikilink")

type wikilinkNode struct {
	ast.BaseInline
	target string
	label  string
	seg    text.Segment
}

func (n *wikilinkNode) Kind() ast.NodeKind { return kindWikilink }

func (n *wikilinkNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

type wikilinkParser struct{}

func (p *wikilinkParser) Trigger() []byte { return []byte{'['} }

func (p *wikilinkParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, seg := block.PeekLine()
	target, label, consumed, ok := scanWikilink(string(line))
	if !ok {
		return nil
	}
	block.Advance(consumed)
	return &wikilinkNode{
		target: target,
		label:  label,
		seg:    text.NewSegment(seg.Start, seg.Start+consumed),
	}
}

// scanWikilink 尝试在行首识别 [[目标]] 或 [[目标|显示文本]]，
// 返回目标、显示文本和消费的字节数
func scanWikilink(line string) (target, label string, consumed int, ok bool) {
	if !strings.HasPrefix(line, "[[") {
		return "", "", 0, false
	}
	end := strings.Index(line[2:], "]]")
	if end < 0 {
		return "", "", 0, false
	}
	inner := line[2 : 2+end]
	if inner == "" || strings.ContainsAny(inner, "[]\n") {
		return "", "", 0, false
	}

	target, label = inner, inner
	if pipe := strings.IndexByte(inner, '|'); pipe >= 0 {
		target, label = inner[:pipe], inner[pipe+1:]
		if target == "" || label == "" {
			return "", "", 0, false
		}
	}
	return target, label, 2 + end + 2, true
}
