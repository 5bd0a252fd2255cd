package tokenizer

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/riverfjs/treemark-go/internal/types"
)

// walker 遍历 goldmark AST，将其摊平为 (事件, 源区间) 流
//
// 叶子事件的区间必须精确（它们驱动点击→源文本映射）；容器事件的
// 区间尽力而为，取整个块或其后代文本的跨度。
type walker struct {
	source []byte
	// base 源文本在原始输入中的字节偏移（frontmatter 剥离后非零）
	base   int
	events []types.Spanned
	// pos 已发出事件的最大区间终点，用作无精确区间时的回退
	pos int
}

func (w *walker) emit(ev types.Event, rng types.Range) {
	w.events = append(w.events, types.Spanned{Event: ev, Range: rng})
	if rng.End > w.pos {
		w.pos = rng.End
	}
}

func (w *walker) rng(start, stop int) types.Range {
	return types.Range{Start: start + w.base, End: stop + w.base}
}

// nodeRange 计算节点的源区间：文本节点用自己的 segment，块节点用
// 行跨度，行内容器用后代文本的跨度，都没有时退化为游标处的空区间
func (w *walker) nodeRange(n ast.Node) types.Range {
	if t, ok := n.(*ast.Text); ok {
		return w.rng(t.Segment.Start, t.Segment.Stop)
	}
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		if lines.Len() > 0 {
			return w.rng(lines.At(0).Start, lines.At(lines.Len()-1).Stop)
		}
	}
	if start, stop, ok := textSpan(n); ok {
		return w.rng(start, stop)
	}
	return types.Range{Start: w.pos, End: w.pos}
}

// textSpan 返回节点全部后代文本的 [最左起点, 最右终点)
func textSpan(n ast.Node) (int, int, bool) {
	start, stop := -1, -1
	var visit func(ast.Node)
	visit = func(m ast.Node) {
		if t, ok := m.(*ast.Text); ok {
			if start == -1 {
				start = t.Segment.Start
			}
			if t.Segment.Stop > stop {
				stop = t.Segment.Stop
			}
		}
		for c := m.FirstChild(); c != nil; c = c.NextSibling() {
			visit(c)
		}
	}
	visit(n)
	return start, stop, start != -1
}

func (w *walker) startEnd(n ast.Node, tag types.Tag, entering bool) {
	if entering {
		w.emit(types.Start{Tag: tag}, w.nodeRange(n))
	} else {
		w.emit(types.End{Tag: tag.Closer()}, types.Range{Start: w.pos, End: w.pos})
	}
}

// Walk 处理一个 AST 节点
func (w *walker) Walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	// --- Document 与 tight list 的文本块：不产生容器事件 ---
	case *ast.Document, *ast.TextBlock:

	// --- 行内元素 ---
	case *ast.Text:
		if entering {
			seg := node.Segment
			if seg.Len() > 0 {
				w.emit(types.Text{Content: string(seg.Value(w.source))}, w.rng(seg.Start, seg.Stop))
			}
			if node.HardLineBreak() {
				w.emit(types.HardBreak{}, w.rng(seg.Stop, seg.Stop+1))
			} else if node.SoftLineBreak() {
				w.emit(types.SoftBreak{}, w.rng(seg.Stop, seg.Stop+1))
			}
		}

	case *ast.String:
		if entering {
			w.emit(types.Text{Content: string(node.Value)}, types.Range{Start: w.pos, End: w.pos})
		}

	case *ast.CodeSpan:
		if entering {
			w.emit(types.Code{Content: codeSpanText(node, w.source)}, w.nodeRange(node))
			return ast.WalkSkipChildren, nil
		}

	case *ast.Emphasis:
		if node.Level == 2 {
			w.startEnd(node, types.Strong{}, entering)
		} else {
			w.startEnd(node, types.Emphasis{}, entering)
		}

	case *east.Strikethrough:
		w.startEnd(node, types.Strikethrough{}, entering)

	case *mathNode:
		if entering {
			w.emit(types.Math{Mode: node.mode, Content: node.content}, w.rng(node.seg.Start, node.seg.Stop))
		}

	case *wikilinkNode:
		if entering {
			rng := w.rng(node.seg.Start, node.seg.Stop)
			w.emit(types.Start{Tag: types.Link{URL: node.target, Type: types.LinkWiki}}, rng)
			w.emit(types.Text{Content: node.label}, rng)
			w.emit(types.End{Tag: types.EndLink}, rng)
		}

	case *ast.RawHTML:
		if entering {
			var b strings.Builder
			for i := 0; i < node.Segments.Len(); i++ {
				seg := node.Segments.At(i)
				b.Write(seg.Value(w.source))
			}
			w.emit(types.HTML{Content: b.String()}, w.nodeRange(node))
			return ast.WalkSkipChildren, nil
		}

	// --- 链接与图片 ---
	case *ast.Link:
		w.startEnd(node, types.Link{
			URL:   string(node.Destination),
			Title: string(node.Title),
			Type:  types.LinkInline,
		}, entering)

	case *ast.Image:
		w.startEnd(node, types.Image{
			URL:   string(node.Destination),
			Title: string(node.Title),
			Type:  types.LinkInline,
		}, entering)

	case *ast.AutoLink:
		if entering {
			url := string(node.URL(w.source))
			rng := w.nodeRange(node)
			w.emit(types.Start{Tag: types.Link{URL: url, Type: types.LinkAuto}}, rng)
			w.emit(types.Text{Content: url}, rng)
			w.emit(types.End{Tag: types.EndLink}, rng)
			return ast.WalkSkipChildren, nil
		}

	// --- 块级元素 ---
	case *ast.Paragraph:
		w.startEnd(node, types.Paragraph{}, entering)

	case *ast.Heading:
		w.startEnd(node, types.Heading{Level: node.Level}, entering)

	case *ast.Blockquote:
		w.startEnd(node, types.BlockQuote{}, entering)

	case *ast.List:
		var tag types.List
		if node.IsOrdered() {
			start := node.Start
			tag.Start = &start
		}
		w.startEnd(node, tag, entering)

	case *ast.ListItem:
		w.startEnd(node, types.ListItem{}, entering)

	case *east.TaskCheckBox:
		if entering {
			w.emit(types.TaskListMarker{Checked: node.IsChecked}, w.nodeRange(node))
		}

	case *ast.FencedCodeBlock:
		if entering {
			lang := string(node.Language(w.source))
			w.emitCodeBlock(node, types.CodeBlock{Kind: types.Fenced, Language: lang})
			return ast.WalkSkipChildren, nil
		}

	case *ast.CodeBlock:
		if entering {
			w.emitCodeBlock(node, types.CodeBlock{Kind: types.Indented})
			return ast.WalkSkipChildren, nil
		}

	case *ast.ThematicBreak:
		if entering {
			w.emit(types.Rule{}, w.nodeRange(node))
		}

	case *ast.HTMLBlock:
		if entering {
			var b strings.Builder
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				b.Write(seg.Value(w.source))
			}
			if node.HasClosure() {
				b.Write(node.ClosureLine.Value(w.source))
			}
			w.emit(types.HTML{Content: b.String()}, w.nodeRange(node))
			return ast.WalkSkipChildren, nil
		}

	// --- 表格 ---
	case *east.Table:
		w.startEnd(node, types.Table{Alignments: convertAlignments(node.Alignments)}, entering)

	case *east.TableHeader:
		w.startEnd(node, types.TableHead{}, entering)

	case *east.TableRow:
		w.startEnd(node, types.TableRow{}, entering)

	case *east.TableCell:
		w.startEnd(node, types.TableCell{}, entering)

	// --- 脚注 ---
	case *east.FootnoteLink:
		if entering {
			w.emit(types.FootnoteReference{Label: strconv.Itoa(node.Index)}, w.nodeRange(node))
		}

	case *east.Footnote:
		w.startEnd(node, types.FootnoteDefinition{Label: string(node.Ref)}, entering)

	case *east.FootnoteList, *east.FootnoteBacklink:
		// 列表包装节点不产生事件；回链不渲染

	// --- 定义列表：降级为无序列表 ---
	case *east.DefinitionList:
		w.startEnd(node, types.List{}, entering)

	case *east.DefinitionTerm, *east.DefinitionDescription:
		w.startEnd(node, types.ListItem{}, entering)
	}

	return ast.WalkContinue, nil
}

// emitCodeBlock 代码块展开为固定的三事件序列：Start、单个 Text
// （内容为空时省略）、End。代码内容不再做行内扫描。
func (w *walker) emitCodeBlock(n ast.Node, tag types.CodeBlock) {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(w.source))
	}
	content := b.String()

	rng := w.nodeRange(n)
	w.emit(types.Start{Tag: tag}, rng)
	if content != "" {
		w.emit(types.Text{Content: content}, rng)
	}
	w.emit(types.End{Tag: types.EndCodeBlock}, types.Range{Start: rng.End, End: rng.End})
}

func convertAlignments(aligns []east.Alignment) []types.Alignment {
	out := make([]types.Alignment, len(aligns))
	for i, a := range aligns {
		switch a {
		case east.AlignLeft:
			out[i] = types.AlignLeft
		case east.AlignRight:
			out[i] = types.AlignRight
		case east.AlignCenter:
			out[i] = types.AlignCenter
		default:
			out[i] = types.AlignNone
		}
	}
	return out
}

func codeSpanText(n *ast.CodeSpan, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
		}
	}
	return b.String()
}
