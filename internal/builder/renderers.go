package builder

import (
	"fmt"
	"strconv"

	"github.com/riverfjs/treemark-go/internal/types"
)

// renderTag 按标签种类把已构建的子节点包装为一个节点
func (r *Renderer) renderTag(tag types.Tag, rng types.Range) (types.Node, error) {
	switch t := tag.(type) {
	case types.Paragraph:
		return r.wrap("p", tag)

	case types.Heading:
		if t.Level < 1 || t.Level > 6 {
			return nil, fmt.Errorf("%w: heading level %d", ErrUnexpectedEvent, t.Level)
		}
		return r.wrap("h"+strconv.Itoa(t.Level), tag)

	case types.BlockQuote:
		return r.wrap("blockquote", tag)

	case types.CodeBlock:
		return r.renderCodeBlock(t, rng)

	case types.List:
		if t.Start != nil {
			children, err := r.children(tag)
			if err != nil {
				return nil, err
			}
			attrs := map[string]string{"start": strconv.Itoa(*t.Start)}
			return r.container("ol", attrs, children, nil), nil
		}
		return r.wrap("ul", tag)

	case types.ListItem:
		return r.wrap("li", tag)

	case types.Table:
		// 本表格子树的列对齐在此固定；构建完成后恢复外层状态，
		// 不泄漏给后续兄弟子树
		prev := r.columnAlignments
		r.columnAlignments = t.Alignments
		node, err := r.wrap("table", tag)
		r.columnAlignments = prev
		return node, err

	case types.TableHead:
		return r.wrap("thead", tag)

	case types.TableRow:
		return r.wrap("tr", tag)

	case types.TableCell:
		return r.renderTableCell(tag)

	case types.Emphasis:
		return r.wrap("i", tag)

	case types.Strong:
		return r.wrap("b", tag)

	case types.Strikethrough:
		return r.wrap("s", tag)

	case types.Image:
		return r.renderLink(types.LinkDescription{
			URL:     t.URL,
			Title:   t.Title,
			Type:    t.Type,
			IsImage: true,
		}, tag)

	case types.Link:
		return r.renderLink(types.LinkDescription{
			URL:     t.URL,
			Title:   t.Title,
			Type:    t.Type,
			IsImage: false,
		}, tag)

	case types.FootnoteDefinition:
		// 子树仍需消费，保持游标正确，然后整体降级为错误节点
		if _, err := r.children(tag); err != nil {
			return nil, err
		}
		return nil, nodeErrorf("footnote definitions are not supported")

	case types.MetadataBlock:
		// 子节点被构建（从流中消费掉）但丢弃：元数据不渲染
		if _, err := r.children(tag); err != nil {
			return nil, err
		}
		return r.leaf("div", "", nil, nil), nil

	default:
		return nil, fmt.Errorf("%w: tag %T", ErrUnexpectedEvent, tag)
	}
}

// wrap 结构性直通：把子节点包进对应的容器
func (r *Renderer) wrap(element string, tag types.Tag) (types.Node, error) {
	children, err := r.children(tag)
	if err != nil {
		return nil, err
	}
	return r.container(element, nil, children, nil), nil
}

// ──────────────────────────────────────────────
// 叶子节点
// ──────────────────────────────────────────────

func (r *Renderer) renderText(content string, rng types.Range) types.Node {
	return r.leaf("span", content, nil, makeClick(r.ctx, rng))
}

func (r *Renderer) renderCode(content string, rng types.Range) types.Node {
	return r.leaf("code", content, nil, makeClick(r.ctx, rng))
}

// renderHTML 原始 HTML 直通。内容来自上游，这里不做消毒。
func (r *Renderer) renderHTML(content string, rng types.Range) types.Node {
	return r.rawLeaf("div", content, nil, makeClick(r.ctx, rng))
}

// renderTaskListMarker 复选框叶子。处理函数先阻止宿主控件的默认
// 切换行为并停止冒泡，再通知点击回调。
func (r *Renderer) renderTaskListMarker(checked bool, rng types.Range) types.Node {
	attrs := map[string]string{"type": "checkbox"}
	if checked {
		attrs["checked"] = ""
	}
	onClick := r.ctx.onClick
	handler := func(e *types.PointerEvent) {
		e.PreventDefault()
		e.StopPropagation()
		onClick(types.ClickEvent{Pointer: e, Range: rng})
	}
	return r.leaf("input", "", attrs, handler)
}

// renderMath 尝试排版公式；失败是可恢复错误，由调用方降级为
// 行内错误节点，后续兄弟照常渲染
func (r *Renderer) renderMath(mode types.MathMode, content string, rng types.Range) (types.Node, error) {
	display := mode == types.MathDisplay
	rendered, err := r.ctx.typesetter(content, display)
	if err != nil {
		return nil, nodeErrorf("invalid math: %v", err)
	}

	class := r.ctx.config.MathInlineClass
	if display {
		class = r.ctx.config.MathDisplayClass
	}
	attrs := map[string]string{"class": class}
	return r.leaf("span", rendered, attrs, makeClick(r.ctx, rng)), nil
}

// ──────────────────────────────────────────────
// 特殊标签
// ──────────────────────────────────────────────

// renderCodeBlock 代码块：内容经由两事件前瞻取出。缩进代码块
// 从不高亮；围栏代码块高亮失败（语言未知）时回退到无样式的
// 预格式化文本——这是常见情况，不渲染错误指示。
func (r *Renderer) renderCodeBlock(t types.CodeBlock, rng types.Range) (types.Node, error) {
	content, has, err := r.childrenText(t)
	if err != nil {
		return nil, err
	}
	if !has || content == "" {
		return r.leaf("code", "", nil, nil), nil
	}

	onClick := makeClick(r.ctx, rng)

	if t.Kind == types.Fenced {
		if markup, ok := r.ctx.highlighter(content, t.Language); ok {
			return r.rawLeaf("div", markup, nil, onClick), nil
		}
	}

	pre := r.leaf("pre", content, nil, nil)
	return r.container("code", nil, []types.Node{pre}, onClick), nil
}

// renderTableCell 读取当前下标处的列对齐并递增下标。
// 下标由行帧计数：每个子帧从 0 开始，因此每行都重新计数
// （跨行不累积）。超出声明的列数是流契约错误，致命。
func (r *Renderer) renderTableCell(tag types.Tag) (types.Node, error) {
	if r.cellIndex >= len(r.columnAlignments) {
		return nil, fmt.Errorf("%w: cell %d of %d columns", ErrCellIndexOutOfRange, r.cellIndex, len(r.columnAlignments))
	}
	align := r.columnAlignments[r.cellIndex]
	r.cellIndex++

	children, err := r.children(tag)
	if err != nil {
		return nil, err
	}

	var attrs map[string]string
	if style := alignStyle(align); style != "" {
		attrs = map[string]string{"style": style}
	}
	return r.container("td", attrs, children, nil), nil
}

// alignStyle gives the style hint used to align cell text.
func alignStyle(align types.Alignment) string {
	switch align {
	case types.AlignLeft:
		return "text-align: left"
	case types.AlignRight:
		return "text-align: right"
	case types.AlignCenter:
		return "text-align: center"
	default:
		return ""
	}
}

// renderLink 构建 LinkDescription 并交给链接回调；没有回调时走
// 默认路径：图片渲染为 img 叶子（子节点丢弃，title 作为替代文本），
// 链接渲染为包裹子节点的锚点（默认路径不保留 title）。
func (r *Renderer) renderLink(desc types.LinkDescription, tag types.Tag) (types.Node, error) {
	children, err := r.children(tag)
	if err != nil {
		return nil, err
	}
	desc.Content = children

	if r.ctx.renderLinks != nil {
		return r.ctx.renderLinks(desc), nil
	}

	if desc.IsImage {
		attrs := map[string]string{"src": desc.URL}
		if desc.Title != "" {
			attrs["alt"] = desc.Title
		}
		return r.leaf("img", "", attrs, nil), nil
	}

	attrs := map[string]string{"href": desc.URL}
	return r.container("a", attrs, desc.Content, nil), nil
}
