// Package builder 将扁平的 (事件, 源区间) 流构建为嵌套的节点树
//
// 事件流没有显式嵌套：Start/End 标记隐式配对。builder 是流上的
// 游标：每个 Start(tag) 派生一个子帧，子帧共享同一个游标但持有
// 自己的瞬态状态（表格列对齐、单元格下标），在看到与自己匹配的
// End 标记时终止。状态在子帧创建时继承，绝不回写父帧——帧间唯一
// 的共享可变量是游标位置本身。
package builder

import (
	"errors"
	"fmt"

	"github.com/riverfjs/treemark-go/internal/types"
)

// Renderer 是一个 builder 帧，负责消费恰好一棵子树的事件
type Renderer struct {
	ctx    *Context
	stream *Stream

	// 表格作用域状态：创建时从父帧继承
	columnAlignments []types.Alignment
	cellIndex        int

	// closer 是本帧终止所需的闭合标记；顶层帧没有，消费到流尾为止
	closer   types.TagEnd
	topLevel bool
}

// New 创建顶层 builder 帧
func New(ctx *Context, stream *Stream) *Renderer {
	return &Renderer{ctx: ctx, stream: stream, topLevel: true}
}

// Run 构建本帧的全部兄弟节点
//
// 顶层帧消费整个流；子帧消费到匹配的闭合标记（闭合标记本身被
// 消费但不产生节点）。结构性错误立即中止并返回。
func (r *Renderer) Run() ([]types.Node, error) {
	var nodes []types.Node
	for {
		node, done, err := r.step()
		if err != nil {
			return nil, err
		}
		if done {
			return nodes, nil
		}
		if node != nil {
			nodes = append(nodes, node)
		}
	}
}

// step 消费一个事件。返回值：产生的节点（可为 nil，如 SoftBreak）、
// 本帧是否终止、致命错误。
func (r *Renderer) step() (types.Node, bool, error) {
	sp, ok := r.stream.Next()
	if !ok {
		if r.topLevel {
			return nil, true, nil
		}
		return nil, false, fmt.Errorf("%w: %s still open", ErrUnexpectedEndOfStream, r.closer)
	}

	var (
		node types.Node
		err  error
	)

	switch ev := sp.Event.(type) {
	case types.Start:
		node, err = r.renderTag(ev.Tag, sp.Range)

	case types.End:
		// 检查闭合标记是否就是创建本帧时打开的那个标签
		if r.topLevel {
			return nil, false, fmt.Errorf("%w: %s at top level", ErrUnexpectedClosingTag, ev.Tag)
		}
		if ev.Tag != r.closer {
			return nil, false, fmt.Errorf("%w: got %s, want %s", ErrWrongClosingTag, ev.Tag, r.closer)
		}
		return nil, true, nil

	case types.Text:
		node = r.renderText(ev.Content, sp.Range)

	case types.Code:
		node = r.renderCode(ev.Content, sp.Range)

	case types.HTML:
		node = r.renderHTML(ev.Content, sp.Range)

	case types.SoftBreak:
		// 不产生节点，继续下一个事件
		return nil, false, nil

	case types.HardBreak:
		node = r.leaf("br", "", nil, nil)

	case types.Rule:
		node = r.leaf("hr", "", nil, makeClick(r.ctx, sp.Range))

	case types.TaskListMarker:
		node = r.renderTaskListMarker(ev.Checked, sp.Range)

	case types.Math:
		node, err = r.renderMath(ev.Mode, ev.Content, sp.Range)

	case types.FootnoteReference:
		err = nodeErrorf("footnote references are not supported")

	default:
		return nil, false, fmt.Errorf("%w: %T", ErrUnexpectedEvent, sp.Event)
	}

	if err != nil {
		node, err = r.recover(err)
		if err != nil {
			return nil, false, err
		}
	}
	return node, false, nil
}

// recover 将可恢复的 NodeError 转换为行内错误节点，致命错误原样上抛
func (r *Renderer) recover(err error) (types.Node, error) {
	var ne *NodeError
	if errors.As(err, &ne) {
		return r.errorNode(ne.Msg), nil
	}
	return nil, err
}

// children 为 tag 构建完整子树：派生子帧，让它在共享游标上排空
// 属于自己的子流，直到遇到 tag 的闭合标记
func (r *Renderer) children(tag types.Tag) ([]types.Node, error) {
	sub := &Renderer{
		ctx:              r.ctx,
		stream:           r.stream,
		columnAlignments: r.columnAlignments,
		cellIndex:        0,
		closer:           tag.Closer(),
	}
	return sub.Run()
}

// childrenText 代码块专用的两事件前瞻：内容是单个 Text 事件
// （可缺失，表示空代码块），紧跟自己的闭合标记。代码块文本不做
// 树构建——代码内部不解释嵌套标记。
func (r *Renderer) childrenText(tag types.Tag) (string, bool, error) {
	sp, ok := r.stream.Next()
	if !ok {
		return "", false, fmt.Errorf("%w: %s still open", ErrUnexpectedEndOfStream, tag.Closer())
	}

	switch ev := sp.Event.(type) {
	case types.Text:
		end, ok := r.stream.Next()
		if !ok {
			return "", false, fmt.Errorf("%w: %s still open", ErrUnexpectedEndOfStream, tag.Closer())
		}
		closing, isEnd := end.Event.(types.End)
		if !isEnd || closing.Tag != tag.Closer() {
			return "", false, fmt.Errorf("%w: expected %s after code block text", ErrWrongClosingTag, tag.Closer())
		}
		return ev.Content, true, nil

	case types.End:
		if ev.Tag != tag.Closer() {
			return "", false, fmt.Errorf("%w: got %s, want %s", ErrWrongClosingTag, ev.Tag, tag.Closer())
		}
		return "", false, nil

	default:
		return "", false, fmt.Errorf("%w: expected text inside code block, got %T", ErrUnexpectedEvent, sp.Event)
	}
}

// leaf / container 是对节点工厂的简短封装
func (r *Renderer) leaf(element, content string, attrs map[string]string, onClick types.ClickHandler) types.Node {
	return r.ctx.factory.BuildLeaf(element, content, false, attrs, onClick)
}

func (r *Renderer) rawLeaf(element, content string, attrs map[string]string, onClick types.ClickHandler) types.Node {
	return r.ctx.factory.BuildLeaf(element, content, true, attrs, onClick)
}

func (r *Renderer) container(element string, attrs map[string]string, children []types.Node, onClick types.ClickHandler) types.Node {
	return r.ctx.factory.BuildContainer(element, attrs, children, onClick)
}

// errorNode 行内错误指示节点：带独立样式，携带错误信息，
// 不影响其余兄弟节点的渲染
func (r *Renderer) errorNode(msg string) types.Node {
	return r.container("span",
		map[string]string{
			"class": r.ctx.config.ErrorClass,
			"style": "border: 1px solid red",
		},
		[]types.Node{
			r.leaf("span", msg, nil, nil),
			r.leaf("br", "", nil, nil),
		},
		nil,
	)
}
