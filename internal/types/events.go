package types

// Range 表示 Markdown 源文本中的半开字节区间 [Start, End)
type Range struct {
	Start int
	End   int
}

// Spanned 是事件流的基本单元：事件 + 源文本区间
type Spanned struct {
	Event Event
	Range Range
}

// Event 是 Markdown 事件的密封接口
//
// 事件是纯语义的：结构性错误（未匹配的闭合标签等）由 builder 的
// error 返回值报告，不通过事件表达。
// 未导出的 marker 方法防止外部实现。
type Event interface {
	event()
}

// Text 纯文本片段
type Text struct {
	Content string
}

// Code 行内代码片段
type Code struct {
	Content string
}

// HTML 原始 HTML 片段（块级或行内），内容原样传递，不做消毒
type HTML struct {
	Content string
}

// SoftBreak 软换行
type SoftBreak struct{}

// HardBreak 硬换行
type HardBreak struct{}

// Rule 分隔线
type Rule struct{}

// TaskListMarker 任务列表复选框标记
type TaskListMarker struct {
	Checked bool
}

// Math 数学公式片段
type Math struct {
	Mode    MathMode
	Content string
}

// FootnoteReference 脚注引用
type FootnoteReference struct {
	Label string
}

// Start 容器标签开始
type Start struct {
	Tag Tag
}

// End 容器标签结束（无 payload 的闭合标记）
type End struct {
	Tag TagEnd
}

func (Text) event()              {}
func (Code) event()              {}
func (HTML) event()              {}
func (SoftBreak) event()         {}
func (HardBreak) event()         {}
func (Rule) event()              {}
func (TaskListMarker) event()    {}
func (Math) event()              {}
func (FootnoteReference) event() {}
func (Start) event()             {}
func (End) event()               {}

// MathMode 区分行内与独立显示的公式
type MathMode int

const (
	// MathInline 行内公式 $...$
	MathInline MathMode = iota
	// MathDisplay 独立显示公式 $$...$$
	MathDisplay
)

// Interface compliance checks.
var (
	_ Event = Text{}
	_ Event = Code{}
	_ Event = HTML{}
	_ Event = SoftBreak{}
	_ Event = HardBreak{}
	_ Event = Rule{}
	_ Event = TaskListMarker{}
	_ Event = Math{}
	_ Event = FootnoteReference{}
	_ Event = Start{}
	_ Event = End{}
)
