package builder

import (
	"errors"
	"fmt"
)

// 致命错误：事件流违反了结构契约（上游 tokenizer 的 bug 或调用方
// 构造了非法流）。渲染立即中止，错误返回给顶层调用方。
var (
	// ErrWrongClosingTag 闭合标记的种类与当前打开的标签不符
	ErrWrongClosingTag = errors.New("wrong closing tag")
	// ErrUnexpectedClosingTag 顶层出现了闭合标记
	ErrUnexpectedClosingTag = errors.New("unexpected closing tag")
	// ErrUnexpectedEndOfStream 仍有标签未闭合时流已耗尽
	ErrUnexpectedEndOfStream = errors.New("unexpected end of stream")
	// ErrUnexpectedEvent 代码块内容位置出现了非文本事件
	ErrUnexpectedEvent = errors.New("unexpected event")
	// ErrCellIndexOutOfRange 单元格数量超出表格声明的列数
	ErrCellIndexOutOfRange = errors.New("table cell index out of range")
	// ErrUnknownTheme 请求的语法高亮主题不存在（构造期配置错误）
	ErrUnknownTheme = errors.New("unknown syntax theme")
)

// NodeError 单节点级别的可恢复渲染错误（无效公式、不支持的脚注等）。
// 被捕获后渲染为行内错误节点，整体渲染继续。
type NodeError struct {
	Msg string
}

func (e *NodeError) Error() string {
	return e.Msg
}

func nodeErrorf(format string, args ...any) error {
	return &NodeError{Msg: fmt.Sprintf(format, args...)}
}
