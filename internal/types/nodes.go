package types

// Node represents one element of the rendered tree, ready to be consumed
// by a host rendering layer.
type Node interface {
	// Element returns the HTML-ish element name ("p", "span", "td", ...).
	Element() string
}

// ClickHandler is bound to a node at build time. The host event system
// invokes it with the raw pointer event; the handler wraps it into a
// ClickEvent carrying the node's fixed source range and notifies the
// render context's click hook.
type ClickHandler func(*PointerEvent)

// ClickHook 渲染上下文级别的点击回调，接收带源区间的 ClickEvent
type ClickHook func(ClickEvent)

// Container is a node wrapping already-built children.
type Container struct {
	Elem     string
	Attrs    map[string]string
	Children []Node
	OnClick  ClickHandler
}

// Element returns the container's element name.
func (c *Container) Element() string {
	return c.Elem
}

// Leaf is a terminal node carrying string content.
type Leaf struct {
	Elem    string
	Content string
	// RawHTML marks Content as pre-rendered markup that must be injected
	// verbatim (highlighted code, raw HTML passthrough).
	RawHTML bool
	Attrs   map[string]string
	OnClick ClickHandler
}

// Element returns the leaf's element name.
func (l *Leaf) Element() string {
	return l.Elem
}

// PointerEvent 表示宿主事件系统传入的指针事件
type PointerEvent struct {
	X      float64
	Y      float64
	Button int

	defaultPrevented   bool
	propagationStopped bool
}

// PreventDefault 阻止宿主控件的默认行为（如复选框切换）
func (e *PointerEvent) PreventDefault() {
	e.defaultPrevented = true
}

// StopPropagation 阻止事件继续冒泡
func (e *PointerEvent) StopPropagation() {
	e.propagationStopped = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *PointerEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// PropagationStopped reports whether StopPropagation was called.
func (e *PointerEvent) PropagationStopped() bool {
	return e.propagationStopped
}

// ClickEvent 将指针事件与 Markdown 源文本区间关联起来
type ClickEvent struct {
	// Pointer 宿主传入的原始指针事件
	Pointer *PointerEvent
	// Range 被点击元素对应的源文本字节区间
	Range Range
}

// LinkDescription 链接或图片的描述，用于自定义链接渲染回调
type LinkDescription struct {
	// URL 链接目标
	URL string
	// Title 链接标题，通常为空
	Title string
	// Type 链接的来源语法
	Type LinkType
	// Content 链接下已构建完成的子节点
	Content []Node
	// IsImage 是否为图片
	IsImage bool
}

// LinkRenderer fully overrides link/image rendering when installed.
type LinkRenderer func(LinkDescription) Node

// NodeFactory builds the output nodes. Hosts embedding the renderer in a
// UI framework substitute their own factory; the default TreeFactory
// builds the plain Container/Leaf tree above.
type NodeFactory interface {
	BuildContainer(element string, attrs map[string]string, children []Node, onClick ClickHandler) Node
	BuildLeaf(element, content string, rawHTML bool, attrs map[string]string, onClick ClickHandler) Node
}

// TreeFactory is the default NodeFactory.
type TreeFactory struct{}

// BuildContainer returns a *Container.
func (TreeFactory) BuildContainer(element string, attrs map[string]string, children []Node, onClick ClickHandler) Node {
	return &Container{Elem: element, Attrs: attrs, Children: children, OnClick: onClick}
}

// BuildLeaf returns a *Leaf.
func (TreeFactory) BuildLeaf(element, content string, rawHTML bool, attrs map[string]string, onClick ClickHandler) Node {
	return &Leaf{Elem: element, Content: content, RawHTML: rawHTML, Attrs: attrs, OnClick: onClick}
}

var _ NodeFactory = TreeFactory{}
