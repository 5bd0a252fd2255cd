package builder

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/riverfjs/treemark-go/internal/highlight"
	"github.com/riverfjs/treemark-go/internal/latex"
	"github.com/riverfjs/treemark-go/internal/types"
)

// Options 上下文构造参数，零值字段使用默认实现
type Options struct {
	// Theme 语法高亮主题名（chroma style），空串使用配置默认值
	Theme string
	// OnClick 点击回调，nil 时安装 no-op
	OnClick types.ClickHook
	// RenderLinks 链接/图片渲染回调，nil 时使用默认渲染
	RenderLinks types.LinkRenderer
	// Factory 节点工厂，nil 时使用 TreeFactory
	Factory types.NodeFactory
	// Config 渲染配置，nil 时使用默认配置
	Config *types.RenderConfig
	// Highlighter 语法高亮能力，nil 时使用内置 chroma 实现
	Highlighter func(code, language string) (string, bool)
	// Typesetter 公式排版能力，nil 时使用内置 LaTeX→Unicode 实现
	Typesetter func(content string, display bool) (string, error)
}

// Context 渲染一棵树所需的全部策略，构造后不可变，
// 整个递归调用栈以只读方式共享同一个实例
type Context struct {
	style       *chroma.Style
	onClick     types.ClickHook
	renderLinks types.LinkRenderer
	factory     types.NodeFactory
	config      *types.RenderConfig
	highlighter func(code, language string) (string, bool)
	typesetter  func(content string, display bool) (string, error)
}

// NewContext 构造渲染上下文
//
// 主题名在已加载的 style 集合中不存在时返回 ErrUnknownTheme：
// 这是调用方的配置错误，影响整个渲染，因此在构造期报告，
// 而不是降级为单节点错误。
func NewContext(opts Options) (*Context, error) {
	config := opts.Config
	if config == nil {
		config = types.DefaultRenderConfig()
	}

	themeName := opts.Theme
	if themeName == "" {
		themeName = config.DefaultTheme
	}
	style, ok := styles.Registry[themeName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, themeName)
	}

	onClick := opts.OnClick
	if onClick == nil {
		onClick = func(types.ClickEvent) {}
	}

	factory := opts.Factory
	if factory == nil {
		factory = types.TreeFactory{}
	}

	highlighter := opts.Highlighter
	if highlighter == nil {
		highlighter = func(code, language string) (string, bool) {
			return highlight.Highlight(code, language, style)
		}
	}

	typesetter := opts.Typesetter
	if typesetter == nil {
		typesetter = latex.Typeset
	}

	return &Context{
		style:       style,
		onClick:     onClick,
		renderLinks: opts.RenderLinks,
		factory:     factory,
		config:      config,
		highlighter: highlighter,
		typesetter:  typesetter,
	}, nil
}

// Config returns the render configuration.
func (c *Context) Config() *types.RenderConfig {
	return c.config
}

// makeClick 为固定的源区间绑定点击处理函数
func makeClick(ctx *Context, rng types.Range) types.ClickHandler {
	onClick := ctx.onClick
	return func(e *types.PointerEvent) {
		onClick(types.ClickEvent{Pointer: e, Range: rng})
	}
}
