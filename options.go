package treemark

import (
	"github.com/yuin/goldmark"
)

// RenderOptions holds options for markdown rendering.
type RenderOptions struct {
	Theme           string
	OnClick         ClickHook
	RenderLinks     LinkRenderer
	HardLineBreaks  bool
	Wikilinks       bool
	EnableMath      bool
	Config          *RenderConfig
	Factory         NodeFactory
	GoldmarkOptions []goldmark.Option
	Highlighter     func(code, language string) (string, bool)
	Typesetter      func(content string, display bool) (string, error)
}

// Option is a function that configures RenderOptions.
type Option func(*RenderOptions)

// WithTheme sets the chroma syntax highlighting theme.
func WithTheme(name string) Option {
	return func(opts *RenderOptions) {
		opts.Theme = name
	}
}

// WithOnClick sets the click callback invoked with the source range
// of the clicked leaf.
func WithOnClick(hook ClickHook) Option {
	return func(opts *RenderOptions) {
		opts.OnClick = hook
	}
}

// WithLinkRenderer overrides how links and images are rendered.
func WithLinkRenderer(render LinkRenderer) Option {
	return func(opts *RenderOptions) {
		opts.RenderLinks = render
	}
}

// WithHardLineBreaks renders soft line breaks as hard breaks.
func WithHardLineBreaks(enable bool) Option {
	return func(opts *RenderOptions) {
		opts.HardLineBreaks = enable
	}
}

// WithWikilinks enables [[target]] and [[target|label]] syntax.
func WithWikilinks(enable bool) Option {
	return func(opts *RenderOptions) {
		opts.Wikilinks = enable
	}
}

// WithMath enables $...$ and $$...$$ math delimiters.
func WithMath(enable bool) Option {
	return func(opts *RenderOptions) {
		opts.EnableMath = enable
	}
}

// WithConfig sets a custom RenderConfig. 配置中的 EnableMath 一并
// 生效；之后的 WithMath 仍可覆盖。
func WithConfig(config *RenderConfig) Option {
	return func(opts *RenderOptions) {
		opts.Config = config
		opts.EnableMath = config.EnableMath
	}
}

// WithFactory sets a custom node factory.
func WithFactory(factory NodeFactory) Option {
	return func(opts *RenderOptions) {
		opts.Factory = factory
	}
}

// WithGoldmarkOptions appends extra goldmark options to the standard set.
func WithGoldmarkOptions(options ...goldmark.Option) Option {
	return func(opts *RenderOptions) {
		opts.GoldmarkOptions = append(opts.GoldmarkOptions, options...)
	}
}

// WithHighlighter overrides the syntax highlighter. 返回 false 表示
// 放弃高亮，代码块回退为无样式的预格式化文本。
func WithHighlighter(highlight func(code, language string) (string, bool)) Option {
	return func(opts *RenderOptions) {
		opts.Highlighter = highlight
	}
}

// WithTypesetter overrides the math typesetter. 返回错误时对应公式
// 渲染为行内错误节点。
func WithTypesetter(typeset func(content string, display bool) (string, error)) Option {
	return func(opts *RenderOptions) {
		opts.Typesetter = typeset
	}
}

// defaultRenderOptions returns the default rendering options.
func defaultRenderOptions() *RenderOptions {
	config := DefaultConfig()
	return &RenderOptions{
		EnableMath: config.EnableMath,
		Config:     config,
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *RenderOptions {
	options := defaultRenderOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
