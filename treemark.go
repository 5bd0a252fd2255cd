// Package treemark 将 Markdown 渲染为可挂载的节点树
//
// 这个包提供了把 Markdown 源文本（包括 LLM 输出、笔记、README 等）
// 渲染为带属性和点击回调的节点树的功能，树可以交给任意宿主 UI 挂载。
//
// 核心功能：
//   - 将 Markdown 解析为扁平事件流，再构建为嵌套节点树
//   - 每个叶子节点携带源文本区间，点击回调可以映射回源文本
//   - 代码块语法高亮（chroma）
//   - LaTeX 公式转 Unicode（$...$ 与 $$...$$）
//   - [[wiki 链接]] 与 YAML frontmatter（可选）
//
// 主要 API：
//   - Render(): 从 Markdown 源文本渲染，返回顶层节点列表
//   - RenderEvents(): 从已有事件流渲染，用于自定义 tokenize 流程
//
// 示例：
//
//	nodes, err := treemark.Render(markdown,
//	    treemark.WithTheme("monokai"),
//	    treemark.WithOnClick(func(e treemark.ClickEvent) {
//	        fmt.Println("clicked source range:", e.Range)
//	    }),
//	)
//	for _, node := range nodes {
//	    mount(node)
//	}
package treemark

import (
	"github.com/riverfjs/treemark-go/internal/builder"
	"github.com/riverfjs/treemark-go/internal/tokenizer"
)

// Render 将 Markdown 源文本渲染为节点树
//
// 完整流水线：解析为事件流、应用换行策略、构建节点树。解析阶段
// 不会失败；构建阶段只在配置非法（未知高亮主题）时返回错误。
// 单个节点级别的失败（无效公式等）渲染为行内错误节点，不中断整体。
func Render(source string, opts ...Option) ([]Node, error) {
	options := applyOptions(opts...)

	events := tokenizer.Tokenize([]byte(source), tokenizer.Options{
		Wikilinks:       options.Wikilinks,
		EnableMath:      options.EnableMath,
		GoldmarkOptions: options.GoldmarkOptions,
	})
	return renderStream(events, options)
}

// RenderEvents 从事件流直接渲染节点树
//
// 输入流必须结构良好：Start/End 严格配对、代码块内容恰为零或一个
// Text 事件、表格单元格不超过声明的列数。违反契约返回包装了对应
// 哨兵错误（ErrWrongClosingTag 等）的致命错误。
func RenderEvents(events []Spanned, opts ...Option) ([]Node, error) {
	return renderStream(events, applyOptions(opts...))
}

func renderStream(events []Spanned, options *RenderOptions) ([]Node, error) {
	if options.HardLineBreaks {
		events = tokenizer.HardenBreaks(events)
	}

	ctx, err := builder.NewContext(builder.Options{
		Theme:       options.Theme,
		OnClick:     options.OnClick,
		RenderLinks: options.RenderLinks,
		Factory:     options.Factory,
		Config:      options.Config,
		Highlighter: options.Highlighter,
		Typesetter:  options.Typesetter,
	})
	if err != nil {
		return nil, err
	}

	nodes, err := builder.New(ctx, builder.NewStream(events)).Run()
	if err != nil {
		Logger.Printf("render failed: %v", err)
		return nil, err
	}
	return nodes, nil
}
