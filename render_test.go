package treemark

import (
	"errors"
	"strings"
	"testing"
)

// findByElement 深度优先查找第一个指定元素的节点
func findByElement(nodes []Node, elem string) Node {
	for _, node := range nodes {
		if node.Element() == elem {
			return node
		}
		if c, ok := node.(*Container); ok {
			if found := findByElement(c.Children, elem); found != nil {
				return found
			}
		}
	}
	return nil
}

// findAllByElement 深度优先查找所有指定元素的节点
func findAllByElement(nodes []Node, elem string) []Node {
	var out []Node
	for _, node := range nodes {
		if node.Element() == elem {
			out = append(out, node)
		}
		if c, ok := node.(*Container); ok {
			out = append(out, findAllByElement(c.Children, elem)...)
		}
	}
	return out
}

// collectText 拼接子树中所有叶子的文本内容
func collectText(nodes []Node) string {
	var b strings.Builder
	for _, node := range nodes {
		switch n := node.(type) {
		case *Leaf:
			b.WriteString(n.Content)
		case *Container:
			b.WriteString(collectText(n.Children))
		}
	}
	return b.String()
}

// TestRender_Paragraph 测试最简单的段落渲染
func TestRender_Paragraph(t *testing.T) {
	nodes, err := Render("hello world")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	p := findByElement(nodes, "p")
	if p == nil {
		t.Fatal("Render() should produce <p>")
	}
	if got := collectText([]Node{p}); got != "hello world" {
		t.Errorf("paragraph text = %q, want 'hello world'", got)
	}
}

// TestRender_HeadingLevels 测试各级标题
func TestRender_HeadingLevels(t *testing.T) {
	nodes, err := Render("# one\n\n### three\n\n###### six\n")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for _, elem := range []string{"h1", "h3", "h6"} {
		if findByElement(nodes, elem) == nil {
			t.Errorf("Render() missing <%s>", elem)
		}
	}
}

// TestRender_EmphasisNesting 测试强调嵌套结构
func TestRender_EmphasisNesting(t *testing.T) {
	nodes, err := Render("**bold *italic* bold**")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	b := findByElement(nodes, "b")
	if b == nil {
		t.Fatal("Render() should produce <b>")
	}
	i := findByElement([]Node{b}, "i")
	if i == nil {
		t.Fatal("<i> should nest inside <b>")
	}
	if got := collectText([]Node{i}); got != "italic" {
		t.Errorf("<i> text = %q, want 'italic'", got)
	}
}

// TestRender_OrderedListStart 测试有序列表起始编号属性
func TestRender_OrderedListStart(t *testing.T) {
	nodes, err := Render("3. three\n4. four\n")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	ol, ok := findByElement(nodes, "ol").(*Container)
	if !ok {
		t.Fatal("Render() should produce <ol>")
	}
	if ol.Attrs["start"] != "3" {
		t.Errorf("<ol> start = %q, want '3'", ol.Attrs["start"])
	}
	if len(findAllByElement(nodes, "li")) != 2 {
		t.Error("Render() should produce two <li>")
	}
}

// TestRender_TaskList 测试任务列表复选框
func TestRender_TaskList(t *testing.T) {
	nodes, err := Render("- [x] done\n- [ ] todo\n")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	boxes := findAllByElement(nodes, "input")
	if len(boxes) != 2 {
		t.Fatalf("got %d checkboxes, want 2", len(boxes))
	}
	first := boxes[0].(*Leaf)
	second := boxes[1].(*Leaf)
	if _, ok := first.Attrs["checked"]; !ok {
		t.Error("first checkbox should be checked")
	}
	if _, ok := second.Attrs["checked"]; ok {
		t.Error("second checkbox should not be checked")
	}
}

// TestRender_CodeBlockHighlighted 测试已知语言的代码块产出高亮 HTML
func TestRender_CodeBlockHighlighted(t *testing.T) {
	nodes, err := Render("```go\npackage main\n```\n")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	div, ok := findByElement(nodes, "div").(*Leaf)
	if !ok {
		t.Fatal("highlighted code block should be a raw <div> leaf")
	}
	if !div.RawHTML {
		t.Error("highlighted markup should be flagged RawHTML")
	}
	if !strings.Contains(div.Content, "package") {
		t.Errorf("markup = %q, want source text preserved", div.Content)
	}
}

// TestRender_CodeBlockUnknownLanguage 测试未知语言回退为纯文本
func TestRender_CodeBlockUnknownLanguage(t *testing.T) {
	nodes, err := Render("```no-such-lang-xyz\nraw text\n```\n")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	code, ok := findByElement(nodes, "code").(*Container)
	if !ok {
		t.Fatal("fallback code block should be a <code> container")
	}
	pre := code.Children[0].(*Leaf)
	if pre.Elem != "pre" || pre.Content != "raw text\n" {
		t.Errorf("fallback child = %#v, want <pre> with source text", pre)
	}
}

// TestRender_MathInline 测试行内公式排版
func TestRender_MathInline(t *testing.T) {
	nodes, err := Render("energy: $E = mc^2$")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	var mathLeaf *Leaf
	for _, node := range findAllByElement(nodes, "span") {
		if leaf, ok := node.(*Leaf); ok && leaf.Attrs["class"] == "math-inline" {
			mathLeaf = leaf
		}
	}
	if mathLeaf == nil {
		t.Fatal("Render() should produce math-inline span")
	}
	if !strings.Contains(mathLeaf.Content, "²") {
		t.Errorf("math content = %q, want superscript ²", mathLeaf.Content)
	}
}

// TestRender_MathInvalidKeepsSiblings 测试无效公式渲染为错误节点且不中断
func TestRender_MathInvalidKeepsSiblings(t *testing.T) {
	nodes, err := Render(`before $\frac{1$ after`)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	var errNode *Container
	for _, node := range findAllByElement(nodes, "span") {
		if c, ok := node.(*Container); ok && c.Attrs["class"] == "error" {
			errNode = c
		}
	}
	if errNode == nil {
		t.Fatal("invalid math should render an error node")
	}
	if errNode.Attrs["style"] != "border: 1px solid red" {
		t.Errorf("error node style = %q", errNode.Attrs["style"])
	}
	if !strings.Contains(collectText(nodes), "after") {
		t.Error("siblings after the error should keep rendering")
	}
}

// TestRender_MathDisabled 测试关闭公式识别后 $ 原样保留
func TestRender_MathDisabled(t *testing.T) {
	nodes, err := Render("$x$", WithMath(false))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := collectText(nodes); got != "$x$" {
		t.Errorf("text = %q, want literal '$x$'", got)
	}
}

// TestRender_Wikilink 测试 wiki 链接渲染为锚点
func TestRender_Wikilink(t *testing.T) {
	nodes, err := Render("see [[notes|my notes]]", WithWikilinks(true))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	a, ok := findByElement(nodes, "a").(*Container)
	if !ok {
		t.Fatal("wikilink should render as <a>")
	}
	if a.Attrs["href"] != "notes" {
		t.Errorf("href = %q, want 'notes'", a.Attrs["href"])
	}
	if got := collectText([]Node{a}); got != "my notes" {
		t.Errorf("link text = %q, want 'my notes'", got)
	}
}

// TestRender_LinkDropsTitle 测试链接默认路径不保留 title
func TestRender_LinkDropsTitle(t *testing.T) {
	nodes, err := Render(`[text](https://example.com "the title")`)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	a, ok := findByElement(nodes, "a").(*Container)
	if !ok {
		t.Fatal("Render() should produce <a>")
	}
	if a.Attrs["href"] != "https://example.com" {
		t.Errorf("href = %q", a.Attrs["href"])
	}
	if _, ok := a.Attrs["title"]; ok {
		t.Error("default link path must not carry title attr")
	}
}

// TestRender_ImageKeepsTitleAsAlt 测试图片默认路径用 title 作替代文本
func TestRender_ImageKeepsTitleAsAlt(t *testing.T) {
	nodes, err := Render(`![desc](pic.png "caption")`)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	img, ok := findByElement(nodes, "img").(*Leaf)
	if !ok {
		t.Fatal("Render() should produce <img> leaf")
	}
	if img.Attrs["src"] != "pic.png" {
		t.Errorf("src = %q", img.Attrs["src"])
	}
	if img.Attrs["alt"] != "caption" {
		t.Errorf("alt = %q, want 'caption'", img.Attrs["alt"])
	}
}

// TestRender_LinkRendererOverride 测试自定义链接渲染回调
func TestRender_LinkRendererOverride(t *testing.T) {
	nodes, err := Render("[text](https://example.com)", WithLinkRenderer(func(desc LinkDescription) Node {
		return &Leaf{Elem: "custom", Content: desc.URL}
	}))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	custom, ok := findByElement(nodes, "custom").(*Leaf)
	if !ok {
		t.Fatal("custom link renderer output missing")
	}
	if custom.Content != "https://example.com" {
		t.Errorf("custom content = %q", custom.Content)
	}
}

// TestRender_TableAlignmentPerRow 测试列对齐按下标解析且每行重新计数
func TestRender_TableAlignmentPerRow(t *testing.T) {
	source := "| a | b | c |\n|:--|:-:|--:|\n| 1 | 2 | 3 |\n| 4 | 5 | 6 |\n"
	nodes, err := Render(source)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	rows := findAllByElement(nodes, "tr")
	if len(rows) != 2 {
		t.Fatalf("got %d body rows, want 2", len(rows))
	}
	thead := findByElement(nodes, "thead")
	if thead == nil {
		t.Fatal("table should have <thead>")
	}
	wantStyles := []string{"text-align: left", "text-align: center", "text-align: right"}
	for _, row := range append([]Node{thead}, rows...) {
		cells := findAllByElement([]Node{row}, "td")
		if len(cells) != 3 {
			t.Fatalf("row has %d cells, want 3", len(cells))
		}
		for i, cell := range cells {
			got := cell.(*Container).Attrs["style"]
			if got != wantStyles[i] {
				t.Errorf("cell %d style = %q, want %q", i, got, wantStyles[i])
			}
		}
	}
}

// TestRender_HardLineBreaks 测试软换行策略
func TestRender_HardLineBreaks(t *testing.T) {
	nodes, err := Render("a\nb")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if findByElement(nodes, "br") != nil {
		t.Error("soft break should not render <br> by default")
	}

	nodes, err = Render("a\nb", WithHardLineBreaks(true))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if findByElement(nodes, "br") == nil {
		t.Error("WithHardLineBreaks should render <br>")
	}
}

// TestRender_MetadataDiscarded 测试 frontmatter 内容不进入节点树
func TestRender_MetadataDiscarded(t *testing.T) {
	nodes, err := Render("---\ntitle: secret\n---\n\nbody text\n")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(collectText(nodes), "secret") {
		t.Error("metadata content must not appear in the tree")
	}
	if !strings.Contains(collectText(nodes), "body text") {
		t.Error("body after metadata should render")
	}
}

// TestRender_ClickRangeRoundTrip 测试点击回调携带的区间映射回源文本
func TestRender_ClickRangeRoundTrip(t *testing.T) {
	source := "hello **world** end"
	var clicked []ClickEvent
	nodes, err := Render(source, WithOnClick(func(e ClickEvent) {
		clicked = append(clicked, e)
	}))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	b := findByElement(nodes, "b").(*Container)
	leaf := b.Children[0].(*Leaf)
	if leaf.OnClick == nil {
		t.Fatal("text leaf should carry a click handler")
	}
	leaf.OnClick(&PointerEvent{})

	if len(clicked) != 1 {
		t.Fatalf("got %d click events, want 1", len(clicked))
	}
	rng := clicked[0].Range
	if got := source[rng.Start:rng.End]; got != "world" {
		t.Errorf("clicked range maps to %q, want 'world'", got)
	}
}

// TestRender_UnknownTheme 测试未知主题返回构造期错误
func TestRender_UnknownTheme(t *testing.T) {
	_, err := Render("hi", WithTheme("no-such-theme"))
	if !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("Render() error = %v, want ErrUnknownTheme", err)
	}
}

// TestRenderEvents_WellFormed 测试直接输入事件流
func TestRenderEvents_WellFormed(t *testing.T) {
	nodes, err := RenderEvents([]Spanned{
		{Event: Start{Tag: Heading{Level: 2}}},
		{Event: Text{Content: "title"}},
		{Event: End{Tag: EndHeading}},
	})
	if err != nil {
		t.Fatalf("RenderEvents() error = %v", err)
	}
	if findByElement(nodes, "h2") == nil {
		t.Error("RenderEvents() should produce <h2>")
	}
}

// TestRenderEvents_MalformedStreams 测试违反流契约的哨兵错误
func TestRenderEvents_MalformedStreams(t *testing.T) {
	tests := []struct {
		name   string
		events []Spanned
		want   error
	}{
		{
			"wrong closer",
			[]Spanned{{Event: Start{Tag: Paragraph{}}}, {Event: End{Tag: EndList}}},
			ErrWrongClosingTag,
		},
		{
			"closer at top level",
			[]Spanned{{Event: End{Tag: EndParagraph}}},
			ErrUnexpectedClosingTag,
		},
		{
			"eof with open tag",
			[]Spanned{{Event: Start{Tag: BlockQuote{}}}},
			ErrUnexpectedEndOfStream,
		},
		{
			"cell overflow",
			[]Spanned{
				{Event: Start{Tag: Table{Alignments: []Alignment{AlignLeft}}}},
				{Event: Start{Tag: TableRow{}}},
				{Event: Start{Tag: TableCell{}}},
				{Event: End{Tag: EndTableCell}},
				{Event: Start{Tag: TableCell{}}},
				{Event: End{Tag: EndTableCell}},
				{Event: End{Tag: EndTableRow}},
				{Event: End{Tag: EndTable}},
			},
			ErrCellIndexOutOfRange,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RenderEvents(tt.events)
			if !errors.Is(err, tt.want) {
				t.Errorf("RenderEvents() error = %v, want %v", err, tt.want)
			}
		})
	}
}

// clickAll 深度优先触发子树中全部叶子的点击处理函数
func clickAll(nodes []Node) {
	for _, node := range nodes {
		switch n := node.(type) {
		case *Leaf:
			if n.OnClick != nil {
				n.OnClick(&PointerEvent{})
			}
		case *Container:
			clickAll(n.Children)
		}
	}
}

// TestRenderEvents_ClickRangeOrder 测试点击区间按流顺序完整重现叶子区间
func TestRenderEvents_ClickRangeOrder(t *testing.T) {
	events := []Spanned{
		{Event: Start{Tag: Paragraph{}}, Range: Range{Start: 0, End: 16}},
		{Event: Text{Content: "a"}, Range: Range{Start: 0, End: 1}},
		{Event: Code{Content: "b"}, Range: Range{Start: 2, End: 3}},
		{Event: HTML{Content: "<x/>"}, Range: Range{Start: 4, End: 8}},
		{Event: TaskListMarker{Checked: false}, Range: Range{Start: 9, End: 12}},
		{Event: End{Tag: EndParagraph}},
		{Event: Rule{}, Range: Range{Start: 13, End: 16}},
	}

	var got []Range
	nodes, err := RenderEvents(events, WithOnClick(func(e ClickEvent) {
		got = append(got, e.Range)
	}))
	if err != nil {
		t.Fatalf("RenderEvents() error = %v", err)
	}
	clickAll(nodes)

	want := []Range{
		{Start: 0, End: 1},
		{Start: 2, End: 3},
		{Start: 4, End: 8},
		{Start: 9, End: 12},
		{Start: 13, End: 16},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d click ranges %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("range %d = %v, want %v", i, got[i], want[i])
		}
	}
}

// TestRenderEvents_HardLineBreaksAdapter 测试适配器作用于外部事件流
func TestRenderEvents_HardLineBreaksAdapter(t *testing.T) {
	events := []Spanned{
		{Event: Start{Tag: Paragraph{}}},
		{Event: Text{Content: "a"}},
		{Event: SoftBreak{}},
		{Event: Text{Content: "b"}},
		{Event: End{Tag: EndParagraph}},
	}
	nodes, err := RenderEvents(events, WithHardLineBreaks(true))
	if err != nil {
		t.Fatalf("RenderEvents() error = %v", err)
	}
	if findByElement(nodes, "br") == nil {
		t.Error("adapter should turn the soft break into <br>")
	}
}

// TestRender_CustomFactory 测试自定义节点工厂接管构建
func TestRender_CustomFactory(t *testing.T) {
	factory := &countingFactory{}
	_, err := Render("plain **bold**", WithFactory(factory))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if factory.containers == 0 || factory.leaves == 0 {
		t.Errorf("factory saw %d containers, %d leaves, want both nonzero", factory.containers, factory.leaves)
	}
}

type countingFactory struct {
	containers int
	leaves     int
}

func (f *countingFactory) BuildContainer(element string, attrs map[string]string, children []Node, onClick ClickHandler) Node {
	f.containers++
	return &Container{Elem: element, Attrs: attrs, Children: children, OnClick: onClick}
}

func (f *countingFactory) BuildLeaf(element, content string, rawHTML bool, attrs map[string]string, onClick ClickHandler) Node {
	f.leaves++
	return &Leaf{Elem: element, Content: content, RawHTML: rawHTML, Attrs: attrs, OnClick: onClick}
}
