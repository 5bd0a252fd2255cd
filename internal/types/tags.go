package types

// Tag 是容器类事件的密封接口，每个 Start(tag) 打开一棵子树，
// 由对应的 End(tag.Closer()) 闭合
type Tag interface {
	tag()
	// Closer 返回该标签的闭合标记（只含种类，不含 payload）
	Closer() TagEnd
}

// TagEnd 标识闭合标记的种类
type TagEnd int

const (
	EndParagraph TagEnd = iota
	EndHeading
	EndBlockQuote
	EndCodeBlock
	EndList
	EndListItem
	EndTable
	EndTableHead
	EndTableRow
	EndTableCell
	EndEmphasis
	EndStrong
	EndStrikethrough
	EndLink
	EndImage
	EndFootnoteDefinition
	EndMetadataBlock
)

// String returns a readable name for error messages.
func (e TagEnd) String() string {
	names := [...]string{
		"paragraph", "heading", "blockquote", "code block", "list",
		"list item", "table", "table head", "table row", "table cell",
		"emphasis", "strong", "strikethrough", "link", "image",
		"footnote definition", "metadata block",
	}
	if int(e) < len(names) {
		return names[e]
	}
	return "unknown"
}

// Paragraph 段落
type Paragraph struct{}

// Heading 标题，Level 取值 1–6
type Heading struct {
	Level int
}

// BlockQuote 引用块
type BlockQuote struct{}

// CodeBlockKind 区分围栏代码块与缩进代码块
type CodeBlockKind int

const (
	// Fenced 围栏代码块 ```lang
	Fenced CodeBlockKind = iota
	// Indented 缩进代码块，永远不做语法高亮
	Indented
)

// CodeBlock 代码块，Language 仅对 Fenced 有意义
type CodeBlock struct {
	Kind     CodeBlockKind
	Language string
}

// List 列表。Start 非 nil 表示有序列表及其起始编号
type List struct {
	Start *int
}

// ListItem 列表项
type ListItem struct{}

// Alignment 表格列对齐方式
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Table 表格，列对齐方式在 Start(Table) 时即固定
type Table struct {
	Alignments []Alignment
}

// TableHead 表头行
type TableHead struct{}

// TableRow 表格行
type TableRow struct{}

// TableCell 表格单元格
type TableCell struct{}

// Emphasis 斜体
type Emphasis struct{}

// Strong 粗体
type Strong struct{}

// Strikethrough 删除线
type Strikethrough struct{}

// LinkType 链接的来源语法
type LinkType int

const (
	// LinkInline 普通内联链接 [text](url)
	LinkInline LinkType = iota
	// LinkAuto 自动链接 <https://...>
	LinkAuto
	// LinkWiki wikilink [[target]] 或 [[target|label]]
	LinkWiki
)

// Link 链接
type Link struct {
	URL   string
	Title string
	Type  LinkType
}

// Image 图片
type Image struct {
	URL   string
	Title string
	Type  LinkType
}

// FootnoteDefinition 脚注定义（不支持渲染，仅用于流的完整性）
type FootnoteDefinition struct {
	Label string
}

// MetadataBlock 元数据块（YAML frontmatter），内容被消费但不渲染
type MetadataBlock struct{}

func (Paragraph) tag()          {}
func (Heading) tag()            {}
func (BlockQuote) tag()         {}
func (CodeBlock) tag()          {}
func (List) tag()               {}
func (ListItem) tag()           {}
func (Table) tag()              {}
func (TableHead) tag()          {}
func (TableRow) tag()           {}
func (TableCell) tag()          {}
func (Emphasis) tag()           {}
func (Strong) tag()             {}
func (Strikethrough) tag()      {}
func (Link) tag()               {}
func (Image) tag()              {}
func (FootnoteDefinition) tag() {}
func (MetadataBlock) tag()      {}

func (Paragraph) Closer() TagEnd          { return EndParagraph }
func (Heading) Closer() TagEnd            { return EndHeading }
func (BlockQuote) Closer() TagEnd         { return EndBlockQuote }
func (CodeBlock) Closer() TagEnd          { return EndCodeBlock }
func (List) Closer() TagEnd               { return EndList }
func (ListItem) Closer() TagEnd           { return EndListItem }
func (Table) Closer() TagEnd              { return EndTable }
func (TableHead) Closer() TagEnd          { return EndTableHead }
func (TableRow) Closer() TagEnd           { return EndTableRow }
func (TableCell) Closer() TagEnd          { return EndTableCell }
func (Emphasis) Closer() TagEnd           { return EndEmphasis }
func (Strong) Closer() TagEnd             { return EndStrong }
func (Strikethrough) Closer() TagEnd      { return EndStrikethrough }
func (Link) Closer() TagEnd               { return EndLink }
func (Image) Closer() TagEnd              { return EndImage }
func (FootnoteDefinition) Closer() TagEnd { return EndFootnoteDefinition }
func (MetadataBlock) Closer() TagEnd      { return EndMetadataBlock }

// Interface compliance checks.
var (
	_ Tag = Paragraph{}
	_ Tag = Heading{}
	_ Tag = BlockQuote{}
	_ Tag = CodeBlock{}
	_ Tag = List{}
	_ Tag = ListItem{}
	_ Tag = Table{}
	_ Tag = TableHead{}
	_ Tag = TableRow{}
	_ Tag = TableCell{}
	_ Tag = Emphasis{}
	_ Tag = Strong{}
	_ Tag = Strikethrough{}
	_ Tag = Link{}
	_ Tag = Image{}
	_ Tag = FootnoteDefinition{}
	_ Tag = MetadataBlock{}
)
