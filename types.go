package treemark

import (
	"github.com/riverfjs/treemark-go/internal/builder"
	"github.com/riverfjs/treemark-go/internal/types"
)

// 导出类型别名：事件流
type (
	Range   = types.Range
	Spanned = types.Spanned
	Event   = types.Event

	Text              = types.Text
	Code              = types.Code
	HTML              = types.HTML
	SoftBreak         = types.SoftBreak
	HardBreak         = types.HardBreak
	Rule              = types.Rule
	TaskListMarker    = types.TaskListMarker
	Math              = types.Math
	FootnoteReference = types.FootnoteReference
	Start             = types.Start
	End               = types.End
)

// 导出类型别名：标签
type (
	Tag    = types.Tag
	TagEnd = types.TagEnd

	Paragraph          = types.Paragraph
	Heading            = types.Heading
	BlockQuote         = types.BlockQuote
	CodeBlock          = types.CodeBlock
	List               = types.List
	ListItem           = types.ListItem
	Table              = types.Table
	TableHead          = types.TableHead
	TableRow           = types.TableRow
	TableCell          = types.TableCell
	Emphasis           = types.Emphasis
	Strong             = types.Strong
	Strikethrough      = types.Strikethrough
	Link               = types.Link
	Image              = types.Image
	FootnoteDefinition = types.FootnoteDefinition
	MetadataBlock      = types.MetadataBlock
)

// 导出类型别名：节点树
type (
	Node            = types.Node
	Container       = types.Container
	Leaf            = types.Leaf
	NodeFactory     = types.NodeFactory
	TreeFactory     = types.TreeFactory
	ClickHandler    = types.ClickHandler
	ClickHook       = types.ClickHook
	ClickEvent      = types.ClickEvent
	PointerEvent    = types.PointerEvent
	LinkDescription = types.LinkDescription
	LinkRenderer    = types.LinkRenderer
)

// 枚举别名
type (
	Alignment     = types.Alignment
	MathMode      = types.MathMode
	CodeBlockKind = types.CodeBlockKind
	LinkType      = types.LinkType
)

const (
	AlignNone   = types.AlignNone
	AlignLeft   = types.AlignLeft
	AlignCenter = types.AlignCenter
	AlignRight  = types.AlignRight

	MathInline  = types.MathInline
	MathDisplay = types.MathDisplay

	Fenced   = types.Fenced
	Indented = types.Indented

	LinkInline = types.LinkInline
	LinkAuto   = types.LinkAuto
	LinkWiki   = types.LinkWiki

	EndParagraph          = types.EndParagraph
	EndHeading            = types.EndHeading
	EndBlockQuote         = types.EndBlockQuote
	EndCodeBlock          = types.EndCodeBlock
	EndList               = types.EndList
	EndListItem           = types.EndListItem
	EndTable              = types.EndTable
	EndTableHead          = types.EndTableHead
	EndTableRow           = types.EndTableRow
	EndTableCell          = types.EndTableCell
	EndEmphasis           = types.EndEmphasis
	EndStrong             = types.EndStrong
	EndStrikethrough      = types.EndStrikethrough
	EndLink               = types.EndLink
	EndImage              = types.EndImage
	EndFootnoteDefinition = types.EndFootnoteDefinition
	EndMetadataBlock      = types.EndMetadataBlock
)

// 致命错误哨兵：事件流违反结构契约时由 RenderEvents 返回，
// 用 errors.Is 匹配
var (
	ErrWrongClosingTag       = builder.ErrWrongClosingTag
	ErrUnexpectedClosingTag  = builder.ErrUnexpectedClosingTag
	ErrUnexpectedEndOfStream = builder.ErrUnexpectedEndOfStream
	ErrUnexpectedEvent       = builder.ErrUnexpectedEvent
	ErrCellIndexOutOfRange   = builder.ErrCellIndexOutOfRange
	ErrUnknownTheme          = builder.ErrUnknownTheme
)
