package latex

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// 格式错误。公式渲染失败由调用方降级为行内错误节点，不中断整体渲染。
var (
	ErrUnbalancedGroup         = errors.New("unbalanced group")
	ErrMissingArgument         = errors.New("missing argument")
	ErrUnterminatedEnvironment = errors.New("unterminated environment")
)

// Parser 递归下降 LaTeX→Unicode 转换引擎
//
// 设计原则：
// 1. 数据驱动 — 符号映射集中在 symbols.go
// 2. 未知命令原样返回，不视为错误
// 3. 结构性错误（括号不配对、环境未闭合、命令缺参数）显式返回 error
type Parser struct{}

// NewParser 创建新的 LaTeX 解析器
func NewParser() *Parser {
	return &Parser{}
}

// Parse 解析 LaTeX 字符串并转换为 Unicode 文本
func (p *Parser) Parse(latex string) (string, error) {
	var result []string
	i := 0

	for i < len(latex) {
		switch {
		case latex[i] == '\\':
			command, idx := parseCommand(latex, i)
			handled, idx, err := p.handleCommand(command, latex, idx)
			if err != nil {
				return "", err
			}
			result = append(result, handled)
			i = idx

		case latex[i] == '{':
			block, idx, err := p.parseBlock(latex, i)
			if err != nil {
				return "", err
			}
			result = append(result, block)
			i = idx

		case latex[i] == '}':
			return "", fmt.Errorf("%w: stray '}' at %d", ErrUnbalancedGroup, i)

		case latex[i] == '_' || latex[i] == '^':
			sym := latex[i]
			arg, idx, err := p.parseScriptArg(latex, i+1)
			if err != nil {
				return "", err
			}
			if sym == '_' {
				result = append(result, makeSubscript(arg))
			} else {
				result = append(result, makeSuperscript(arg))
			}
			i = idx

		case unicode.IsSpace(rune(latex[i])):
			for i < len(latex) && unicode.IsSpace(rune(latex[i])) {
				i++
			}
			result = append(result, " ")

		default:
			result = append(result, string(latex[i]))
			i++
		}
	}

	return strings.Join(result, ""), nil
}

// parseScriptArg 解析 _ / ^ 之后的参数
func (p *Parser) parseScriptArg(latex string, i int) (string, int, error) {
	if i >= len(latex) {
		return "", i, fmt.Errorf("%w: script without operand", ErrMissingArgument)
	}
	if latex[i] == '{' {
		return p.parseBlock(latex, i)
	}
	if latex[i] == '\\' {
		command, idx := parseCommand(latex, i)
		return p.handleCommand(command, latex, idx)
	}
	return string(latex[i]), i + 1, nil
}

// ──────────────────────────────────────────────
// 命令分派（有序优先级）
// ──────────────────────────────────────────────

var textCommands = map[string]bool{
	"\\text": true, "\\operatorname": true, "\\mbox": true,
	"\\textrm": true, "\\textup": true, "\\mathop": true,
}

func (p *Parser) handleCommand(command, latex string, index int) (string, int, error) {
	// 1. 符号表直查（最常见路径）
	if symbol, ok := Symbols[command]; ok {
		return symbol, index, nil
	}

	// 2. \not 前缀否定
	if command == "\\not" {
		return p.handleNot(latex, index)
	}

	// 3. 组合字符命令（\hat, \bar, \vec, \dot 等）
	if c, ok := Combining[command]; ok {
		arg, idx, err := p.parseBlock(latex, index)
		if err != nil {
			return "", 0, err
		}
		return applyCombining(c, arg), idx, nil
	}

	// 4. \frac{num}{den}
	if command == "\\frac" || command == "\\dfrac" || command == "\\tfrac" {
		numer, idx, err := p.parseBlock(latex, index)
		if err != nil {
			return "", 0, err
		}
		denom, idx, err := p.parseBlock(latex, idx)
		if err != nil {
			return "", 0, err
		}
		return makeFraction(numer, denom), idx, nil
	}

	// 5. \sqrt[n]{x} — 可选参数用 []
	if command == "\\sqrt" {
		option, idx, err := p.parseOptional(latex, index)
		if err != nil {
			return "", 0, err
		}
		param, idx, err := p.parseBlock(latex, idx)
		if err != nil {
			return "", 0, err
		}
		return makeSqrt(strings.TrimSpace(option), strings.TrimSpace(param)), idx, nil
	}

	// 6. 样式命令（\mathbb, \mathcal, \mathrm 等）
	if styleMap, ok := Styles[command]; ok {
		text, idx, err := p.parseBlock(latex, index)
		if err != nil {
			return "", 0, err
		}
		return applyStyle(styleMap, text), idx, nil
	}

	// 7. 文本直通命令
	if textCommands[command] {
		text, idx, err := p.parseBlock(latex, index)
		if err != nil {
			return "", 0, err
		}
		return text, idx, nil
	}

	// 8. \left / \right 定界符
	if command == "\\left" || command == "\\right" {
		return parseDelimiter(latex, index)
	}

	// 9. \binom{n}{k}
	if command == "\\binom" || command == "\\tbinom" || command == "\\dbinom" {
		nVal, idx, err := p.parseBlock(latex, index)
		if err != nil {
			return "", 0, err
		}
		kVal, idx, err := p.parseBlock(latex, idx)
		if err != nil {
			return "", 0, err
		}
		return "C(" + nVal + "," + kVal + ")", idx, nil
	}

	// 10. \pmod{p}
	if command == "\\pmod" {
		text, idx, err := p.parseBlock(latex, index)
		if err != nil {
			return "", 0, err
		}
		return " (mod " + text + ")", idx, nil
	}

	// 11. \overset{over}{base} / \underset{under}{base}
	if command == "\\overset" || command == "\\underset" {
		script, idx, err := p.parseBlock(latex, index)
		if err != nil {
			return "", 0, err
		}
		base, idx, err := p.parseBlock(latex, idx)
		if err != nil {
			return "", 0, err
		}
		if command == "\\overset" {
			return base + makeSuperscript(script), idx, nil
		}
		return base + makeSubscript(script), idx, nil
	}

	// 12. \color{...} — 忽略颜色参数
	if command == "\\color" {
		_, idx, err := p.parseBlock(latex, index)
		if err != nil {
			return "", 0, err
		}
		return "", idx, nil
	}

	// 13. \overbrace / \underbrace
	if command == "\\overbrace" {
		text, idx, err := p.parseBlock(latex, index)
		if err != nil {
			return "", 0, err
		}
		return applyCombining(Combining["\\overline"], text), idx, nil
	}
	if command == "\\underbrace" {
		text, idx, err := p.parseBlock(latex, index)
		if err != nil {
			return "", 0, err
		}
		return applyCombining(Combining["\\underline"], text), idx, nil
	}

	// 14. \begin{...}\end{...} 环境
	if command == "\\begin" {
		envName, idx := parseEnvName(latex, index)
		content, idx, err := parseEnvironment(latex, idx, envName)
		if err != nil {
			return "", 0, err
		}
		rendered, err := p.renderEnvironment(envName, content)
		if err != nil {
			return "", 0, err
		}
		return rendered, idx, nil
	}
	if command == "\\end" {
		envName, idx := parseEnvName(latex, index)
		return "", idx, fmt.Errorf("%w: \\end{%s} without \\begin", ErrUnterminatedEnvironment, envName)
	}

	// 15. 兜底：返回原始命令文本
	return command, index, nil
}

func (p *Parser) handleNot(latex string, index int) (string, int, error) {
	if index >= len(latex) {
		return "", 0, fmt.Errorf("%w: \\not without operand", ErrMissingArgument)
	}
	if latex[index] == '\\' {
		nextCmd, idx := parseCommand(latex, index)
		symbol := Symbols[nextCmd]
		if symbol == "" {
			symbol = nextCmd
		}
		return makeNot(symbol), idx, nil
	}
	return makeNot(string(latex[index])), index + 1, nil
}

// ──────────────────────────────────────────────
// 底层解析方法
// ──────────────────────────────────────────────

var commandRegex = regexp.MustCompile(`^\\([a-zA-Z]+|.)`)

func parseCommand(latex string, start int) (string, int) {
	match := commandRegex.FindString(latex[start:])
	if match != "" {
		return match, start + len(match)
	}
	return "\\", start + 1
}

func (p *Parser) parseBlock(latex string, start int) (string, int, error) {
	if start >= len(latex) {
		return "", start, fmt.Errorf("%w at end of input", ErrMissingArgument)
	}
	if latex[start] != '{' {
		// 无 {} 包裹 — 读取单个 token（标准 LaTeX 行为）
		if latex[start] == '\\' {
			cmd, idx := parseCommand(latex, start)
			return p.handleCommand(cmd, latex, idx)
		}
		return string(latex[start]), start + 1, nil
	}

	level, pos := 1, start+1
	for pos < len(latex) && level > 0 {
		if latex[pos] == '{' {
			level++
		} else if latex[pos] == '}' {
			level--
		}
		pos++
	}
	if level > 0 {
		return "", 0, fmt.Errorf("%w: '{' at %d never closed", ErrUnbalancedGroup, start)
	}
	inner, err := p.Parse(latex[start+1 : pos-1])
	if err != nil {
		return "", 0, err
	}
	return inner, pos, nil
}

func (p *Parser) parseOptional(latex string, start int) (string, int, error) {
	if start >= len(latex) || latex[start] != '[' {
		return "", start, nil
	}
	level, pos := 1, start+1
	for pos < len(latex) && level > 0 {
		if latex[pos] == '[' {
			level++
		} else if latex[pos] == ']' {
			level--
		}
		pos++
	}
	if level > 0 {
		return "", 0, fmt.Errorf("%w: '[' at %d never closed", ErrUnbalancedGroup, start)
	}
	inner, err := p.Parse(latex[start+1 : pos-1])
	if err != nil {
		return "", 0, err
	}
	return inner, pos, nil
}

func parseDelimiter(latex string, index int) (string, int, error) {
	if index >= len(latex) {
		return "", 0, fmt.Errorf("%w: delimiter expected", ErrMissingArgument)
	}
	ch := latex[index]
	if ch == '\\' {
		cmd, idx := parseCommand(latex, index)
		symbol := Symbols[cmd]
		if symbol == "" {
			symbol = strings.TrimPrefix(cmd, "\\")
		}
		return symbol, idx, nil
	}
	if ch == '.' {
		// 不可见定界符
		return "", index + 1, nil
	}
	return string(ch), index + 1, nil
}

// ──────────────────────────────────────────────
// 环境解析
// ──────────────────────────────────────────────

func parseEnvName(latex string, index int) (string, int) {
	if index < len(latex) && latex[index] == '{' {
		close := strings.IndexByte(latex[index:], '}')
		if close != -1 {
			return latex[index+1 : index+close], index + close + 1
		}
	}
	return "", index
}

func parseEnvironment(latex string, index int, envName string) (string, int, error) {
	endMarker := "\\end{" + envName + "}"
	endPos := strings.Index(latex[index:], endMarker)
	if endPos == -1 {
		return "", 0, fmt.Errorf("%w: %q", ErrUnterminatedEnvironment, envName)
	}
	return latex[index : index+endPos], index + endPos + len(endMarker), nil
}

// 矩阵类环境类型 → (左定界符, 右定界符)
var matrixTypes = map[string][2]string{
	"matrix":      {"", ""},
	"pmatrix":     {"(", ")"},
	"bmatrix":     {"[", "]"},
	"Bmatrix":     {"{", "}"},
	"vmatrix":     {"|", "|"},
	"Vmatrix":     {"‖", "‖"},
	"smallmatrix": {"", ""},
}

// align 类环境
var alignTypes = map[string]bool{
	"align": true, "align*": true, "aligned": true,
	"gather": true, "gather*": true, "gathered": true,
	"equation": true, "equation*": true, "split": true,
}

func (p *Parser) renderEnvironment(envName, content string) (string, error) {
	if delims, ok := matrixTypes[envName]; ok {
		return p.renderMatrix(content, delims[0], delims[1], envName == "smallmatrix")
	}
	if envName == "cases" {
		return p.renderCases(content)
	}
	if alignTypes[envName] {
		return p.renderAlign(content)
	}
	// 未知环境 — 直接解析内容
	return p.Parse(content)
}

func (p *Parser) renderMatrix(content, left, right string, compact bool) (string, error) {
	rows := strings.Split(content, "\\\\")
	var rendered []string
	for _, row := range rows {
		trimmed := strings.TrimSpace(row)
		if trimmed == "" {
			continue
		}
		var cells []string
		for _, cell := range strings.Split(trimmed, "&") {
			parsed, err := p.Parse(strings.TrimSpace(cell))
			if err != nil {
				return "", err
			}
			cells = append(cells, parsed)
		}
		sep := "  "
		if compact {
			sep = ", "
		}
		rendered = append(rendered, strings.Join(cells, sep))
	}
	joiner := "\n"
	if compact {
		joiner = "; "
	}
	return left + strings.Join(rendered, joiner) + right, nil
}

func (p *Parser) renderCases(content string) (string, error) {
	rows := strings.Split(content, "\\\\")
	var parts []string
	for _, row := range rows {
		trimmed := strings.TrimSpace(row)
		if trimmed == "" {
			continue
		}
		segments := strings.SplitN(trimmed, "&", 2)
		val, err := p.Parse(strings.TrimSpace(segments[0]))
		if err != nil {
			return "", err
		}
		if len(segments) > 1 {
			cond, err := p.Parse(strings.TrimSpace(segments[1]))
			if err != nil {
				return "", err
			}
			if cond != "" {
				val += ", " + cond
			}
		}
		parts = append(parts, val)
	}

	switch len(parts) {
	case 0:
		return "", nil
	case 1:
		return "⎧ " + parts[0], nil
	}

	var lines []string
	for i, part := range parts {
		switch i {
		case 0:
			lines = append(lines, "⎧ "+part)
		case len(parts) - 1:
			lines = append(lines, "⎩ "+part)
		default:
			lines = append(lines, "⎨ "+part)
		}
	}
	return strings.Join(lines, "\n"), nil
}

func (p *Parser) renderAlign(content string) (string, error) {
	rows := strings.Split(content, "\\\\")
	var rendered []string
	for _, row := range rows {
		trimmed := strings.TrimSpace(row)
		if trimmed == "" {
			continue
		}
		parsed, err := p.Parse(strings.ReplaceAll(trimmed, "&", " "))
		if err != nil {
			return "", err
		}
		rendered = append(rendered, parsed)
	}
	return strings.Join(rendered, "\n"), nil
}
