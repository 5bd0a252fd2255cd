// Package latex 将 LaTeX 公式排版为 Unicode 文本
//
// 没有可用的 Go KaTeX 实现，因此公式排版用 Unicode 近似：
// 上下标、分数、根号、希腊字母、矩阵环境等都映射到对应的
// Unicode 字符。格式错误（括号不配对、环境未闭合）返回 error，
// 由渲染层降级为行内错误节点。
package latex

import (
	"strings"
	"unicode"
)

// Typeset 将 LaTeX 内容排版为 Unicode 文本
//
// display 为 true 时表示独立显示公式（$$...$$）；排版结果相同，
// 调用方用它决定节点的 class。
func Typeset(content string, display bool) (string, error) {
	out, err := NewParser().Parse(content)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// ──────────────────────────────────────────────
// Unicode 构造工具
// ──────────────────────────────────────────────

// trySubscript 尝试将文本完整转换为 Unicode 下标，失败返回空字符串
func trySubscript(text string) string {
	var b strings.Builder
	for _, ch := range text {
		sub, ok := Subscripts[ch]
		if !ok {
			return ""
		}
		b.WriteRune(sub)
	}
	return b.String()
}

func makeSubscript(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if sub := trySubscript(text); sub != "" {
		return sub
	}
	if len([]rune(text)) == 1 {
		return "_" + text
	}
	return "_(" + text + ")"
}

// trySuperscript 尝试将文本完整转换为 Unicode 上标，失败返回空字符串
func trySuperscript(text string) string {
	var b strings.Builder
	for _, ch := range text {
		sup, ok := Superscripts[ch]
		if !ok {
			return ""
		}
		b.WriteRune(sup)
	}
	return b.String()
}

func makeSuperscript(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if sup := trySuperscript(text); sup != "" {
		return sup
	}
	if len([]rune(text)) == 1 {
		return "^" + text
	}
	return "^(" + text + ")"
}

func makeFraction(numerator, denominator string) string {
	n, d := strings.TrimSpace(numerator), strings.TrimSpace(denominator)
	if n == "" && d == "" {
		return ""
	}
	if frac, ok := FracMap[[2]string{n, d}]; ok {
		return frac
	}
	return maybeParenthesize(n) + "/" + maybeParenthesize(d)
}

func makeSqrt(index, radicand string) string {
	var radix string
	switch index {
	case "", "2":
		radix = "√"
	case "3":
		radix = "∛"
	case "4":
		radix = "∜"
	default:
		if sup := trySuperscript(index); sup != "" {
			radix = sup + "√"
		} else {
			radix = "(" + index + ")√"
		}
	}
	return radix + applyCombining(Combining["\\overline"], radicand)
}

func makeNot(negated string) string {
	trimmed := strings.TrimSpace(negated)
	if trimmed == "" {
		return " "
	}
	if notSymbol, ok := NotMap[trimmed]; ok {
		return notSymbol
	}
	// 默认：添加组合长斜线
	runes := []rune(trimmed)
	return string(runes[0]) + "\u0338" + string(runes[1:])
}

// applyCombining 将组合字符应用于文本
func applyCombining(c combining, text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return text
	}

	switch c.Kind {
	case firstChar:
		// 应用到第一个字符之后（跳过空格和已有组合字符）
		i := 1
		for i < len(runes) && (unicode.IsSpace(runes[i]) || isCombiningChar(runes[i])) {
			i++
		}
		if i >= len(runes) {
			return string(runes) + string(c.Char)
		}
		return string(runes[:i]) + string(c.Char) + string(runes[i:])

	case lastChar:
		return text + string(c.Char)

	case allChars:
		var b strings.Builder
		for _, r := range runes {
			b.WriteRune(r)
			b.WriteRune(c.Char)
		}
		return b.String()
	}

	return text
}

func applyStyle(styleMap map[rune]rune, text string) string {
	if styleMap == nil {
		// \mathrm, \mathsf 等：原样返回
		return text
	}
	var b strings.Builder
	for _, ch := range text {
		if styled, ok := styleMap[ch]; ok {
			b.WriteRune(styled)
		} else {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

func maybeParenthesize(text string) string {
	for _, r := range text {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) && !isCombiningChar(r) && r != '_' {
			return "(" + text + ")"
		}
	}
	return text
}

func isCombiningChar(r rune) bool {
	return (r >= '\u0300' && r <= '\u036F') ||
		(r >= '\u1AB0' && r <= '\u1AFF') ||
		(r >= '\u1DC0' && r <= '\u1DFF') ||
		(r >= '\u20D0' && r <= '\u20FF') ||
		(r >= '\uFE20' && r <= '\uFE2F')
}
