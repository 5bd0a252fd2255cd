package latex

// ──────────────────────────────────────────────
// 符号映射表（数据驱动）
// ──────────────────────────────────────────────

// Symbols LaTeX 命令 → Unicode 符号
var Symbols = map[string]string{
	// 希腊字母
	"\\alpha": "α", "\\beta": "β", "\\gamma": "γ", "\\delta": "δ",
	"\\epsilon": "ε", "\\varepsilon": "ε", "\\zeta": "ζ", "\\eta": "η",
	"\\theta": "θ", "\\vartheta": "ϑ", "\\iota": "ι", "\\kappa": "κ",
	"\\lambda": "λ", "\\mu": "μ", "\\nu": "ν", "\\xi": "ξ",
	"\\pi": "π", "\\varpi": "ϖ", "\\rho": "ρ", "\\varrho": "ϱ",
	"\\sigma": "σ", "\\varsigma": "ς", "\\tau": "τ", "\\upsilon": "υ",
	"\\phi": "ϕ", "\\varphi": "φ", "\\chi": "χ", "\\psi": "ψ",
	"\\omega": "ω",
	"\\Gamma": "Γ", "\\Delta": "Δ", "\\Theta": "Θ", "\\Lambda": "Λ",
	"\\Xi": "Ξ", "\\Pi": "Π", "\\Sigma": "Σ", "\\Upsilon": "Υ",
	"\\Phi": "Φ", "\\Psi": "Ψ", "\\Omega": "Ω",

	// 运算符
	"\\times": "×", "\\div": "÷", "\\pm": "±", "\\mp": "∓",
	"\\cdot": "⋅", "\\ast": "∗", "\\star": "⋆", "\\circ": "∘",
	"\\bullet": "•", "\\oplus": "⊕", "\\ominus": "⊖", "\\otimes": "⊗",
	"\\oslash": "⊘", "\\odot": "⊙", "\\wedge": "∧", "\\vee": "∨",
	"\\cap": "∩", "\\cup": "∪", "\\setminus": "∖",

	// 关系
	"\\leq": "≤", "\\le": "≤", "\\geq": "≥", "\\ge": "≥",
	"\\neq": "≠", "\\ne": "≠", "\\equiv": "≡", "\\approx": "≈",
	"\\cong": "≅", "\\simeq": "≃", "\\sim": "∼", "\\propto": "∝",
	"\\ll": "≪", "\\gg": "≫", "\\prec": "≺", "\\succ": "≻",

	// 集合与逻辑
	"\\in": "∈", "\\notin": "∉", "\\ni": "∋", "\\subset": "⊂",
	"\\supset": "⊃", "\\subseteq": "⊆", "\\supseteq": "⊇",
	"\\emptyset": "∅", "\\varnothing": "∅",
	"\\forall": "∀", "\\exists": "∃", "\\nexists": "∄",
	"\\neg": "¬", "\\lnot": "¬", "\\land": "∧", "\\lor": "∨",
	"\\implies": "⟹", "\\iff": "⟺", "\\to": "→", "\\mapsto": "↦",

	// 箭头
	"\\leftarrow": "←", "\\rightarrow": "→", "\\leftrightarrow": "↔",
	"\\Leftarrow": "⇐", "\\Rightarrow": "⇒", "\\Leftrightarrow": "⇔",
	"\\uparrow": "↑", "\\downarrow": "↓", "\\gets": "←",
	"\\hookrightarrow": "↪", "\\hookleftarrow": "↩",

	// 分析
	"\\infty": "∞", "\\partial": "∂", "\\nabla": "∇",
	"\\int": "∫", "\\iint": "∬", "\\iiint": "∭", "\\oint": "∮",
	"\\sum": "∑", "\\prod": "∏", "\\coprod": "∐",
	"\\lim": "lim", "\\sup": "sup", "\\inf": "inf",
	"\\min": "min", "\\max": "max",
	"\\sin": "sin", "\\cos": "cos", "\\tan": "tan",
	"\\log": "log", "\\ln": "ln", "\\exp": "exp",

	// 杂项
	"\\aleph": "ℵ", "\\hbar": "ℏ", "\\ell": "ℓ", "\\Re": "ℜ",
	"\\Im": "ℑ", "\\wp": "℘", "\\angle": "∠", "\\triangle": "△",
	"\\square": "□", "\\perp": "⊥", "\\parallel": "∥",
	"\\degree": "°", "\\prime": "′", "\\ldots": "…", "\\cdots": "⋯",
	"\\vdots": "⋮", "\\ddots": "⋱", "\\dots": "…",
	"\\therefore": "∴", "\\because": "∵",

	// 定界符与空白
	"\\langle": "⟨", "\\rangle": "⟩", "\\lceil": "⌈", "\\rceil": "⌉",
	"\\lfloor": "⌊", "\\rfloor": "⌋", "\\|": "‖",
	"\\{": "{", "\\}": "}", "\\%": "%", "\\$": "$", "\\&": "&",
	"\\#": "#", "\\_": "_", "\\\\": "\n",
	"\\quad": "  ", "\\qquad": "    ", "\\,": " ", "\\;": " ",
	"\\:": " ", "\\!": "", "\\ ": " ",
}

// Subscripts 可转为 Unicode 下标的字符
var Subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '=': '₌', '(': '₍', ')': '₎',
	'a': 'ₐ', 'e': 'ₑ', 'h': 'ₕ', 'i': 'ᵢ', 'j': 'ⱼ',
	'k': 'ₖ', 'l': 'ₗ', 'm': 'ₘ', 'n': 'ₙ', 'o': 'ₒ',
	'p': 'ₚ', 'r': 'ᵣ', 's': 'ₛ', 't': 'ₜ', 'u': 'ᵤ',
	'v': 'ᵥ', 'x': 'ₓ',
}

// Superscripts 可转为 Unicode 上标的字符
var Superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽', ')': '⁾',
	'a': 'ᵃ', 'b': 'ᵇ', 'c': 'ᶜ', 'd': 'ᵈ', 'e': 'ᵉ',
	'f': 'ᶠ', 'g': 'ᵍ', 'h': 'ʰ', 'i': 'ⁱ', 'j': 'ʲ',
	'k': 'ᵏ', 'l': 'ˡ', 'm': 'ᵐ', 'n': 'ⁿ', 'o': 'ᵒ',
	'p': 'ᵖ', 'r': 'ʳ', 's': 'ˢ', 't': 'ᵗ', 'u': 'ᵘ',
	'v': 'ᵛ', 'w': 'ʷ', 'x': 'ˣ', 'y': 'ʸ', 'z': 'ᶻ',
	'T': 'ᵀ',
}

// combiningKind 组合字符的应用方式
type combiningKind int

const (
	firstChar combiningKind = iota
	lastChar
	allChars
)

type combining struct {
	Char rune
	Kind combiningKind
}

// Combining 组合字符命令（\hat、\bar、\vec 等）
var Combining = map[string]combining{
	"\\hat":       {'\u0302', firstChar},
	"\\bar":       {'\u0304', firstChar},
	"\\vec":       {'\u20D7', firstChar},
	"\\dot":       {'\u0307', firstChar},
	"\\ddot":      {'\u0308', firstChar},
	"\\tilde":     {'\u0303', firstChar},
	"\\check":     {'\u030C', firstChar},
	"\\breve":     {'\u0306', firstChar},
	"\\acute":     {'\u0301', firstChar},
	"\\grave":     {'\u0300', firstChar},
	"\\overline":  {'\u0305', allChars},
	"\\underline": {'\u0332', allChars},
}

// mathbbMap 黑板粗体字母
var mathbbMap = map[rune]rune{
	'A': '𝔸', 'B': '𝔹', 'C': 'ℂ', 'D': '𝔻', 'E': '𝔼', 'F': '𝔽',
	'G': '𝔾', 'H': 'ℍ', 'I': '𝕀', 'J': '𝕁', 'K': '𝕂', 'L': '𝕃',
	'M': '𝕄', 'N': 'ℕ', 'O': '𝕆', 'P': 'ℙ', 'Q': 'ℚ', 'R': 'ℝ',
	'S': '𝕊', 'T': '𝕋', 'U': '𝕌', 'V': '𝕍', 'W': '𝕎', 'X': '𝕏',
	'Y': '𝕐', 'Z': 'ℤ',
	'0': '𝟘', '1': '𝟙', '2': '𝟚', '3': '𝟛', '4': '𝟜',
	'5': '𝟝', '6': '𝟞', '7': '𝟟', '8': '𝟠', '9': '𝟡',
}

// mathcalMap 花体字母
var mathcalMap = map[rune]rune{
	'A': '𝒜', 'B': 'ℬ', 'C': '𝒞', 'D': '𝒟', 'E': 'ℰ', 'F': 'ℱ',
	'G': '𝒢', 'H': 'ℋ', 'I': 'ℐ', 'J': '𝒥', 'K': '𝒦', 'L': 'ℒ',
	'M': 'ℳ', 'N': '𝒩', 'O': '𝒪', 'P': '𝒫', 'Q': '𝒬', 'R': 'ℛ',
	'S': '𝒮', 'T': '𝒯', 'U': '𝒰', 'V': '𝒱', 'W': '𝒲', 'X': '𝒳',
	'Y': '𝒴', 'Z': '𝒵',
}

// Styles 样式命令 → 字符映射。nil 表示原样返回（\mathrm 等）
var Styles = map[string]map[rune]rune{
	"\\mathbb":  mathbbMap,
	"\\mathcal": mathcalMap,
	"\\mathrm":  nil,
	"\\mathsf":  nil,
	"\\mathbf":  nil,
	"\\mathit":  nil,
}

// FracMap 常见分数的专用 Unicode 字符
var FracMap = map[[2]string]string{
	{"1", "2"}: "½", {"1", "3"}: "⅓", {"2", "3"}: "⅔",
	{"1", "4"}: "¼", {"3", "4"}: "¾", {"1", "5"}: "⅕",
	{"2", "5"}: "⅖", {"3", "5"}: "⅗", {"4", "5"}: "⅘",
	{"1", "6"}: "⅙", {"5", "6"}: "⅚", {"1", "8"}: "⅛",
	{"3", "8"}: "⅜", {"5", "8"}: "⅝", {"7", "8"}: "⅞",
}

// NotMap \not 的专用否定符号
var NotMap = map[string]string{
	"=": "≠", "∈": "∉", "∋": "∌", "<": "≮", ">": "≯",
	"≤": "≰", "≥": "≱", "⊂": "⊄", "⊃": "⊅", "≡": "≢",
	"∼": "≁", "≈": "≉",
}
