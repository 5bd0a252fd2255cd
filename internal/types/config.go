package types

// RenderConfig 渲染配置
type RenderConfig struct {
	// ErrorClass 行内错误节点的 class
	ErrorClass string
	// MathInlineClass 行内公式节点的 class
	MathInlineClass string
	// MathDisplayClass 独立显示公式节点的 class
	MathDisplayClass string
	// DefaultTheme 语法高亮默认主题（chroma style 名称）
	DefaultTheme string
	// EnableMath 是否识别 $...$ / $$...$$ 数学语法
	EnableMath bool
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		ErrorClass:       "error",
		MathInlineClass:  "math-inline",
		MathDisplayClass: "math-flow",
		DefaultTheme:     "github",
		EnableMath:       true,
	}
}
