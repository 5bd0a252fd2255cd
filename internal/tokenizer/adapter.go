package tokenizer

import (
	"github.com/riverfjs/treemark-go/internal/types"
)

// HardenBreaks 把流中的所有软换行改写为硬换行，其余事件与区间
// 原样保留。用于让段落内的单个换行渲染为可见的换行。
// 对已无软换行的流调用是幂等的。
func HardenBreaks(events []types.Spanned) []types.Spanned {
	out := make([]types.Spanned, len(events))
	copy(out, events)
	for i := range out {
		if _, ok := out[i].Event.(types.SoftBreak); ok {
			out[i].Event = types.HardBreak{}
		}
	}
	return out
}
