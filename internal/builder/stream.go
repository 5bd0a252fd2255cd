package builder

import (
	"github.com/riverfjs/treemark-go/internal/types"
)

// Stream 是事件流上的唯一共享游标
//
// 同一时刻只有一个 builder 帧在推进它：子帧在返回父帧之前必须
// 完整消费自己的子树，严格的栈式交接，无需加锁。
type Stream struct {
	events []types.Spanned
	pos    int
}

// NewStream 创建游标，从第一个事件开始
func NewStream(events []types.Spanned) *Stream {
	return &Stream{events: events}
}

// Next 消费并返回下一个事件；流耗尽时第二个返回值为 false
func (s *Stream) Next() (types.Spanned, bool) {
	if s.pos >= len(s.events) {
		return types.Spanned{}, false
	}
	sp := s.events[s.pos]
	s.pos++
	return sp, true
}

// Pos returns the number of events consumed so far.
func (s *Stream) Pos() int {
	return s.pos
}
