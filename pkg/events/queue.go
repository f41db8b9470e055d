// Package events 定义每个 tick 的事件信箱
//
// 产生阶段只 Emit，消费阶段 Drain 一次，tick 结束时 Clear。
// 同一阶段内不会读到本阶段写入的事件。
package events

// Queue 单一事件类型的信箱
type Queue[T any] struct {
	items []T
}

// Emit 追加事件
func (q *Queue[T]) Emit(e T) {
	q.items = append(q.items, e)
}

// Drain 取出并清空全部事件
func (q *Queue[T]) Drain() []T {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Peek 只读查看当前事件，不清空
func (q *Queue[T]) Peek() []T {
	return q.items
}

// Len 当前事件数量
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// Clear 丢弃全部事件
func (q *Queue[T]) Clear() {
	q.items = q.items[:0]
}
