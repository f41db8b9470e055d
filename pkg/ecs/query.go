package ecs

// Queryable 是可以参与查询的组件表
type Queryable interface {
	Has(id EntityID) bool
	Entities() []EntityID
}

// Query 返回同时拥有所有指定组件的存活实体（集合交集），按ID升序
//
// 示例:
//
//	ids := ecs.Query(w.Positions, w.Lasers)
func Query(first Queryable, rest ...Queryable) []EntityID {
	candidates := first.Entities()
	for _, s := range rest {
		filtered := candidates[:0]
		for _, id := range candidates {
			if s.Has(id) {
				filtered = append(filtered, id)
			}
		}
		candidates = filtered
		if len(candidates) == 0 {
			break
		}
	}
	return candidates
}

// Without 从 ids 中剔除拥有任一指定组件的实体（集合差集）
func Without(ids []EntityID, excluded ...Queryable) []EntityID {
	result := make([]EntityID, 0, len(ids))
	for _, id := range ids {
		keep := true
		for _, s := range excluded {
			if s.Has(id) {
				keep = false
				break
			}
		}
		if keep {
			result = append(result, id)
		}
	}
	return result
}

// Single 用于"零个或一个"的查询（玩家、UFO、玩家激光）
// 恰好一个结果时返回 true，否则返回 false
func Single(ids []EntityID) (EntityID, bool) {
	if len(ids) != 1 {
		return InvalidEntity, false
	}
	return ids[0], true
}
