package ecs

// Store 是某一种组件类型 T 的数据表（实体ID -> 组件）
//
// 每种组件一张表，取代反射查找；创建时向 EntityManager 注册，
// 实体被清理时组件随之删除。
type Store[T any] struct {
	em         *EntityManager
	components map[EntityID]T
}

// NewStore 创建组件表并注册到 EntityManager
func NewStore[T any](em *EntityManager) *Store[T] {
	s := &Store[T]{
		em:         em,
		components: make(map[EntityID]T),
	}
	em.register(s)
	return s
}

// Set 为实体添加或替换组件
// 不存活的实体会被忽略
func (s *Store[T]) Set(id EntityID, component T) {
	if !s.em.IsAlive(id) {
		return
	}
	s.components[id] = component
}

// Get 获取实体的组件
// 已标记删除的实体仍可读取，直到 RemoveMarkedEntities
func (s *Store[T]) Get(id EntityID) (T, bool) {
	c, ok := s.components[id]
	return c, ok
}

// Has 检查实体是否拥有该组件且仍存活
func (s *Store[T]) Has(id EntityID) bool {
	if _, ok := s.components[id]; !ok {
		return false
	}
	return s.em.IsAlive(id)
}

// Remove 删除实体的组件
func (s *Store[T]) Remove(id EntityID) {
	delete(s.components, id)
}

// Clear 清空组件表
func (s *Store[T]) Clear() {
	s.components = make(map[EntityID]T)
}

// Entities 返回拥有该组件的存活实体，按ID升序
func (s *Store[T]) Entities() []EntityID {
	result := make([]EntityID, 0, len(s.components))
	for id := range s.components {
		if s.em.IsAlive(id) {
			result = append(result, id)
		}
	}
	sortIDs(result)
	return result
}

// Count 返回拥有该组件的存活实体数量
func (s *Store[T]) Count() int {
	n := 0
	for id := range s.components {
		if s.em.IsAlive(id) {
			n++
		}
	}
	return n
}
