package ecs

import "sort"

// EntityID 是实体的唯一标识符
// 0 保留为无效ID
type EntityID uint64

// InvalidEntity 表示"没有实体"
const InvalidEntity EntityID = 0

// componentStore 是 EntityManager 在清理实体时需要级联删除的组件表
// 由 Store[T] 实现
type componentStore interface {
	Remove(id EntityID)
	Clear()
}

// EntityManager 管理实体的生命周期
//
// 组件数据不存放在 EntityManager 中，而是存放在按类型划分的 Store[T] 中；
// EntityManager 只负责分配ID、维护父子关系、延迟删除，并在删除时通知所有已注册的组件表。
type EntityManager struct {
	nextID uint64
	// 存活实体集合
	alive map[EntityID]struct{}
	// 父实体 -> 子实体列表（如 UFO 的循环音效、掩体的装甲文字）
	children map[EntityID][]EntityID
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
	// 已注册的组件表
	stores []componentStore
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		alive:             make(map[EntityID]struct{}),
		children:          make(map[EntityID][]EntityID),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// register 注册组件表，删除实体时会级联清理
func (em *EntityManager) register(s componentStore) {
	em.stores = append(em.stores, s)
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.alive[id] = struct{}{}
	return id
}

// IsAlive 检查实体是否存活
// 已标记删除但尚未清理的实体视为不存活
func (em *EntityManager) IsAlive(id EntityID) bool {
	_, ok := em.alive[id]
	return ok
}

// AddChild 将 child 挂到 parent 下，DestroyEntityRecursive 时一并删除
func (em *EntityManager) AddChild(parent, child EntityID) {
	if !em.IsAlive(parent) || !em.IsAlive(child) {
		return
	}
	em.children[parent] = append(em.children[parent], child)
}

// Children 返回实体的子实体列表（可能为空）
func (em *EntityManager) Children(parent EntityID) []EntityID {
	return em.children[parent]
}

// DestroyEntity 标记实体待删除(不立即删除)
// 标记后 IsAlive 立即返回 false，组件数据保留到 RemoveMarkedEntities
func (em *EntityManager) DestroyEntity(id EntityID) {
	if !em.IsAlive(id) {
		return
	}
	delete(em.alive, id)
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// DestroyEntityRecursive 标记实体及其所有子实体待删除
func (em *EntityManager) DestroyEntityRecursive(id EntityID) {
	for _, child := range em.children[id] {
		em.DestroyEntityRecursive(child)
	}
	em.DestroyEntity(id)
}

// RemoveMarkedEntities 清理所有标记删除的实体
// 每个 tick 结束时调用一次
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		for _, s := range em.stores {
			s.Remove(id)
		}
		delete(em.children, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
}

// PendingCount 返回等待清理的实体数量
func (em *EntityManager) PendingCount() int {
	return len(em.entitiesToDestroy)
}

// EntityCount 返回存活实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.alive)
}

// Entities 返回所有存活实体，按ID升序
func (em *EntityManager) Entities() []EntityID {
	result := make([]EntityID, 0, len(em.alive))
	for id := range em.alive {
		result = append(result, id)
	}
	sortIDs(result)
	return result
}

// Reset 删除所有实体并清空所有组件表，ID 继续递增不会复用
func (em *EntityManager) Reset() {
	em.alive = make(map[EntityID]struct{})
	em.children = make(map[EntityID][]EntityID)
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
	for _, s := range em.stores {
		s.Clear()
	}
}

func sortIDs(ids []EntityID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
