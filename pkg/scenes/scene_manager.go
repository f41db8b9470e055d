package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// SceneFactory 按ID创建场景，避免场景之间互相引用
type SceneFactory func(id SceneID) Scene

// SceneManager 持有当前场景并转发 Update/Draw
type SceneManager struct {
	currentScene Scene
	currentID    SceneID
	sceneFactory SceneFactory
	logger       *zap.Logger
}

// NewSceneManager 创建场景管理器，初始没有场景
func NewSceneManager(logger *zap.Logger) *SceneManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SceneManager{logger: logger.Named("scenes")}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 直接切换到给定场景
func (sm *SceneManager) SwitchTo(id SceneID, scene Scene) {
	sm.currentScene = scene
	sm.currentID = id
}

// Load 用工厂创建并切换到指定场景
func (sm *SceneManager) Load(id SceneID) {
	if sm.sceneFactory == nil {
		sm.logger.Error("scene factory not set", zap.Stringer("scene", id))
		return
	}

	scene := sm.sceneFactory(id)
	if scene == nil {
		sm.logger.Error("failed to create scene", zap.Stringer("scene", id))
		return
	}
	sm.SwitchTo(id, scene)
	sm.logger.Info("switched scene", zap.Stringer("scene", id))
}

// Current 当前场景，没有时返回 nil
func (sm *SceneManager) Current() Scene {
	return sm.currentScene
}

// CurrentID 当前场景ID
func (sm *SceneManager) CurrentID() SceneID {
	return sm.currentID
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
