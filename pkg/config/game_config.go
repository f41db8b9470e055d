package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/invaders/pkg/embedded"
	"github.com/decker502/invaders/pkg/types"
)

// DefaultGameConfigPath 内置玩法参数文件（嵌入资源路径）
const DefaultGameConfigPath = "data/game.yaml"

// Size 宽高
type Size struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Half 返回半宽半高
func (s Size) Half() Size {
	return Size{X: s.X / 2, Y: s.Y / 2}
}

// GameConfig 游戏玩法参数
//
// 配置文件位置: data/game.yaml（编译时嵌入）
type GameConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Player   PlayerConfig   `yaml:"player"`
	Aliens   AliensConfig   `yaml:"aliens"`
	Ufo      UfoConfig      `yaml:"ufo"`
	Laser    LaserConfig    `yaml:"laser"`
	Shelters SheltersConfig `yaml:"shelters"`
	Floor    FloorConfig    `yaml:"floor"`
	Lives    LivesConfig    `yaml:"lives"`
	Timing   TimingConfig   `yaml:"timing"`
}

// WindowConfig 窗口参数
// 宽度由外星人编队推导（见 GameConfig.Width），这里只配置高度
type WindowConfig struct {
	Height float64 `yaml:"height"`
}

// PlayerConfig 玩家飞船参数
type PlayerConfig struct {
	Size       Size    `yaml:"size"`
	Speed      float64 `yaml:"speed"`
	LaserSpeed float64 `yaml:"laserSpeed"`
}

// AlienRow 一组同类型的外星人行
type AlienRow struct {
	Type  string `yaml:"type"`
	Lines int    `yaml:"lines"`
}

// AliensConfig 外星人编队参数
type AliensConfig struct {
	PerLine          int        `yaml:"perLine"`
	Rows             []AlienRow `yaml:"rows"`
	Size             Size       `yaml:"size"`
	Spacing          Size       `yaml:"spacing"`
	Margin           float64    `yaml:"margin"`
	TickDuration     float64    `yaml:"tickDuration"`
	EdgeSpeedUp      float64    `yaml:"edgeSpeedUp"`      // 碰边时步进周期除以该值
	KillSpeedUp      float64    `yaml:"killSpeedUp"`      // 击杀时步进周期乘以该值
	KillSpeedUpBelow int        `yaml:"killSpeedUpBelow"` // 剩余数量低于该值才触发击杀加速
	ShootProbability float64    `yaml:"shootProbability"` // 每个外星人每 tick 开火概率
	LaserSpeed       float64    `yaml:"laserSpeed"`
	MaxLasers        int        `yaml:"maxLasers"`
}

// UfoConfig 神秘飞船参数
type UfoConfig struct {
	Size             Size    `yaml:"size"`
	Speed            float64 `yaml:"speed"`
	SpawnInterval    float64 `yaml:"spawnInterval"`
	SpawnProbability float64 `yaml:"spawnProbability"`
	DespawnMargin    float64 `yaml:"despawnMargin"`
}

// LaserConfig 激光参数
type LaserConfig struct {
	Size Size `yaml:"size"`
}

// SheltersConfig 掩体参数
type SheltersConfig struct {
	Count      int     `yaml:"count"`
	Size       Size    `yaml:"size"`
	Armor      int     `yaml:"armor"`
	Damage     int     `yaml:"damage"`
	TextOffset float64 `yaml:"textOffset"`
}

// FloorConfig 地面参数
type FloorConfig struct {
	Height    float64 `yaml:"height"`
	Thickness float64 `yaml:"thickness"`
}

// LivesConfig 生命数参数
type LivesConfig struct {
	Initial int `yaml:"initial"`
	Max     int `yaml:"max"`
}

// TimingConfig 各类计时参数（秒）
type TimingConfig struct {
	Transition         float64 `yaml:"transition"`
	Explosion          float64 `yaml:"explosion"`
	ExplosionMinRadius float64 `yaml:"explosionMinRadius"`
	ExplosionMaxRadius float64 `yaml:"explosionMaxRadius"`
	XpGain             float64 `yaml:"xpGain"`
	TickRate           int     `yaml:"tickRate"`
}

// Width 窗口宽度：两侧边距 + 一行外星人 + 间隔
func (c *GameConfig) Width() float64 {
	n := float64(c.Aliens.PerLine)
	return 2*c.Aliens.Margin + n*c.Aliens.Size.X + (n-1)*c.Aliens.Spacing.X
}

// Height 窗口高度
func (c *GameConfig) Height() float64 {
	return c.Window.Height
}

// TickDelta 固定步长（秒）
func (c *GameConfig) TickDelta() float64 {
	return 1.0 / float64(c.Timing.TickRate)
}

// AlienCount 一整波外星人数量（不含 UFO）
func (c *GameConfig) AlienCount() int {
	lines := 0
	for _, r := range c.Aliens.Rows {
		lines += r.Lines
	}
	return lines * c.Aliens.PerLine
}

// ParseAlienType 解析配置中的外星人类型名
func ParseAlienType(name string) (types.AlienType, error) {
	switch name {
	case "yellow":
		return types.AlienYellow, nil
	case "green":
		return types.AlienGreen, nil
	case "red":
		return types.AlienRed, nil
	}
	return 0, fmt.Errorf("unknown alien type %q", name)
}

// ParseGameConfig 解析 YAML 格式的玩法参数
func ParseGameConfig(data []byte) (*GameConfig, error) {
	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return &cfg, nil
}

// LoadGameConfig 从文件系统加载玩法参数（工具和测试使用）
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// LoadEmbeddedGameConfig 从嵌入资源加载内置玩法参数
// 调用前必须先 embedded.Init()
func LoadEmbeddedGameConfig() (*GameConfig, error) {
	data, err := embedded.ReadFile(DefaultGameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded game config: %w", err)
	}
	return ParseGameConfig(data)
}

// Validate 验证配置有效性
//
// 返回:
//   - error: 所有不合法字段合并后的错误，全部合法时返回 nil
func (c *GameConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("window.height", c.Window.Height)
	positive("player.size.x", c.Player.Size.X)
	positive("player.size.y", c.Player.Size.Y)
	positive("player.speed", c.Player.Speed)
	positive("player.laserSpeed", c.Player.LaserSpeed)
	positive("aliens.size.x", c.Aliens.Size.X)
	positive("aliens.size.y", c.Aliens.Size.Y)
	positive("aliens.tickDuration", c.Aliens.TickDuration)
	positive("aliens.laserSpeed", c.Aliens.LaserSpeed)
	positive("ufo.speed", c.Ufo.Speed)
	positive("ufo.spawnInterval", c.Ufo.SpawnInterval)
	positive("laser.size.x", c.Laser.Size.X)
	positive("laser.size.y", c.Laser.Size.Y)
	positive("shelters.size.x", c.Shelters.Size.X)
	positive("floor.height", c.Floor.Height)
	positive("timing.transition", c.Timing.Transition)
	positive("timing.explosion", c.Timing.Explosion)
	positive("timing.xpGain", c.Timing.XpGain)

	if c.Aliens.PerLine <= 0 {
		errs = append(errs, fmt.Errorf("aliens.perLine must be positive, got %d", c.Aliens.PerLine))
	}
	if len(c.Aliens.Rows) == 0 {
		errs = append(errs, errors.New("aliens.rows must not be empty"))
	}
	for i, r := range c.Aliens.Rows {
		if _, err := ParseAlienType(r.Type); err != nil {
			errs = append(errs, fmt.Errorf("aliens.rows[%d]: %w", i, err))
		}
		if r.Lines <= 0 {
			errs = append(errs, fmt.Errorf("aliens.rows[%d].lines must be positive, got %d", i, r.Lines))
		}
	}
	if c.Aliens.EdgeSpeedUp <= 1 {
		errs = append(errs, fmt.Errorf("aliens.edgeSpeedUp must be > 1, got %v", c.Aliens.EdgeSpeedUp))
	}
	if c.Aliens.KillSpeedUp <= 0 || c.Aliens.KillSpeedUp >= 1 {
		errs = append(errs, fmt.Errorf("aliens.killSpeedUp must be in (0, 1), got %v", c.Aliens.KillSpeedUp))
	}
	if c.Aliens.ShootProbability < 0 || c.Aliens.ShootProbability > 1 {
		errs = append(errs, fmt.Errorf("aliens.shootProbability must be in [0, 1], got %v", c.Aliens.ShootProbability))
	}
	if c.Ufo.SpawnProbability < 0 || c.Ufo.SpawnProbability > 1 {
		errs = append(errs, fmt.Errorf("ufo.spawnProbability must be in [0, 1], got %v", c.Ufo.SpawnProbability))
	}
	if c.Aliens.MaxLasers < 0 {
		errs = append(errs, fmt.Errorf("aliens.maxLasers must not be negative, got %d", c.Aliens.MaxLasers))
	}
	if c.Shelters.Count < 0 || c.Shelters.Armor <= 0 || c.Shelters.Damage <= 0 {
		errs = append(errs, fmt.Errorf("shelters: count=%d armor=%d damage=%d out of range",
			c.Shelters.Count, c.Shelters.Armor, c.Shelters.Damage))
	}
	if c.Lives.Initial <= 0 || c.Lives.Max < c.Lives.Initial {
		errs = append(errs, fmt.Errorf("lives: initial=%d max=%d out of range", c.Lives.Initial, c.Lives.Max))
	}
	if c.Timing.ExplosionMaxRadius < c.Timing.ExplosionMinRadius {
		errs = append(errs, fmt.Errorf("timing: explosionMaxRadius(%v) < explosionMinRadius(%v)",
			c.Timing.ExplosionMaxRadius, c.Timing.ExplosionMinRadius))
	}
	if c.Timing.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("timing.tickRate must be positive, got %d", c.Timing.TickRate))
	}

	return errors.Join(errs...)
}
