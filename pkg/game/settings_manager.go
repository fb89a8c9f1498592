package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/heroparticles/pkg/field"
	"github.com/decker502/heroparticles/pkg/utils"
)

// FieldSettings 在粒子查看器中调好的粒子场参数
// 覆盖配置文件中的对应字段
type FieldSettings struct {
	Quantity  int     `yaml:"quantity"`
	Staticity float64 `yaml:"staticity"`
	Color     string  `yaml:"color"` // 十六进制颜色
	Seed      int64   `yaml:"seed"`  // 0 表示每次启动随机
}

// FieldSettingsFrom 从粒子场配置提取可调参数
func FieldSettingsFrom(cfg field.Config) FieldSettings {
	return FieldSettings{
		Quantity:  cfg.Quantity,
		Staticity: cfg.Staticity,
		Color:     utils.HexString(cfg.Color),
		Seed:      cfg.Seed,
	}
}

// Apply 将设置覆盖到 cfg 上；无效颜色保留 cfg 原值
func (s FieldSettings) Apply(cfg field.Config) field.Config {
	cfg.Quantity = s.Quantity
	if s.Staticity != 0 {
		cfg.Staticity = s.Staticity
	}
	if s.Color != "" {
		cfg.Color = utils.ParseHexColor(s.Color, cfg.Color)
	}
	cfg.Seed = s.Seed
	return cfg.Normalize()
}

// AppSettings 持久化的全部设置
// 注意：这些设置是全局的，不绑定到特定用户
type AppSettings struct {
	// Field 为 nil 表示未保存过调参结果，使用配置文件
	Field *FieldSettings `yaml:"field,omitempty"`

	// 显示设置
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏
}

// DefaultSettings 返回默认设置
func DefaultSettings() *AppSettings {
	return &AppSettings{}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *AppSettings   // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 加载失败不是致命错误，使用默认设置
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}
	return sm
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded AppSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	log.Printf("[SettingsManager] Settings loaded (field tuned: %v)", loaded.Field != nil)
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved")
	return nil
}

// Persistent 报告设置能否写入磁盘
func (sm *SettingsManager) Persistent() bool {
	return sm.gdataManager != nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *AppSettings {
	return sm.settings
}

// SetField 记录调好的粒子场参数（仅内存，需调用 Save 持久化）
func (sm *SettingsManager) SetField(fs FieldSettings) {
	sm.settings.Field = &fs
}

// ResetField 丢弃调参结果，恢复使用配置文件
func (sm *SettingsManager) ResetField() {
	sm.settings.Field = nil
}

// SetFullscreen 设置全屏模式（仅内存，需调用 Save 持久化）
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// ApplyField 在 base 上叠加已保存的粒子场参数
func (sm *SettingsManager) ApplyField(base field.Config) field.Config {
	if sm.settings.Field == nil {
		return base
	}
	return sm.settings.Field.Apply(base)
}
