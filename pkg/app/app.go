// Package app 提供英雄页应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/heroparticles/pkg/config"
	"github.com/decker502/heroparticles/pkg/embedded"
	"github.com/decker502/heroparticles/pkg/field"
	"github.com/decker502/heroparticles/pkg/game"
	"github.com/decker502/heroparticles/pkg/scenes"
	"github.com/decker502/heroparticles/pkg/utils"
)

// AppName gdata 存储目录名
const AppName = "heroparticles"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 英雄页配置文件路径，为空则使用嵌入的 data/hero.yaml
	ConfigPath string
	// Seed 覆盖粒子随机种子（0 表示不覆盖）
	Seed int64
	// Lookup 读取环境变量，为 nil 时使用 os.LookupEnv
	Lookup func(string) (string, bool)
	// NoStorage 禁用 gdata 持久化（测试和只读环境）
	NoStorage bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	heroConfig   *config.HeroConfig
	hero         *scenes.HeroScene
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	heroCfg, err := LoadHeroConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("load hero config: %w", err)
	}

	// 配置加载成功后才静音日志，启动失败时调用方仍能输出错误
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	var gm *gdata.Manager
	if !cfg.NoStorage {
		// Android 上需要先创建存储目录
		if err := utils.EnsureStorageDir(); err != nil {
			log.Printf("[App] 警告：%v", err)
		}
		gm, err = gdata.Open(gdata.Config{AppName: AppName})
		if err != nil {
			log.Printf("[App] 警告：存储不可用，设置不会保存: %v", err)
			gm = nil
		}
	}
	settings := game.NewSettingsManager(gm)

	fieldCfg := BuildFieldConfig(heroCfg, settings, cfg.Seed)
	log.Printf("[App] field: quantity=%d staticity=%.1f seed=%d", fieldCfg.Quantity, fieldCfg.Staticity, fieldCfg.Seed)

	hero := scenes.NewHeroScene(heroCfg, fieldCfg, heroCfg.Window.Width, heroCfg.Window.Height)

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(hero)

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		heroConfig:   heroCfg,
		hero:         hero,
		verbose:      cfg.Verbose,
	}, nil
}

// LoadHeroConfig 加载配置文件（或嵌入配置）并叠加环境变量
func LoadHeroConfig(cfg Config) (*config.HeroConfig, error) {
	var (
		heroCfg *config.HeroConfig
		err     error
	)
	if cfg.ConfigPath != "" {
		heroCfg, err = config.LoadHeroConfig(cfg.ConfigPath)
	} else {
		var data []byte
		data, err = embedded.ReadFile(config.DefaultHeroConfigPath)
		if err != nil {
			return nil, fmt.Errorf("嵌入配置读取失败: %w", err)
		}
		heroCfg, err = config.ParseHeroConfig(data, "embedded:"+config.DefaultHeroConfigPath)
	}
	if err != nil {
		return nil, err
	}

	lookup := cfg.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := heroCfg.ApplyEnv(lookup); err != nil {
		return nil, fmt.Errorf("环境变量无效: %w", err)
	}
	return heroCfg, nil
}

// BuildFieldConfig 合并配置文件、已保存设置和命令行种子
// 优先级：命令行 > 已保存设置 > 环境变量/配置文件
func BuildFieldConfig(heroCfg *config.HeroConfig, settings *game.SettingsManager, seed int64) field.Config {
	fc := heroCfg.ToFieldConfig()
	if settings != nil {
		fc = settings.ApplyField(fc)
	}
	if seed != 0 {
		fc.Seed = seed
	}
	return fc.Normalize()
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.heroConfig.Window.Width, a.heroConfig.Window.Height
			ebiten.SetWindowSize(w, h)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	wasFullscreen := ebiten.IsFullscreen()
	if wasFullscreen {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settings.SetFullscreen(!wasFullscreen)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] 警告：保存全屏设置失败: %v", err)
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 逻辑尺寸跟随窗口，粒子场随容器重新测量
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return a.heroConfig.Window.Width, a.heroConfig.Window.Height
	}
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// GetSettingsManager 返回设置管理器
func (a *App) GetSettingsManager() *game.SettingsManager {
	return a.settings
}

// HeroConfig 返回生效的英雄页配置
func (a *App) HeroConfig() *config.HeroConfig {
	return a.heroConfig
}

// Hero 返回英雄场景
func (a *App) Hero() *scenes.HeroScene {
	return a.hero
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// Close 关闭当前场景，释放粒子场
func (a *App) Close() {
	a.sceneManager.Close()
}
