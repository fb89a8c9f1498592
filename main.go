// Package main 英雄页桌面端入口
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose          输出详细日志
//	--config <path>    使用外部配置文件（默认使用嵌入的 data/hero.yaml）
//	--seed <n>         固定粒子随机种子
//
// 环境变量（可写在 .env 中）：HERO_QUANTITY, HERO_STATICITY, HERO_COLOR, HERO_SEED
//
// Controls:
//
//	F11 - 切换全屏
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/decker502/heroparticles/pkg/app"
	"github.com/decker502/heroparticles/pkg/embedded"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	configFlag  = flag.String("config", "", "Path to hero config (default: embedded data/hero.yaml)")
	seedFlag    = flag.Int64("seed", 0, "Fix the particle random seed (0 = from config)")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		// NewApp 可能已经把 log 静音，错误直接写到 stderr
		fmt.Fprintf(os.Stderr, "heroparticles: %v\n", err)
		os.Exit(1)
	}
}

// run 初始化并运行应用；返回前总会关闭应用
func run() error {
	// .env 可选，不存在时忽略
	if err := godotenv.Load(); err != nil && *verboseFlag {
		log.Printf("[Main] .env not loaded: %v", err)
	}

	// 初始化嵌入资源
	embedded.Init(dataFS)

	heroApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		Seed:       *seedFlag,
	})
	if err != nil {
		return fmt.Errorf("初始化失败: %w", err)
	}
	defer heroApp.Close()

	w := heroApp.HeroConfig().Window
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if heroApp.GetSettingsManager().GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return ebiten.RunGame(heroApp)
}
