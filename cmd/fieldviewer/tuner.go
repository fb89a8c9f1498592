package main

import (
	"fmt"

	"github.com/decker502/heroparticles/pkg/field"
	"github.com/decker502/heroparticles/pkg/game"
	"github.com/decker502/heroparticles/pkg/utils"
)

// 调参步长
const (
	quantityStep  = 10
	staticityStep = 5.0
)

// palette 可循环切换的粒子颜色
var palette = []string{"#ec4899", "#a855f7", "#3b82f6", "#10b981", "#f59e0b", "#ffffff"}

// tuner 保存查看器中正在调整的粒子场参数
type tuner struct {
	cfg          field.Config
	paletteIndex int
}

func newTuner(cfg field.Config) *tuner {
	t := &tuner{cfg: cfg.Normalize(), paletteIndex: -1}
	hex := utils.HexString(t.cfg.Color)
	for i, c := range palette {
		if c == hex {
			t.paletteIndex = i
			break
		}
	}
	return t
}

// adjustQuantity 增减粒子数量，返回调整后的配置
func (t *tuner) adjustQuantity(steps int) field.Config {
	t.cfg.Quantity += steps * quantityStep
	t.cfg = t.cfg.Normalize()
	return t.cfg
}

// adjustStaticity 增减静态度（越大对指针反应越弱）
func (t *tuner) adjustStaticity(steps int) field.Config {
	t.cfg.Staticity += float64(steps) * staticityStep
	// 0 在 Normalize 中表示“未配置”，这里先钳到下限
	if t.cfg.Staticity < field.MinStaticity {
		t.cfg.Staticity = field.MinStaticity
	}
	t.cfg = t.cfg.Normalize()
	return t.cfg
}

// nextColor 切换到调色板中的下一个颜色
func (t *tuner) nextColor() field.Config {
	t.paletteIndex = (t.paletteIndex + 1) % len(palette)
	t.cfg.Color = utils.ParseHexColor(palette[t.paletteIndex], t.cfg.Color)
	return t.cfg
}

func (t *tuner) setSeed(seed int64) {
	t.cfg.Seed = seed
}

func (t *tuner) reset(cfg field.Config) {
	*t = *newTuner(cfg)
}

func (t *tuner) settings() game.FieldSettings {
	return game.FieldSettingsFrom(t.cfg)
}

func (t *tuner) String() string {
	return fmt.Sprintf("quantity=%d staticity=%.0f color=%s seed=%d",
		t.cfg.Quantity, t.cfg.Staticity, utils.HexString(t.cfg.Color), t.cfg.Seed)
}
