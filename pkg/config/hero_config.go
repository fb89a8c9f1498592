package config

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/decker502/heroparticles/pkg/effects"
	"github.com/decker502/heroparticles/pkg/field"
	"github.com/decker502/heroparticles/pkg/utils"
)

// DefaultHeroConfigPath 内置英雄页配置路径（embedded data/）
const DefaultHeroConfigPath = "data/hero.yaml"

// 环境变量覆盖
const (
	EnvQuantity  = "HERO_QUANTITY"
	EnvStaticity = "HERO_STATICITY"
	EnvColor     = "HERO_COLOR"
	EnvSeed      = "HERO_SEED"
)

// HeroConfig 英雄页配置
// 从 YAML 加载，描述窗口、粒子场和装饰动画
type HeroConfig struct {
	Window     WindowConfig   `yaml:"window"`
	Background string         `yaml:"background"` // 背景色（十六进制）
	Particles  ParticleConfig `yaml:"particles"`
	Headline   HeadlineConfig `yaml:"headline"`
	Button     ButtonConfig   `yaml:"button"`
	Card       CardConfig     `yaml:"card"`
}

// WindowConfig 窗口尺寸与标题
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// ParticleConfig 粒子场配置，对应 field.Config
//
// Quantity 使用指针区分"未配置"与显式的 0（0 表示不绘制任何粒子）
type ParticleConfig struct {
	Quantity      *int    `yaml:"quantity"`
	Staticity     float64 `yaml:"staticity"`
	Color         string  `yaml:"color"`
	Size          string  `yaml:"size"`      // "[min max]" 半径（像素）
	Alpha         string  `yaml:"alpha"`     // "[min max]" 目标不透明度
	Speed         string  `yaml:"speed"`     // "[min max]" 像素/秒
	Magnetism     string  `yaml:"magnetism"` // "[min max]" 指针响应倍数
	Twinkle       string  `yaml:"twinkle"`   // 可选关键帧 "0,1 0.5,0.4 1,1"
	TwinklePeriod float64 `yaml:"twinklePeriod"`
	EdgeFade      float64 `yaml:"edgeFade"`
	FadeIn        float64 `yaml:"fadeIn"`
	Ease          float64 `yaml:"ease"`
	Damping       float64 `yaml:"damping"`
	Seed          int64   `yaml:"seed"`
}

// HeadlineConfig 标题文字与模糊淡入参数
type HeadlineConfig struct {
	Title    string  `yaml:"title"`
	Subtitle string  `yaml:"subtitle"`
	Tagline  string  `yaml:"tagline"`
	Delay    float64 `yaml:"delay"` // 第一行的延迟，后续行依次 +Stagger
	Stagger  float64 `yaml:"stagger"`
	Duration float64 `yaml:"duration"`
	YOffset  float64 `yaml:"yOffset"`
	Blur     float64 `yaml:"blur"`
	Easing   string  `yaml:"easing"`
}

// ButtonConfig 闪光按钮
type ButtonConfig struct {
	Label         string  `yaml:"label"`
	Background    string  `yaml:"background"`
	ShimmerColor  string  `yaml:"shimmerColor"`
	ShimmerPeriod float64 `yaml:"shimmerPeriod"`
	Delay         float64 `yaml:"delay"`
}

// CardConfig 带边框光束的卡片
type CardConfig struct {
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Beam        BeamConfig `yaml:"beam"`
}

// BeamConfig 边框光束
type BeamConfig struct {
	Size      float64 `yaml:"size"`
	Duration  float64 `yaml:"duration"`
	Delay     float64 `yaml:"delay"`
	ColorFrom string  `yaml:"colorFrom"`
	ColorTo   string  `yaml:"colorTo"`
}

// LoadHeroConfig 从文件加载英雄页配置
func LoadHeroConfig(path string) (*HeroConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hero config file %s: %w", path, err)
	}
	return ParseHeroConfig(data, path)
}

// ParseHeroConfig 解析 YAML 数据，source 仅用于错误信息
func ParseHeroConfig(data []byte, source string) (*HeroConfig, error) {
	var cfg HeroConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse hero config YAML from %s: %w", source, err)
	}

	applyHeroDefaults(&cfg)

	if err := validateHeroConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid hero config in %s: %w", source, err)
	}
	return &cfg, nil
}

// DefaultHeroConfig 返回全部使用默认值的配置
func DefaultHeroConfig() *HeroConfig {
	cfg := &HeroConfig{}
	applyHeroDefaults(cfg)
	return cfg
}

// applyHeroDefaults 为缺失的可选字段设置默认值
func applyHeroDefaults(cfg *HeroConfig) {
	if cfg.Window.Width == 0 {
		cfg.Window.Width = 1280
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = 720
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = "SchoolGuard"
	}
	if cfg.Background == "" {
		cfg.Background = "#fdf2f8"
	}

	p := &cfg.Particles
	if p.Quantity == nil {
		q := field.DefaultQuantity
		p.Quantity = &q
	}
	if p.Staticity == 0 {
		p.Staticity = field.DefaultStaticity
	}
	if p.Color == "" {
		p.Color = "#ec4899"
	}
	if p.Size == "" {
		p.Size = field.DefaultSize
	}
	if p.Alpha == "" {
		p.Alpha = field.DefaultAlpha
	}
	if p.Speed == "" {
		p.Speed = field.DefaultSpeed
	}
	if p.Magnetism == "" {
		p.Magnetism = field.DefaultMagnetism
	}

	h := &cfg.Headline
	if h.Title == "" {
		h.Title = "SchoolGuard"
	}
	if h.Delay == 0 {
		h.Delay = 0.1
	}
	if h.Stagger == 0 {
		h.Stagger = 0.1
	}
	if h.Duration == 0 {
		h.Duration = effects.DefaultBlurFadeDuration
	}
	if h.YOffset == 0 {
		h.YOffset = effects.DefaultBlurFadeYOffset
	}
	if h.Blur == 0 {
		h.Blur = effects.DefaultBlurFadeBlur
	}
	if h.Easing == "" {
		h.Easing = "easeOut"
	}

	b := &cfg.Button
	if b.Label == "" {
		b.Label = "Get started"
	}
	if b.Background == "" {
		b.Background = "#06c755"
	}
	if b.ShimmerColor == "" {
		b.ShimmerColor = "#ffffff"
	}
	if b.ShimmerPeriod == 0 {
		b.ShimmerPeriod = effects.DefaultShimmerPeriod
	}
	if b.Delay == 0 {
		b.Delay = 0.5
	}

	beam := &cfg.Card.Beam
	if beam.Size == 0 {
		beam.Size = effects.DefaultBeamSize
	}
	if beam.Duration == 0 {
		beam.Duration = effects.DefaultBeamDuration
	}
	if beam.ColorFrom == "" {
		beam.ColorFrom = effects.DefaultBeamColorFrom
	}
	if beam.ColorTo == "" {
		beam.ColorTo = effects.DefaultBeamColorTo
	}
}

// validateHeroConfig 验证配置
// 窗口尺寸和时长错误是致命的；颜色错误在转换时回退到默认值
func validateHeroConfig(cfg *HeroConfig) error {
	if cfg.Window.Width < 0 || cfg.Window.Height < 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Particles.TwinklePeriod < 0 {
		return fmt.Errorf("particles.twinklePeriod cannot be negative")
	}
	if cfg.Headline.Duration < 0 || cfg.Headline.Delay < 0 || cfg.Headline.Stagger < 0 {
		return fmt.Errorf("headline timing cannot be negative")
	}
	if _, ok := utils.EasingByName(cfg.Headline.Easing); !ok {
		return fmt.Errorf("headline.easing: unknown easing %q", cfg.Headline.Easing)
	}
	if cfg.Button.ShimmerPeriod < 0 {
		return fmt.Errorf("button.shimmerPeriod cannot be negative")
	}
	if cfg.Card.Beam.Duration < 0 || cfg.Card.Beam.Size < 0 {
		return fmt.Errorf("card.beam size and duration cannot be negative")
	}

	for name, c := range map[string]string{
		"background":          cfg.Background,
		"particles.color":     cfg.Particles.Color,
		"button.background":   cfg.Button.Background,
		"button.shimmerColor": cfg.Button.ShimmerColor,
		"card.beam.colorFrom": cfg.Card.Beam.ColorFrom,
		"card.beam.colorTo":   cfg.Card.Beam.ColorTo,
	} {
		if !utils.ValidHexColor(c) {
			log.Printf("[Config] 警告：%s 颜色无效 %q，将使用默认值", name, c)
		}
	}
	return nil
}

// ApplyEnv 应用环境变量覆盖（HERO_QUANTITY 等）
// lookup 通常为 os.LookupEnv；测试时可注入
func (c *HeroConfig) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvQuantity); ok && strings.TrimSpace(v) != "" {
		q, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvQuantity, err)
		}
		c.Particles.Quantity = &q
	}
	if v, ok := lookup(EnvStaticity); ok && strings.TrimSpace(v) != "" {
		s, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvStaticity, err)
		}
		c.Particles.Staticity = s
	}
	if v, ok := lookup(EnvColor); ok && strings.TrimSpace(v) != "" {
		c.Particles.Color = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvSeed); ok && strings.TrimSpace(v) != "" {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Particles.Seed = seed
	}
	return nil
}

// ToFieldConfig 转换为粒子场配置
func (c *HeroConfig) ToFieldConfig() field.Config {
	p := c.Particles
	quantity := field.DefaultQuantity
	if p.Quantity != nil {
		quantity = *p.Quantity
	}
	return field.Config{
		Quantity:      quantity,
		Staticity:     p.Staticity,
		Color:         utils.ParseHexColor(p.Color, field.DefaultColor),
		Size:          p.Size,
		Alpha:         p.Alpha,
		Speed:         p.Speed,
		Magnetism:     p.Magnetism,
		Twinkle:       p.Twinkle,
		TwinklePeriod: p.TwinklePeriod,
		EdgeFade:      p.EdgeFade,
		FadeIn:        p.FadeIn,
		Ease:          p.Ease,
		Damping:       p.Damping,
		Seed:          p.Seed,
	}
}

// BackgroundColor 背景色
func (c *HeroConfig) BackgroundColor() color.NRGBA {
	return utils.ParseHexColor(c.Background, color.NRGBA{R: 0xfd, G: 0xf2, B: 0xf8, A: 0xff})
}

// HeadlineFades 为标题、副标题、标语和按钮依次创建模糊淡入
func (c *HeroConfig) HeadlineFades() []*effects.BlurFade {
	h := c.Headline
	ease, ok := utils.EasingByName(h.Easing)
	if !ok {
		ease = utils.EaseOut
	}
	fades := make([]*effects.BlurFade, 0, 4)
	for i := 0; i < 3; i++ {
		f := effects.NewBlurFade(h.Delay + float64(i)*h.Stagger)
		f.Duration = h.Duration
		f.YOffset = h.YOffset
		f.Blur = h.Blur
		f.Ease = ease
		fades = append(fades, f)
	}
	btn := effects.NewBlurFade(c.Button.Delay)
	btn.Duration = h.Duration
	btn.YOffset = h.YOffset
	btn.Blur = h.Blur
	btn.Ease = ease
	return append(fades, btn)
}

// Shimmer 按钮闪光
func (c *HeroConfig) Shimmer() effects.Shimmer {
	s := effects.NewShimmer()
	s.Period = c.Button.ShimmerPeriod
	return s
}

// BorderBeam 卡片边框光束
func (c *HeroConfig) BorderBeam() effects.BorderBeam {
	b := effects.NewBorderBeam()
	beam := c.Card.Beam
	b.Size = beam.Size
	b.Duration = beam.Duration
	b.Delay = beam.Delay
	b.ColorFrom = utils.ParseHexColor(beam.ColorFrom, b.ColorFrom)
	b.ColorTo = utils.ParseHexColor(beam.ColorTo, b.ColorTo)
	return b
}
