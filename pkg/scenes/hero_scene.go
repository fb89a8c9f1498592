package scenes

import (
	"log"

	"github.com/decker502/heroparticles/pkg/config"
	"github.com/decker502/heroparticles/pkg/effects"
	"github.com/decker502/heroparticles/pkg/field"
	"github.com/decker502/heroparticles/pkg/frame"
	"github.com/decker502/heroparticles/pkg/game"
	"github.com/decker502/heroparticles/pkg/render"
	"github.com/decker502/heroparticles/pkg/utils"
)

// 固定帧时长，与 App 的 deltaTime 一致
const heroFrameDT = 1.0 / 60.0

// 按钮缩放弹簧的角频率
const buttonSpringFrequency = 12.0

// HeroScene 英雄横幅场景
//
// 组成：
//   - 背景粒子场（field.Animator 挂载到 EbitenSurface）
//   - 标题、副标题、标语的模糊淡入
//   - 带闪光的 CTA 按钮
//   - 带边框光束的卡片
type HeroScene struct {
	cfg *config.HeroConfig

	width, height int
	elapsed       float64

	loop     *frame.Loop
	animator *field.Animator
	surface  *render.EbitenSurface

	fades   []*effects.BlurFade
	shimmer effects.Shimmer
	scale   *effects.ScaleSpring
	beam    effects.BorderBeam
	layout  heroLayout

	// 指针采样，测试中可替换
	pointer func() utils.PointerState

	hovered bool
	pressed bool
	clicks  int
	onClick func()

	fonts *heroFonts
}

// NewHeroScene 创建英雄场景
//
// fieldCfg 是叠加过环境变量和已保存设置之后的粒子场配置。
// 场景创建后粒子场即挂载，第一次 Update 时按容器尺寸播种。
func NewHeroScene(cfg *config.HeroConfig, fieldCfg field.Config, width, height int) *HeroScene {
	s := &HeroScene{
		cfg:     cfg,
		loop:    frame.NewLoop(),
		fades:   cfg.HeadlineFades(),
		shimmer: cfg.Shimmer(),
		scale:   effects.NewScaleSpring(heroFrameDT, buttonSpringFrequency),
		beam:    cfg.BorderBeam(),
		pointer: utils.GetPointerState,
	}
	s.animator = field.New(fieldCfg)
	s.surface = render.NewEbitenSurface(0, 0)
	s.animator.Mount(s.loop, s.surface)
	s.Resize(width, height)

	log.Printf("[HeroScene] created %dx%d, %d particles", width, height, s.animator.Config().Quantity)
	return s
}

// SetPointerSource 替换指针采样函数
func (s *HeroScene) SetPointerSource(fn func() utils.PointerState) {
	if fn != nil {
		s.pointer = fn
	}
}

// OnClick 设置 CTA 按钮点击回调
func (s *HeroScene) OnClick(fn func()) {
	s.onClick = fn
}

// Animator 返回背景粒子场
func (s *HeroScene) Animator() *field.Animator {
	return s.animator
}

// Clicks 返回按钮被点击的次数
func (s *HeroScene) Clicks() int {
	return s.clicks
}

// Resize 实现 game.Resizable
// 容器尺寸变化后，粒子场在下一帧重新测量
func (s *HeroScene) Resize(width, height int) {
	s.width, s.height = width, height
	s.surface.SetSize(float64(width), float64(height))
	s.layout = computeHeroLayout(float64(width), float64(height))
}

// Update 推进一帧
func (s *HeroScene) Update(deltaTime float64) {
	s.elapsed += deltaTime

	ps := s.pointer()
	s.loop.Step(frame.Frame{DT: deltaTime, Pointer: ps.ToFramePointer(s.width, s.height)})

	for i, f := range s.fades {
		r := s.layout.fadeRect(i)
		if f.Observe(effects.VisibleFraction(r.Y, r.Y+r.H, 0, float64(s.height)), s.elapsed) {
			log.Printf("[HeroScene] 元素 %d 开始淡入", i)
		}
	}

	b := s.layout.button
	s.hovered = ps.In(b.X, b.Y, b.W, b.H) && s.buttonVisible()
	s.pressed = s.hovered && ps.Pressed
	if s.hovered && ps.JustPressed {
		s.clicks++
		log.Printf("[HeroScene] 点击按钮: %s", s.cfg.Button.Label)
		if s.onClick != nil {
			s.onClick()
		}
	}
	s.scale.Update(s.hovered, s.pressed)
}

// buttonVisible 按钮淡入开始后才响应指针
func (s *HeroScene) buttonVisible() bool {
	if len(s.fades) < 4 {
		return true
	}
	return s.fades[3].State(s.elapsed).Opacity > 0
}

// Close 实现 game.Closer：取消帧回调并释放绘制表面
func (s *HeroScene) Close() {
	s.animator.Unmount()
	s.loop.Close()
	log.Printf("[HeroScene] closed after %d ticks", s.animator.Ticks())
}

var (
	_ Scene          = (*HeroScene)(nil)
	_ game.Resizable = (*HeroScene)(nil)
	_ game.Closer    = (*HeroScene)(nil)
)
