package scenes

import (
	"bytes"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/heroparticles/pkg/effects"
	"github.com/decker502/heroparticles/pkg/utils"
)

// 闪光条纹数量
const shimmerStrips = 32

// 边框光束采样点数
const beamSamples = 48

var (
	headlineColor = color.NRGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff}
	mutedColor    = color.NRGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff}
	cardFill      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xe6}
	cardBorder    = color.NRGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff}
)

type heroFonts struct {
	title    *text.GoTextFace
	subtitle *text.GoTextFace
	tagline  *text.GoTextFace
	button   *text.GoTextFace
	card     *text.GoTextFace
}

// loadHeroFonts 加载内置 Go 字体
func loadHeroFonts() (*heroFonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, err
	}
	return &heroFonts{
		title:    &text.GoTextFace{Source: bold, Size: titleSize},
		subtitle: &text.GoTextFace{Source: regular, Size: subtitleSize},
		tagline:  &text.GoTextFace{Source: regular, Size: taglineSize},
		button:   &text.GoTextFace{Source: bold, Size: buttonSize},
		card:     &text.GoTextFace{Source: regular, Size: cardTextSize},
	}, nil
}

// Draw 绘制场景
func (s *HeroScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.cfg.BackgroundColor())

	// 粒子场在最底层
	s.surface.Draw(screen)

	if s.fonts == nil {
		fonts, err := loadHeroFonts()
		if err != nil {
			log.Printf("[HeroScene] 警告：字体加载失败: %v", err)
			return
		}
		s.fonts = fonts
	}

	h := s.cfg.Headline
	lines := [3]struct {
		text  string
		face  *text.GoTextFace
		color color.NRGBA
	}{
		{h.Title, s.fonts.title, headlineColor},
		{h.Subtitle, s.fonts.subtitle, headlineColor},
		{h.Tagline, s.fonts.tagline, mutedColor},
	}
	for i, line := range lines {
		if i >= len(s.fades) {
			break
		}
		s.drawFadingText(screen, line.text, line.face, line.color, s.layout.lines[i], s.fades[i].State(s.elapsed))
	}

	s.drawButton(screen)
	s.drawCard(screen)
}

// drawFadingText 按淡入状态绘制一行居中文字
// 模糊用几份偏移的半透明副本近似
func (s *HeroScene) drawFadingText(screen *ebiten.Image, str string, face *text.GoTextFace, c color.NRGBA, r rect, st effects.BlurFadeState) {
	if str == "" || st.Opacity <= 0 {
		return
	}
	cx, _ := r.center()
	y := r.Y + st.YOffset

	if st.Blur > 0.5 {
		d := st.Blur / 2
		ghost := float32(st.Opacity * 0.2)
		for _, o := range [4][2]float64{{-d, 0}, {d, 0}, {0, -d}, {0, d}} {
			drawCentered(screen, str, face, c, cx+o[0], y+o[1], ghost)
		}
		drawCentered(screen, str, face, c, cx, y, float32(st.Opacity*0.6))
		return
	}
	drawCentered(screen, str, face, c, cx, y, float32(st.Opacity))
}

func drawCentered(screen *ebiten.Image, str string, face *text.GoTextFace, c color.NRGBA, cx, y float64, alpha float32) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(screen, str, face, op)
}

// drawButton 按钮底色、闪光条纹和标签
func (s *HeroScene) drawButton(screen *ebiten.Image) {
	if len(s.fades) < 4 {
		return
	}
	st := s.fades[3].State(s.elapsed)
	if st.Opacity <= 0 {
		return
	}

	b := s.layout.button.scaled(s.scale.Value())
	b.Y += st.YOffset

	bg := utils.WithAlpha(utils.ParseHexColor(s.cfg.Button.Background, headlineColor), st.Opacity)
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, true)

	shine := utils.ParseHexColor(s.cfg.Button.ShimmerColor, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	stripW := b.W / shimmerStrips
	for i := 0; i < shimmerStrips; i++ {
		u := (float64(i) + 0.5) / shimmerStrips
		k := s.shimmer.Intensity(u, s.elapsed) * st.Opacity
		if k <= 0 {
			continue
		}
		x := b.X + float64(i)*stripW
		vector.DrawFilledRect(screen, float32(x), float32(b.Y), float32(stripW), float32(b.H), utils.WithAlpha(shine, k), false)
	}

	cx, cy := b.center()
	drawCentered(screen, s.cfg.Button.Label, s.fonts.button, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		cx, cy-buttonSize*0.65, float32(st.Opacity))
}

// drawCard 卡片与沿边框移动的光束
func (s *HeroScene) drawCard(screen *ebiten.Image) {
	c := s.layout.card
	if c.W <= 0 || c.H <= 0 {
		return
	}
	vector.DrawFilledRect(screen, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), cardFill, true)
	vector.StrokeRect(screen, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), 1, cardBorder, true)

	for _, p := range s.beam.Trail(s.elapsed, c.W, c.H, beamSamples) {
		if p.Color.A == 0 {
			continue
		}
		vector.DrawFilledCircle(screen, float32(c.X+p.X), float32(c.Y+p.Y), 1.5, p.Color, true)
	}

	cx, _ := c.center()
	drawCentered(screen, s.cfg.Card.Title, s.fonts.subtitle, headlineColor, cx, c.Y+20, 1)

	y := c.Y + 60
	for _, line := range utils.WrapText(s.cfg.Card.Description, s.fonts.card, c.W-32) {
		if y+cardTextSize > c.Y+c.H {
			break
		}
		drawCentered(screen, line, s.fonts.card, mutedColor, cx, y, 1)
		y += cardTextSize * 1.4
	}
}
