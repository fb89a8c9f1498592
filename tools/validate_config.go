//go:build ignore

// validate_config 检查英雄页配置文件
//
// 用法：
//
//	go run tools/validate_config.go [path]
package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/heroparticles/internal/particle"
	"github.com/decker502/heroparticles/pkg/config"
	"github.com/decker502/heroparticles/pkg/utils"
)

// invalidRange 作为 ParseRange 的回退值，解析成功时不可能返回 Min > Max
var invalidRange = particle.Range{Min: 1, Max: -1}

func main() {
	path := config.DefaultHeroConfigPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("❌ 读取文件失败: %v\n", err)
		os.Exit(1)
	}

	// 未知字段通常是拼写错误
	var strict config.HeroConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&strict); err != nil {
		fmt.Printf("❌ YAML 解析失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ YAML 格式正确，没有未知字段\n")

	cfg, err := config.ParseHeroConfig(data, path)
	if err != nil {
		fmt.Printf("❌ 配置无效: %v\n", err)
		os.Exit(1)
	}

	problems := 0

	colors := map[string]string{
		"background":          cfg.Background,
		"particles.color":     cfg.Particles.Color,
		"button.background":   cfg.Button.Background,
		"button.shimmerColor": cfg.Button.ShimmerColor,
		"card.beam.colorFrom": cfg.Card.Beam.ColorFrom,
		"card.beam.colorTo":   cfg.Card.Beam.ColorTo,
	}
	for name, c := range colors {
		if !utils.ValidHexColor(c) {
			fmt.Printf("❌ %s: 无效颜色 %q\n", name, c)
			problems++
		}
	}

	ranges := map[string]string{
		"particles.size":      cfg.Particles.Size,
		"particles.alpha":     cfg.Particles.Alpha,
		"particles.speed":     cfg.Particles.Speed,
		"particles.magnetism": cfg.Particles.Magnetism,
	}
	for name, r := range ranges {
		if particle.ParseRange(r, invalidRange) == invalidRange {
			fmt.Printf("❌ %s: 无法解析 %q\n", name, r)
			problems++
		}
	}

	if t := cfg.Particles.Twinkle; t != "" {
		if _, ok := particle.ParseCurve(t); !ok {
			fmt.Printf("❌ particles.twinkle: 无法解析关键帧 %q\n", t)
			problems++
		}
	}

	if problems > 0 {
		fmt.Printf("❌ 发现 %d 个问题\n", problems)
		os.Exit(1)
	}

	fc := cfg.ToFieldConfig()
	fmt.Printf("✅ 粒子: 数量 %d, 静态度 %.0f, 颜色 %s\n", fc.Quantity, fc.Staticity, utils.HexString(fc.Color))
	fmt.Printf("✅ 标题: %q, 按钮: %q\n", cfg.Headline.Title, cfg.Button.Label)
}
