// Package main 在终端中运行英雄页背景粒子场
//
// Usage:
//
//	go run ./cmd/fieldterm [flags]
//
// Flags:
//
//	--config <path>    英雄页配置（默认 data/hero.yaml）
//	--fps <n>          刷新率（默认 30）
//	--verbose          把日志写到 fieldterm.log
//
// Controls:
//
//	鼠标移动      - 吸引粒子
//	P/Space       - 暂停
//	Q/Esc/Ctrl+C  - 退出
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"github.com/decker502/heroparticles/pkg/config"
)

var (
	configFlag  = flag.String("config", config.DefaultHeroConfigPath, "Hero config path")
	fpsFlag     = flag.Int("fps", 30, "Frames per second")
	verboseFlag = flag.Bool("verbose", false, "Write logs to fieldterm.log")
)

func main() {
	flag.Parse()

	// 终端被 tcell 占用，日志只能写文件
	log.SetOutput(io.Discard)
	if *verboseFlag {
		f, err := os.OpenFile("fieldterm.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}

	_ = godotenv.Load()

	heroCfg, err := config.LoadHeroConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := heroCfg.ApplyEnv(os.LookupEnv); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid environment: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()

	host := newTermHost(screen, heroCfg.ToFieldConfig())
	defer host.close()

	fps := *fpsFlag
	if fps <= 0 {
		fps = 30
	}
	run(host, fps)
}

func run(host *termHost, fps int) {
	interval := time.Second / time.Duration(fps)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(host.screen, eventChan, done)

	last := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !host.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			host.tick(now.Sub(last).Seconds())
			last = now
		}
	}
}

// eventSource 是 tcell.Screen 中读取事件的部分
type eventSource interface {
	PollEvent() tcell.Event
}

// pollEvents 把 src 的事件转发到 events，直到 src 关闭（返回 nil）或 done 被关闭。
// src 关闭时 events 也会被关闭。
func pollEvents(src eventSource, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := src.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
