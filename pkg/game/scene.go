package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the application (e.g. the hero banner).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by deltaTime seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，窗口逻辑尺寸变化时由 SceneManager 调用
type Resizable interface {
	Resize(width, height int)
}

// Closer 是一个可选接口，场景被替换或程序退出时释放资源
//
// 实现此接口的场景会在以下时机被调用 Close()：
//   - SceneManager 切换到其他场景
//   - 窗口关闭
type Closer interface {
	Close()
}
