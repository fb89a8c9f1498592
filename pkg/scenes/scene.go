// Package scenes 包含应用的各个场景
package scenes

import (
	"github.com/decker502/heroparticles/pkg/game"
)

// Scene 是 game.Scene 的别名，场景实现无需导入 game 包即可声明接口
type Scene = game.Scene
