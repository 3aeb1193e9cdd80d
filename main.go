package main

import (
	"flag"
	"log"
	"time"

	"github.com/gonewx/ammodillo/pkg/app"
	"github.com/gonewx/ammodillo/pkg/config"
	"github.com/gonewx/ammodillo/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	seedFlag    = flag.Int64("seed", 0, "Random seed (0 = current time)")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verboseFlag,
		Seed:    seed,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	defer gameApp.Shutdown()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
