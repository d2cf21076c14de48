package main

import (
	"flag"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/arena/pkg/app"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	stage := flag.Int("stage", 0, "从指定关卡开始（忽略存档）")
	seed := flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	skin := flag.String("skin", "default", "玩家外观ID")
	loadout := flag.String("loadout", "", "逗号分隔的技能ID，如 heal,shield,grenade")
	flag.Parse()

	// 初始化嵌入数据（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	cfg := app.Config{
		Verbose: *verbose,
		Stage:   *stage,
		Seed:    *seed,
		Skin:    *skin,
	}
	if *loadout != "" {
		cfg.Loadout = strings.Split(*loadout, ",")
	}

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.DefaultViewWidth, config.DefaultViewHeight)
	ebiten.SetWindowTitle("Arena")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// 固定步长由模拟时钟负责，Update 与帧率同步
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
	gameApp.Shutdown()
}
