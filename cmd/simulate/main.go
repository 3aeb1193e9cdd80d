// simulate 无窗口运行一局遭遇战并输出统计
//
// 用法：
//
//	go run ./cmd/simulate --seconds 120 --seed 7 --script auto
//
// 脚本：
//   - idle: 不做任何操作
//   - strafe: 绕场移动并持续开火
//   - auto: 绕场移动，子弹接近时闪避，朝最近的敌人反击
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/gonewx/ammodillo/pkg/components"
	"github.com/gonewx/ammodillo/pkg/config"
	"github.com/gonewx/ammodillo/pkg/ecs"
	"github.com/gonewx/ammodillo/pkg/scenes"
	"github.com/gonewx/ammodillo/pkg/utils"
)

var (
	secondsFlag = flag.Float64("seconds", 120, "模拟时长（秒）")
	dtFlag      = flag.Float64("dt", 1.0/60.0, "每帧时间（秒）")
	seedFlag    = flag.Int64("seed", 1, "随机种子")
	scriptFlag  = flag.String("script", "auto", "输入脚本: idle | strafe | auto")
	dataFlag    = flag.String("data", config.DefaultDataDir, "数据表目录")
	verboseFlag = flag.Bool("verbose", false, "输出系统日志")
)

// dangerRadius 敌方子弹进入该距离时自动闪避
const dangerRadius = 1.5

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadGameConfig(*dataFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 配置加载失败: %v\n", err)
		os.Exit(1)
	}
	if *dtFlag <= 0 || *secondsFlag <= 0 {
		fmt.Fprintln(os.Stderr, "❌ --dt 和 --seconds 必须为正数")
		os.Exit(2)
	}

	script, err := pickScript(*scriptFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(2)
	}

	scene := scenes.NewArenaScene(cfg, nil, nil, *seedFlag)
	frames := int(math.Ceil(*secondsFlag / *dtFlag))
	played := 0
	for ; played < frames; played++ {
		if scene.GameState().IsOver() {
			break
		}
		scene.Tick(*dtFlag, script(scene, float64(played)*(*dtFlag)))
	}

	printSummary(scene, played)
}

// inputScript 根据当前世界生成一帧输入
type inputScript func(scene *scenes.ArenaScene, t float64) utils.InputSnapshot

func pickScript(name string) (inputScript, error) {
	switch name {
	case "idle":
		return func(*scenes.ArenaScene, float64) utils.InputSnapshot { return utils.InputSnapshot{} }, nil
	case "strafe":
		return strafe, nil
	case "auto":
		return autopilot, nil
	default:
		return nil, fmt.Errorf("unknown script: %s", name)
	}
}

// strafe 每 2 秒换一个方向，始终朝竞技场中心开火
func strafe(_ *scenes.ArenaScene, t float64) utils.InputSnapshot {
	input := utils.InputSnapshot{Fire: true}
	switch int(t/2) % 4 {
	case 0:
		input.Right = true
	case 1:
		input.Down = true
	case 2:
		input.Left = true
	default:
		input.Up = true
	}
	return input
}

func autopilot(scene *scenes.ArenaScene, t float64) utils.InputSnapshot {
	input := strafe(scene, t)
	em := scene.EntityManager()

	playerPos, ok := ecs.GetComponent[*components.PositionComponent](em, scene.PlayerID())
	if !ok {
		return input
	}
	me := utils.Vec2{X: playerPos.X, Y: playerPos.Y}

	if target, found := nearestEnemy(em, me); found {
		input.Cursor = target
	}
	if hostileNear(em, me) {
		input.DodgePressed = true
	}
	return input
}

func nearestEnemy(em *ecs.EntityManager, from utils.Vec2) (utils.Vec2, bool) {
	best, bestDist := utils.Vec2{}, math.Inf(1)
	for _, id := range ecs.GetEntitiesWith2[*components.ActorComponent, *components.PositionComponent](em) {
		actor, _ := ecs.GetComponent[*components.ActorComponent](em, id)
		if !actor.Engaged {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		p := utils.Vec2{X: pos.X, Y: pos.Y}
		if d := utils.DistanceSq(from, p); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best, !math.IsInf(bestDist, 1)
}

func hostileNear(em *ecs.EntityManager, from utils.Vec2) bool {
	for _, id := range ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		if proj.Friendly || proj.InPocket {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if utils.Distance(from, utils.Vec2{X: pos.X, Y: pos.Y}) < dangerRadius {
			return true
		}
	}
	return false
}

func printSummary(scene *scenes.ArenaScene, frames int) {
	gs := scene.GameState()
	em := scene.EntityManager()

	hp := 0
	if health, ok := ecs.GetComponent[*components.HealthComponent](em, scene.PlayerID()); ok {
		hp = health.CurrentHealth
	}

	fmt.Println("=== Simulation Summary ===")
	fmt.Printf("Frames:        %d\n", frames)
	fmt.Printf("Elapsed:       %.2fs\n", gs.Elapsed)
	fmt.Printf("Outcome:       %s\n", gs.Outcome)
	fmt.Printf("Waves started: %d\n", gs.WavesStarted)
	fmt.Printf("Boss started:  %v\n", gs.BossStarted)
	fmt.Printf("Kills:         %d\n", gs.Kills)
	fmt.Printf("Player HP:     %d\n", hp)
	fmt.Printf("Entities:      %d\n", em.EntityCount())
}
