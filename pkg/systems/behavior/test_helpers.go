package behavior

import (
	"math/rand"
	"testing"

	"github.com/gonewx/ammodillo/pkg/components"
	"github.com/gonewx/ammodillo/pkg/config"
	"github.com/gonewx/ammodillo/pkg/ecs"
	"github.com/gonewx/ammodillo/pkg/entities"
	"github.com/gonewx/ammodillo/pkg/game"
	"github.com/gonewx/ammodillo/pkg/systems"
)

// testWorld 敌人行为测试的最小世界：玩家 + 行为系统
type testWorld struct {
	em        *ecs.EntityManager
	cfg       *config.GameConfig
	gameState *game.GameState
	actors    *ActorSystem
	playerID  ecs.EntityID
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	cfg, err := config.LoadGameConfig("../../../data")
	if err != nil {
		t.Fatalf("failed to load game config: %v", err)
	}

	em := ecs.NewEntityManager()
	rng := rand.New(rand.NewSource(7))
	gs := game.NewGameState()
	fx := systems.NewEffectSpawner(em, cfg.Projectiles, rng, nil, nil)

	return &testWorld{
		em:        em,
		cfg:       cfg,
		gameState: gs,
		actors:    NewActorSystem(em, cfg.Actors, cfg.Projectiles.Bullet, cfg.Arena.Bounds(), fx, gs, rng),
		playerID:  entities.NewPlayer(em, cfg.Player),
	}
}

func (w *testWorld) countProjectiles() int {
	return len(ecs.GetEntitiesWith1[*components.ProjectileComponent](w.em))
}

func (w *testWorld) countEffects(kind components.EffectKind) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.EffectComponent](w.em) {
		effect, _ := ecs.GetComponent[*components.EffectComponent](w.em, id)
		if effect.Kind == kind {
			n++
		}
	}
	return n
}

func (w *testWorld) actor(id ecs.EntityID) *components.ActorComponent {
	actor, _ := ecs.GetComponent[*components.ActorComponent](w.em, id)
	return actor
}
