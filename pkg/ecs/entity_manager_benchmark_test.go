package ecs

import "testing"

type benchmarkComp1 struct {
	X, Y float64
}

type benchmarkComp2 struct {
	VX, VY float64
}

type benchmarkComp3 struct {
	Radius float64
}

// setupBenchmarkEntities 创建指定数量的实体，每个实体包含三种组件
func setupBenchmarkEntities(count int) *EntityManager {
	em := NewEntityManager()
	for i := 0; i < count; i++ {
		entity := em.CreateEntity()
		em.AddComponent(entity, &benchmarkComp1{X: float64(i)})
		em.AddComponent(entity, &benchmarkComp2{VX: 1})
		if i%2 == 0 {
			em.AddComponent(entity, &benchmarkComp3{Radius: 0.35})
		}
	}
	return em
}

// BenchmarkGetEntitiesWith3 模拟一帧中对子弹集合的查询（约500个实体）
func BenchmarkGetEntitiesWith3(b *testing.B) {
	em := setupBenchmarkEntities(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith3[*benchmarkComp1, *benchmarkComp2, *benchmarkComp3](em)
	}
}

func BenchmarkGetComponent(b *testing.B) {
	em := setupBenchmarkEntities(500)
	id := EntityID(250)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = GetComponent[*benchmarkComp1](em, id)
	}
}

// BenchmarkDestroyAndCull 测量分阶段删除 + 单点清理的开销
func BenchmarkDestroyAndCull(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		em := setupBenchmarkEntities(500)
		b.StartTimer()
		for id := EntityID(1); id <= 500; id += 3 {
			em.DestroyEntity(id)
		}
		em.RemoveMarkedEntities()
	}
}
