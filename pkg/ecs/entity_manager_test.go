package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试ID从1开始且唯一
	if id1 != 1 || id2 != 2 {
		t.Errorf("expected IDs 1 and 2, got %d and %d", id1, id2)
	}
	if em.EntityCount() != 2 {
		t.Errorf("EntityCount: got %d, want 2", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{X: 100, Y: 200})

	t.Run("反射接口", func(t *testing.T) {
		comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
		if !found {
			t.Fatal("component should be found")
		}
		if pos := comp.(*testPositionComponent); pos.X != 100 || pos.Y != 200 {
			t.Errorf("component data mismatch: %+v", pos)
		}
	})

	t.Run("泛型接口", func(t *testing.T) {
		pos, ok := GetComponent[*testPositionComponent](em, id)
		if !ok || pos.X != 100 {
			t.Errorf("GetComponent: got %+v, %v", pos, ok)
		}
		// 修改通过指针生效
		pos.X = 5
		again, _ := GetComponent[*testPositionComponent](em, id)
		if again.X != 5 {
			t.Error("component should be stored by pointer")
		}

		if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
			t.Error("missing component reported as found")
		}
		if !HasComponent[*testPositionComponent](em, id) || HasComponent[*testVelocityComponent](em, id) {
			t.Error("HasComponent mismatch")
		}
	})

	t.Run("不存在的实体", func(t *testing.T) {
		em.AddComponent(999, &testPositionComponent{})
		if _, ok := GetComponent[*testPositionComponent](em, 999); ok {
			t.Error("component added to unknown entity")
		}
	})
}

func TestRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})
	em.RemoveComponent(id, reflect.TypeOf(&testPositionComponent{}))

	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("component should be removed")
	}
}

func TestDestroyEntityIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	em.DestroyEntity(id)
	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("entity should survive until RemoveMarkedEntities")
	}

	em.RemoveMarkedEntities()
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("components should be removed with the entity")
	}
	if em.EntityCount() != 0 {
		t.Errorf("EntityCount: got %d, want 0", em.EntityCount())
	}
	if got := GetEntitiesWith1[*testPositionComponent](em); len(got) != 0 {
		t.Errorf("destroyed entity still queried: %v", got)
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	var both []EntityID
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{X: float64(i)})
		if i%3 == 0 {
			em.AddComponent(id, &testVelocityComponent{})
			both = append(both, id)
		}
	}

	if got := GetEntitiesWith1[*testPositionComponent](em); len(got) != 20 {
		t.Errorf("position query: got %d entities, want 20", len(got))
	}

	got := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if !reflect.DeepEqual(got, both) {
		t.Errorf("position+velocity query: got %v, want %v (ascending)", got, both)
	}

	if got := em.GetEntitiesWith(); got != nil {
		t.Errorf("empty query: got %v, want nil", got)
	}
}
