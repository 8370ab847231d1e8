package registry

import (
	"reflect"
	"testing"
)

func TestResolve_DependencyFirst(t *testing.T) {
	reg := testRegistry()

	order, err := Resolve(reg, []string{"dialog"})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	if len(order) != 3 {
		t.Fatalf("order = %v, want 3 names", order)
	}
	assertBefore(t, order, "utils", "dialog")
	assertBefore(t, order, "focustrap", "dialog")
	assertBefore(t, order, "utils", "focustrap")
}

func TestResolve_ToggleGroup(t *testing.T) {
	order, err := Resolve(Default(), []string{"toggle_group"})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	want := []string{"toggle", "toggle_group"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestResolve_SharedDependencyOnce(t *testing.T) {
	reg := testRegistry()

	order, err := Resolve(reg, []string{"button", "dialog"})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	seen := make(map[string]int)
	for _, name := range order {
		seen[name]++
	}
	for name, n := range seen {
		if n != 1 {
			t.Errorf("%s appears %d times", name, n)
		}
	}
	if seen["utils"] != 1 {
		t.Errorf("shared dependency utils should appear exactly once, got %d", seen["utils"])
	}
}

func TestResolve_RepeatedRequest(t *testing.T) {
	order, err := Resolve(testRegistry(), []string{"button", "button"})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	want := []string{"utils", "button"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestResolve_UnknownNameIsLeaf(t *testing.T) {
	order, err := Resolve(testRegistry(), []string{"ghost"})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	if !reflect.DeepEqual(order, []string{"ghost"}) {
		t.Errorf("order = %v, want [ghost]", order)
	}
}

func TestResolve_UnknownDependencyIsLeaf(t *testing.T) {
	reg := New("1.0.0", []Component{
		{Name: "widget", DependsOn: []string{"phantom"}},
	})

	order, err := Resolve(reg, []string{"widget"})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	want := []string{"phantom", "widget"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	reg := Default()
	requested := []string{"alert_dialog", "select", "sonner"}

	first, err1 := Resolve(reg, requested)
	second, err2 := Resolve(reg, requested)

	if err1 != nil || err2 != nil {
		t.Fatalf("Resolve errors: %v, %v", err1, err2)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("resolution not deterministic:\n%v\n%v", first, second)
	}
}

func TestResolve_FullDefaultRegistry(t *testing.T) {
	reg := Default()

	order, err := Resolve(reg, reg.Names())
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(order) != len(reg.Names()) {
		t.Fatalf("order has %d names, registry has %d", len(order), len(reg.Names()))
	}

	// Every declared dependency must precede its dependent.
	for _, name := range order {
		c, ok := reg.Find(name)
		if !ok {
			continue
		}
		for _, dep := range c.DependsOn {
			assertBefore(t, order, dep, name)
		}
	}
}

func TestResolve_CycleDetected(t *testing.T) {
	reg := New("1.0.0", []Component{
		{Name: "a", DependsOn: []string{"b"}},
		{Name: "b", DependsOn: []string{"a"}},
	})

	order, err := Resolve(reg, []string{"a"})

	cycleErr, ok := err.(*CycleError)
	if !ok {
		t.Fatalf("err = %v, want *CycleError", err)
	}
	if len(cycleErr.Cycle) < 2 {
		t.Errorf("Cycle = %v, want a closed path", cycleErr.Cycle)
	}
	if cycleErr.Cycle[0] != cycleErr.Cycle[len(cycleErr.Cycle)-1] {
		t.Errorf("Cycle = %v, should start and end at the same name", cycleErr.Cycle)
	}

	// The walk still terminates with a usable first-visitation order.
	if !reflect.DeepEqual(order, []string{"b", "a"}) {
		t.Errorf("order = %v, want [b a]", order)
	}
}

func TestResolve_SelfCycle(t *testing.T) {
	reg := New("1.0.0", []Component{
		{Name: "narcissus", DependsOn: []string{"narcissus"}},
	})

	order, err := Resolve(reg, []string{"narcissus"})
	if _, ok := err.(*CycleError); !ok {
		t.Fatalf("err = %v, want *CycleError", err)
	}
	if !reflect.DeepEqual(order, []string{"narcissus"}) {
		t.Errorf("order = %v, want [narcissus]", order)
	}
}

func TestResolve_DeepChainIterative(t *testing.T) {
	// A chain deep enough to break recursive resolvers.
	const depth = 50000
	components := make([]Component, depth)
	for i := 0; i < depth; i++ {
		c := Component{Name: name(i)}
		if i > 0 {
			c.DependsOn = []string{name(i - 1)}
		}
		components[i] = c
	}
	reg := New("1.0.0", components)

	order, err := Resolve(reg, []string{name(depth - 1)})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(order) != depth {
		t.Fatalf("order has %d names, want %d", len(order), depth)
	}
	if order[0] != name(0) || order[depth-1] != name(depth-1) {
		t.Errorf("order endpoints = %s...%s", order[0], order[len(order)-1])
	}
}

func name(i int) string {
	const digits = "0123456789"
	if i == 0 {
		return "c0"
	}
	var buf []byte
	for i > 0 {
		buf = append([]byte{digits[i%10]}, buf...)
		i /= 10
	}
	return "c" + string(buf)
}

func assertBefore(t *testing.T, order []string, before, after string) {
	t.Helper()
	bi, ai := -1, -1
	for i, n := range order {
		if n == before {
			bi = i
		}
		if n == after {
			ai = i
		}
	}
	if bi == -1 || ai == -1 {
		t.Errorf("order %v missing %q or %q", order, before, after)
		return
	}
	if bi >= ai {
		t.Errorf("%q (index %d) should precede %q (index %d)", before, bi, after, ai)
	}
}
