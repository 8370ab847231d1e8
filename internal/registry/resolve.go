package registry

import (
	"fmt"
	"strings"
)

// CycleError reports a dependency cycle observed during resolution. The
// resolution order returned alongside it is still usable; every name
// appears once and acyclic dependencies still precede their dependents.
type CycleError struct {
	// Cycle holds the names forming the cycle, starting and ending at
	// the same component.
	Cycle []string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle: %s", strings.Join(e.Cycle, " -> "))
}

// frame is one entry of the explicit resolution stack.
type frame struct {
	name string
	deps []string
	next int
}

// Resolve flattens the requested components plus their transitive
// dependencies into a deduplicated, dependency-first installation order:
// for every resolved name, each of its registry-declared dependencies
// appears at a smaller index.
//
// Names absent from the registry are treated as dependency-free leaves
// and still appear in the order; validating top-level names is the
// caller's job. The walk is iterative, so pathological dependency depth
// cannot overflow the goroutine stack.
//
// A dependency cycle cannot loop the walk. The first cycle observed is
// returned as a *CycleError together with the deterministic
// first-visitation order, so callers can choose to report it or proceed.
func Resolve(reg *Registry, requested []string) ([]string, error) {
	done := make(map[string]bool)
	onStack := make(map[string]bool)
	order := make([]string, 0, len(requested))
	var cycle *CycleError

	newFrame := func(name string) frame {
		f := frame{name: name}
		if c, ok := reg.Find(name); ok {
			f.deps = c.DependsOn
		}
		return f
	}

	for _, root := range requested {
		if done[root] {
			continue
		}

		stack := []frame{newFrame(root)}
		onStack[root] = true

		for len(stack) > 0 {
			top := &stack[len(stack)-1]

			if top.next < len(top.deps) {
				dep := top.deps[top.next]
				top.next++

				if done[dep] {
					continue
				}
				if onStack[dep] {
					if cycle == nil {
						cycle = &CycleError{Cycle: cyclePath(stack, dep)}
					}
					continue
				}
				stack = append(stack, newFrame(dep))
				onStack[dep] = true
				continue
			}

			done[top.name] = true
			delete(onStack, top.name)
			order = append(order, top.name)
			stack = stack[:len(stack)-1]
		}
	}

	if cycle != nil {
		return order, cycle
	}
	return order, nil
}

// cyclePath extracts the cycle from the stack, from the first occurrence
// of name back around to name itself.
func cyclePath(stack []frame, name string) []string {
	start := 0
	for i, f := range stack {
		if f.name == name {
			start = i
			break
		}
	}

	path := make([]string, 0, len(stack)-start+1)
	for _, f := range stack[start:] {
		path = append(path, f.name)
	}
	return append(path, name)
}
