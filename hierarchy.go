package sbool

import (
	"fmt"
	"sync"
)

const (
	TY_OBJECT = 1
	TY_INT    = 2

	TY_SBOOL = 3
	TY_FBOOL = 4

	TY_TF_BOOL = 5
	TY_T_BOOL  = 6
	TY_F_BOOL  = 7
)

// The boolean kinds form a rooted hierarchy below TY_INT. Binary logic is
// only defined between two kinds whose deepest shared ancestor sits below
// TY_INT; everything else is a usage error. The branch under TY_SBOOL is
// open: new combinable subtypes can be registered at runtime, each owning
// its own singleton pair in the interner. The TY_TF_BOOL branch and
// TY_FBOOL are final.
type hierarchy struct {
	lock    sync.RWMutex
	parents map[int]int
	names   map[int]string
	next    int
}

var kinds = &hierarchy{
	parents: map[int]int{
		TY_INT:     TY_OBJECT,
		TY_SBOOL:   TY_INT,
		TY_FBOOL:   TY_SBOOL,
		TY_TF_BOOL: TY_SBOOL,
		TY_T_BOOL:  TY_TF_BOOL,
		TY_F_BOOL:  TY_TF_BOOL,
	},
	names: map[int]string{
		TY_OBJECT:  "object",
		TY_INT:     "int",
		TY_SBOOL:   "SBool",
		TY_FBOOL:   "FBool",
		TY_TF_BOOL: "TFBool",
		TY_T_BOOL:  "TSBool",
		TY_F_BOOL:  "FSBool",
	},
	next: TY_F_BOOL + 1,
}

func (h *hierarchy) name(kind int) string {
	if n, ok := h.names[kind]; ok {
		return n
	}
	return fmt.Sprintf("kind<%d>", kind)
}

// KindName returns the registered name of a kind tag.
func KindName(kind int) string {
	kinds.lock.RLock()
	defer kinds.lock.RUnlock()
	return kinds.name(kind)
}

// RegisterSubtype adds a new combinable boolean kind below parent and
// returns its tag. The parent must be TY_SBOOL or a previously registered
// subtype; the flavored and always-true/always-false branches are final.
func RegisterSubtype(name string, parent int) (int, error) {
	kinds.lock.Lock()
	defer kinds.lock.Unlock()

	if parent != TY_SBOOL {
		if _, ok := kinds.parents[parent]; !ok || parent <= TY_F_BOOL {
			return 0, fmt.Errorf("kind '%s' cannot be subtyped", kinds.name(parent))
		}
	}

	kind := kinds.next
	kinds.next++
	kinds.parents[kind] = parent
	kinds.names[kind] = name
	return kind, nil
}

func isTFKind(kind int) bool {
	return kind == TY_TF_BOOL || kind == TY_T_BOOL || kind == TY_F_BOOL
}

func isCombinableKind(kind int) bool {
	if kind == TY_SBOOL {
		return true
	}
	kinds.lock.RLock()
	defer kinds.lock.RUnlock()
	_, ok := kinds.parents[kind]
	return ok && kind > TY_F_BOOL
}

// ancestor returns the most derived kind that is an ancestor of (or equal
// to) both a and b. Pairs whose only shared ancestor is the int/object
// root were never meant to be combined and are rejected.
func ancestor(a, b int) (int, error) {
	kinds.lock.RLock()
	defer kinds.lock.RUnlock()

	seen := map[int]bool{}
	k := a
	for {
		seen[k] = true
		if k == TY_OBJECT {
			break
		}
		p, ok := kinds.parents[k]
		if !ok {
			return 0, fmt.Errorf("unknown kind '%s'", kinds.name(k))
		}
		k = p
	}

	k = b
	for {
		if seen[k] {
			if k == TY_INT || k == TY_OBJECT {
				return 0, fmt.Errorf(
					"types '%s' and '%s' share no boolean ancestor",
					kinds.name(a), kinds.name(b))
			}
			return k, nil
		}
		p, ok := kinds.parents[k]
		if !ok {
			return 0, fmt.Errorf("unknown kind '%s'", kinds.name(k))
		}
		k = p
	}
}
