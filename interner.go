package sbool

import (
	"fmt"
	"sync"
)

type pair struct {
	truthy *SBool
	falsy  *SBool
}

type InternerStats struct {
	CacheHits      uint
	CacheLookups   uint
	CachedBools    uint
	CachedFlavored uint
}

// Interner owns the singleton caches of every boolean kind. Kinds in the
// combinable and closed branches each own an independently filled pair;
// flavored singletons live in two hash-bucketed maps keyed by flavor hash,
// growing monotonically with the number of distinct flavors seen. First
// creation of a slot is serialized behind the write lock, reads afterwards
// only share the read lock. Slots are never evicted or mutated once
// filled.
//
// Stats track the slow path only: lookups that missed the read-locked
// fast path.
type Interner struct {
	lock    sync.RWMutex
	pairs   map[int]*pair
	ftruthy map[uint64][]*FBool
	ffalsy  map[uint64][]*FBool

	Stats InternerStats
}

func NewInterner() *Interner {
	return &Interner{
		pairs:   map[int]*pair{},
		ftruthy: map[uint64][]*FBool{},
		ffalsy:  map[uint64][]*FBool{},
	}
}

var defaultInterner = NewInterner()

func (in *Interner) PrintStats() {
	in.lock.Lock()
	defer in.lock.Unlock()

	fmt.Println("=====================")
	fmt.Println("   Interner Stats")
	fmt.Println("=====================")
	fmt.Printf("hits:       %d\n", in.Stats.CacheHits)
	fmt.Printf("hit ratio:  %.03f %%\n", float64(in.Stats.CacheHits)/float64(in.Stats.CacheLookups)*100)
	fmt.Printf("num cached: %d\n", in.Stats.CachedBools+in.Stats.CachedFlavored)
	fmt.Println("=====================")
}

func (in *Interner) lookupBool(kind int, truth bool) *SBool {
	in.lock.RLock()
	defer in.lock.RUnlock()

	p, ok := in.pairs[kind]
	if !ok {
		return nil
	}
	if truth {
		return p.truthy
	}
	return p.falsy
}

func (in *Interner) getOrCreateBool(kind int, truth bool) *SBool {
	if b := in.lookupBool(kind, truth); b != nil {
		return b
	}

	in.lock.Lock()
	defer in.lock.Unlock()
	in.Stats.CacheLookups += 1

	p, ok := in.pairs[kind]
	if !ok {
		p = &pair{}
		in.pairs[kind] = p
	}
	if truth {
		if p.truthy == nil {
			p.truthy = &SBool{knd: kind, truth: true}
			in.Stats.CachedBools += 1
		} else {
			in.Stats.CacheHits += 1
		}
		return p.truthy
	}
	if p.falsy == nil {
		p.falsy = &SBool{knd: kind, truth: false}
		in.Stats.CachedBools += 1
	} else {
		in.Stats.CacheHits += 1
	}
	return p.falsy
}

func (in *Interner) lookupFlavored(truth bool, flavor Flavor, h uint64) *FBool {
	in.lock.RLock()
	defer in.lock.RUnlock()

	cache := in.ffalsy
	if truth {
		cache = in.ftruthy
	}
	bucket := cache[h]
	for i := 0; i < len(bucket); i++ {
		if bucket[i].flavor.Equal(flavor) {
			return bucket[i]
		}
	}
	return nil
}

func (in *Interner) getOrCreateFlavored(truth bool, flavor Flavor) *FBool {
	h := flavor.Hash()
	if b := in.lookupFlavored(truth, flavor, h); b != nil {
		return b
	}

	in.lock.Lock()
	defer in.lock.Unlock()
	in.Stats.CacheLookups += 1

	cache := in.ffalsy
	if truth {
		cache = in.ftruthy
	}
	bucket := cache[h]
	for i := 0; i < len(bucket); i++ {
		if bucket[i].flavor.Equal(flavor) {
			in.Stats.CacheHits += 1
			return bucket[i]
		}
	}
	b := &FBool{truth: truth, flavor: flavor}
	cache[h] = append(bucket, b)
	in.Stats.CachedFlavored += 1
	return b
}

// internKind returns the singleton carrying truth for an ancestor kind
// computed by a binary operator. Kinds in the closed branch re-dispatch on
// truth, so a falsy result of the always-truthy kind is unrepresentable. A
// flavored kind reached without a flavor degrades to the base pair.
func (in *Interner) internKind(kind int, truth bool) *SBool {
	if isTFKind(kind) {
		return in.TFBool(truth)
	}
	if kind == TY_FBOOL {
		kind = TY_SBOOL
	}
	return in.getOrCreateBool(kind, truth)
}

// *** Constructors ***

func (in *Interner) SBool(witness bool) *SBool {
	return in.getOrCreateBool(TY_SBOOL, witness)
}

func (in *Interner) Subtyped(kind int, witness bool) (*SBool, error) {
	if !isCombinableKind(kind) {
		return nil, fmt.Errorf("kind '%s' is not a combinable boolean subtype", KindName(kind))
	}
	return in.getOrCreateBool(kind, witness), nil
}

func (in *Interner) FBool(witness bool, flavor Flavor) *FBool {
	return in.getOrCreateFlavored(witness, flavor)
}

func (in *Interner) TFBool(witness bool) *SBool {
	if witness {
		return in.Always()
	}
	return in.NeverEver()
}

func (in *Interner) Always() *SBool {
	return in.getOrCreateBool(TY_T_BOOL, true)
}

func (in *Interner) NeverEver() *SBool {
	return in.getOrCreateBool(TY_F_BOOL, false)
}
