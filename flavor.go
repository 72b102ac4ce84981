package sbool

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

const (
	flavorTagString = 1
	flavorTagInt    = 2
)

// Flavor discriminates flavored booleans. A flavor must hash consistently
// with Equal: equal flavors hash to the same value. Hash collisions are
// fine, the interner resolves them with Equal.
type Flavor interface {
	Hash() uint64
	Equal(other Flavor) bool
	String() string
}

type StringFlavor string

func (f StringFlavor) Hash() uint64 {
	h := xxhash.New()
	h.Write([]byte{flavorTagString})
	h.Write([]byte(f))
	return h.Sum64()
}

func (f StringFlavor) Equal(other Flavor) bool {
	of, ok := other.(StringFlavor)
	return ok && of == f
}

func (f StringFlavor) String() string {
	return fmt.Sprintf("'%s'", string(f))
}

type IntFlavor int64

func (f IntFlavor) Hash() uint64 {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(f))

	h := xxhash.New()
	h.Write([]byte{flavorTagInt})
	h.Write(raw)
	return h.Sum64()
}

func (f IntFlavor) Equal(other Flavor) bool {
	of, ok := other.(IntFlavor)
	return ok && of == f
}

func (f IntFlavor) String() string {
	return fmt.Sprintf("%d", int64(f))
}
