package flowgui

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// ID uniquely identifies a widget for state persistence.
// IDs are stable across frames for the same key and ID stack.
type ID uint64

// ID derives a stable identity from key and the current ID stack.
// The same key under the same pushed IDs yields the same value every frame;
// a different key or a different stack yields a different value.
func (e *Engine) ID(key string) ID {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(e.CurrentID()))
	h.Write(buf[:])
	h.Write([]byte(key))
	return ID(h.Sum64())
}

// IDInt derives an identity from an integer, for items in slices.
func (e *Engine) IDInt(n int) ID {
	h := fnv.New64a()
	var buf [17]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(e.CurrentID()))
	buf[8] = '#'
	binary.LittleEndian.PutUint64(buf[9:], uint64(n))
	h.Write(buf[:])
	return ID(h.Sum64())
}

// PushID pushes a scope so widgets created in a loop get distinct IDs.
func (e *Engine) PushID(key string) {
	e.idStack = append(e.idStack, e.ID(key))
}

// PushIDInt pushes an integer-based scope, typically a loop index or a
// stable domain key.
func (e *Engine) PushIDInt(n int) {
	e.idStack = append(e.idStack, e.IDInt(n))
}

// PopID removes the last pushed scope.
func (e *Engine) PopID() {
	if len(e.idStack) == 0 {
		panic(fmt.Errorf("PopID on empty stack: %w", ErrUnbalancedID))
	}
	e.idStack = e.idStack[:len(e.idStack)-1]
}

// CurrentID returns the innermost pushed scope, or 0 at the root.
func (e *Engine) CurrentID() ID {
	if len(e.idStack) > 0 {
		return e.idStack[len(e.idStack)-1]
	}
	return 0
}
