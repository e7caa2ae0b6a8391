package pointer

import (
	"hash/fnv"
	"strings"
)

// Slot is a semantic palette position.
type Slot int

// Palette slots, in hash order.
const (
	SlotAccent Slot = iota
	SlotPrimary
	SlotSuccess
	SlotWarning
	SlotDanger
	SlotSecondary
)

// NumSlots is the number of palette slots.
const NumSlots = 6

var slotNames = [NumSlots]string{"accent", "primary", "success", "warning", "danger", "secondary"}

// String returns the slot's lowercase name.
func (s Slot) String() string {
	if s < 0 || int(s) >= NumSlots {
		return "unknown"
	}
	return slotNames[s]
}

// ParseSlot returns the slot with the given name.
func ParseSlot(name string) (Slot, bool) {
	for i, n := range slotNames {
		if strings.EqualFold(n, name) {
			return Slot(i), true
		}
	}
	return 0, false
}

// Palette maps each slot to a color string (typically "#RRGGBB").
type Palette [NumSlots]string

// DefaultPalette holds the light theme colors.
var DefaultPalette = Palette{
	SlotAccent:    "#00B894",
	SlotPrimary:   "#6B4EE6",
	SlotSuccess:   "#17A34A",
	SlotWarning:   "#F59E0A",
	SlotDanger:    "#DB2626",
	SlotSecondary: "#475469",
}

// SlotFor returns the palette slot for an annotation name.
//
// The slot is FNV-1a-32 of the lowercase UTF-8 name, modulo [NumSlots].
// Matching is case-insensitive: "Left" and "left" share a slot.
func SlotFor(name string) Slot {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(name)))
	return Slot(h.Sum32() % NumSlots)
}

// Color returns the color for slot s.
func (p Palette) Color(s Slot) string {
	if s < 0 || int(s) >= NumSlots {
		return p[SlotAccent]
	}
	return p[s]
}

// ColorFor returns the color assigned to an annotation name.
func (p Palette) ColorFor(name string) string { return p.Color(SlotFor(name)) }

// With returns a copy of p with the given slots overridden. Unknown slot
// names and empty colors are ignored.
func (p Palette) With(overrides map[string]string) Palette {
	out := p
	for name, color := range overrides {
		if s, ok := ParseSlot(name); ok && color != "" {
			out[s] = color
		}
	}
	return out
}

// Resolve returns explicit when it is non-empty, else the palette color for name.
func Resolve(p Palette, name, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return p.ColorFor(name)
}
