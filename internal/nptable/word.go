package nptable

const (
	// LabelTag marks a payload holding a biome code.
	LabelTag uint16 = 0xFF00
	// labelMask selects the tag bits of a payload.
	labelMask uint16 = 0xFF00

	payloadShift = 48
)

// Entry is one packed table row.
type Entry struct {
	Indices [PointsPerRow]uint8
	Payload uint16
}

// labelPayload returns the payload for biome code.
func labelPayload(code int) uint16 {
	return LabelTag | uint16(code&0xFF)
}

// IsLabel reports whether the payload carries a biome code.
func (e Entry) IsLabel() bool {
	return e.Payload&labelMask == LabelTag
}

// Code returns the biome code of a label entry.
func (e Entry) Code() int {
	return int(e.Payload &^ labelMask)
}

// Value returns the raw payload of an inner entry.
func (e Entry) Value() int {
	return int(e.Payload)
}

// Word packs the entry into its 64-bit table form.
func (e Entry) Word() uint64 {
	w := uint64(e.Payload) << payloadShift
	for i, idx := range e.Indices {
		w |= uint64(idx) << (8 * i)
	}
	return w
}

// DecodeWord unpacks a 64-bit table word.
func DecodeWord(w uint64) Entry {
	var e Entry
	for i := range e.Indices {
		e.Indices[i] = uint8(w >> (8 * i))
	}
	e.Payload = uint16(w >> payloadShift)
	return e
}
