package nvstore

import "math"

// Valid ranges for the tuning triple: Kp must be in (1e-6,
// 1e4); Ti and Td must be in [0, 9e4).
const (
	KpMin   = 1e-6
	KpMax   = 1e4
	TiTdMax = 9e4
)

// Defaults written back when a stored value is missing, NaN, or out of
// range. See DESIGN.md for why Kp defaults to 0.3.
const (
	DefaultKp = 0.3
	DefaultTi = 0.01
	DefaultTd = 0.0
)

// Gains is the RAM-shadowed tuning triple read once at boot and kept in sync
// with the store whenever the sequencer executes a SET_* op. It
// implements sequencer.GainStore.
type Gains struct {
	store *Store
	Kp    float64
	Ti    float64
	Td    float64
}

// LoadGains boot-reads the triple, validates each field, and writes back
// the default for anything missing, NaN, or out of range.
func LoadGains(store *Store) *Gains {
	g := &Gains{store: store}

	kp, kpOK := store.ReadFloat32(AddrKp)
	if !kpOK || !validKp(float64(kp)) {
		g.Kp = DefaultKp
		store.WriteFloat32(AddrKp, float32(DefaultKp))
	} else {
		g.Kp = float64(kp)
	}

	ti, tiOK := store.ReadFloat32(AddrTi)
	if !tiOK || !validTiTd(float64(ti)) {
		g.Ti = DefaultTi
		store.WriteFloat32(AddrTi, float32(DefaultTi))
	} else {
		g.Ti = float64(ti)
	}

	td, tdOK := store.ReadFloat32(AddrTd)
	if !tdOK || !validTiTd(float64(td)) {
		g.Td = DefaultTd
		store.WriteFloat32(AddrTd, float32(DefaultTd))
	} else {
		g.Td = float64(td)
	}

	return g
}

func validKp(v float64) bool {
	return !math.IsNaN(v) && v > KpMin && v < KpMax
}

func validTiTd(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v < TiTdMax
}

// WriteKp persists and shadows a new Kp, e.g. from a SET_KP command.
func (g *Gains) WriteKp(v float32) {
	g.Kp = float64(v)
	g.store.WriteFloat32(AddrKp, v)
}

// WriteTi persists and shadows a new Ti.
func (g *Gains) WriteTi(v float32) {
	g.Ti = float64(v)
	g.store.WriteFloat32(AddrTi, v)
}

// WriteTd persists and shadows a new Td.
func (g *Gains) WriteTd(v float32) {
	g.Td = float64(v)
	g.store.WriteFloat32(AddrTd, v)
}
