package vtscreen

// Params holds the parameter list accumulated by the Parser for one CSI or
// DCS dispatch: a sequence of unsigned integers, grouped into
// `;`-separated top-level parameters each of which may itself carry
// `:`-separated sub-parameters (the extended SGR forms, e.g. `38:2:r:g:b`).
type Params struct {
	groups [][]int
	// overflow is set once a parameter beyond maxParams was started; the
	// digits and sub-parameters that follow are dropped.
	overflow bool
}

// maxParams bounds the parameter count the parser will accumulate; beyond
// this the sequence is dispatched with what was collected and the rest of
// the parameter bytes are ignored. At least 16 parameters must be retained;
// leave headroom for the extended colour forms.
const maxParams = 32

func (p *Params) reset() {
	p.groups = p.groups[:0]
	p.overflow = false
}

// Len returns the number of top-level (`;`-separated) parameters collected.
func (p *Params) Len() int { return len(p.groups) }

// Get returns the first (primary) value of the i'th top-level parameter, or
// def if that parameter is absent. A field given no digits reads as 0 (an
// empty field defaults to 0 per the wire protocol; callers substitute their
// own richer defaults, typically 1, on top of that).
func (p *Params) Get(i, def int) int {
	if i < 0 || i >= len(p.groups) || len(p.groups[i]) == 0 {
		return def
	}
	return p.groups[i][0]
}

// Sub returns every sub-parameter of the i'th top-level parameter (including
// the primary value at index 0), or nil if out of range.
func (p *Params) Sub(i int) []int {
	if i < 0 || i >= len(p.groups) {
		return nil
	}
	return p.groups[i]
}

// All returns every primary value, defaulting absent fields to 0.
func (p *Params) All() []int {
	out := make([]int, len(p.groups))
	for i, g := range p.groups {
		if len(g) > 0 {
			out[i] = g[0]
		}
	}
	return out
}

func (p *Params) startGroup() {
	if len(p.groups) >= maxParams {
		p.overflow = true
		return
	}
	p.groups = append(p.groups, []int{0})
}

func (p *Params) startSub() {
	if len(p.groups) == 0 || p.overflow {
		return
	}
	p.groups[len(p.groups)-1] = append(p.groups[len(p.groups)-1], 0)
}

func (p *Params) digit(d int) {
	if p.overflow {
		return
	}
	if len(p.groups) == 0 {
		p.startGroup()
	}
	g := p.groups[len(p.groups)-1]
	last := len(g) - 1
	// Clamp to avoid overflow on pathological input; VT parameters never
	// need to exceed 16 bits in practice.
	if g[last] > 0xFFFF {
		return
	}
	g[last] = g[last]*10 + d
}
