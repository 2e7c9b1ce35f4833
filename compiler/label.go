package compiler

// label is a to-be-resolved jump or call target. Every emitFixup call
// before the matching emitLabel writes a placeholder address and
// remembers where it was written; emitLabel backpatches all of them once
// the real address is known (spec's single-pass label/fixup assembler
// pattern, grounded on deepnoodle-ai-risor/compiler's label handling).
type label struct {
	resolved bool
	address  int
	fixups   []int
}

func (c *Compiler) newLabel() *label { return &label{} }

// emitLabel resolves lbl to the writer's current offset.
func (c *Compiler) emitLabel(lbl *label) {
	lbl.address = c.w.Offset()
	lbl.resolved = true
	for _, site := range lbl.fixups {
		c.w.PatchAddr(site, lbl.address)
	}
	lbl.fixups = nil
}

// emitFixup writes an address immediate pointing at lbl: the real
// address if already resolved, otherwise a placeholder patched in later.
func (c *Compiler) emitFixup(lbl *label) {
	if lbl.resolved {
		c.w.WriteAddr(lbl.address)
		return
	}
	site := c.w.Offset()
	c.w.WriteAddr(0)
	lbl.fixups = append(lbl.fixups, site)
}
