package nodemark

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/nodemark/editor"
)

// HandleTextInput runs before text is committed. When the caret sits on or
// inside an atom, the text is steered to the boundary: a single space is
// inserted directly, anything else goes through a selected placeholder that
// the default insertion then replaces.
func (p *Plugin) HandleTextInput(v *editor.View, text string) bool {
	off, ok := caret(v)
	if !ok || text == "" || v.ReadOnly() {
		return false
	}
	pl := p.locate(v, off)
	if !pl.Code.Boundary() && !pl.Code.Interior() {
		return false
	}
	target := snap(pl, off)

	if text == " " {
		handled := v.Dispatch(editor.NewTransaction().
			InsertText(target, " ").
			SetCursor(target+1).
			SetMeta(p.key, DefaultState()))
		p.log.Debug("input space", zap.Int("offset", target), zap.Stringer("code", pl.Code))
		return handled
	}

	ph, ok := p.insertPlaceholder(v, target, DefaultState())
	if ok {
		v.Defer(p.sweep(ph, DefaultState()))
	}
	p.log.Debug("input placeholder", zap.Int("offset", target), zap.Stringer("code", pl.Code))
	return false
}

// snap moves an interior caret to the nearer boundary of its atom; ties go
// to the end. Boundary carets stay where they are.
func snap(pl Placement, off int) int {
	if !pl.Code.Interior() {
		return off
	}
	a := pl.Before
	if off-a.Start < a.End()-off {
		return a.Start
	}
	return a.End()
}

// placeholder is one inserted placeholder: where it went and how many the
// document held before it.
type placeholder struct {
	at    int
	prior int
}

// insertPlaceholder inserts a placeholder at off and selects it.
func (p *Plugin) insertPlaceholder(v *editor.View, off int, st State) (placeholder, bool) {
	ph := placeholder{at: off, prior: len(v.Doc().IndexRune(Placeholder))}
	ok := v.Dispatch(editor.NewTransaction().
		InsertText(off, string(Placeholder)).
		SetSelection(off, off+1).
		SetMeta(p.key, st))
	return ph, ok
}

// sweep returns a deferred task that removes the placeholder ph. Other
// U+200B runes in the document are left alone: when the count is back to
// what it was before the insertion the placeholder has been replaced and
// the task does nothing; otherwise the occurrence nearest to where it was
// inserted goes.
//
// The edit is tagged with want only when the caret still rests where the
// placeholder was and that offset is an atom boundary. A caret moved or a
// document changed in the meantime leaves the default state.
func (p *Plugin) sweep(ph placeholder, want State) func(*editor.View) {
	return func(v *editor.View) {
		if !v.Live() {
			return
		}
		offs := v.Doc().IndexRune(Placeholder)
		if len(offs) <= ph.prior {
			p.log.Debug("sweep: placeholder already replaced")
			return
		}
		at := nearest(offs, ph.at)

		tx := editor.NewTransaction().Delete(at, at+1)
		anchor, head, ranged := v.Selection()
		if ranged && min(anchor, head) == at && max(anchor, head) == at+1 {
			tx.SetCursor(at)
		}
		tx.SetMeta(p.key, DefaultState())
		if !v.Dispatch(tx) {
			return
		}

		st := DefaultState()
		if off, ok := caret(v); want.Active && ok && off == at && p.locate(v, at).Code.Boundary() {
			st = want
			v.Dispatch(editor.NewTransaction().SetMeta(p.key, st))
		}
		p.log.Debug("sweep", zap.Int("offset", at), zap.Bool("active", st.Active))
	}
}

// nearest returns the element of offs closest to off; ties go to the
// earlier one.
func nearest(offs []int, off int) int {
	best := offs[0]
	for _, o := range offs[1:] {
		if abs(o-off) < abs(best-off) {
			best = o
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
