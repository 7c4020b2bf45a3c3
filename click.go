package nodemark

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/nodemark/editor"
)

// HandleClick resolves clicks near atoms.
//
// A click on an atom boundary or inside an atom lands on the boundary in two
// edits: now, a placeholder is inserted and selected there; on a later turn
// it is removed and, if the caret still rests there, the state turns active.
// A click one unit before an atom that did not hit document text lands on the
// atom start. Anything else resets the state and keeps the default placement.
func (p *Plugin) HandleClick(v *editor.View, off int, hit editor.Hit) bool {
	pl := p.locate(v, off)
	st := p.State(v)

	switch {
	case pl.Code.Boundary() || pl.Code.Interior():
		target := snap(pl, off)
		same := repeatedClick(v, pl, st, target)
		next := State{SamePos: same}
		p.log.Debug("click on boundary",
			zap.Int("offset", off),
			zap.Int("target", target),
			zap.Stringer("code", pl.Code),
			zap.Bool("same_pos", same),
		)
		if v.ReadOnly() {
			next.Active = true
			return v.Dispatch(editor.NewTransaction().SetCursor(target).SetMeta(p.key, next))
		}
		ph, ok := p.insertPlaceholder(v, target, next)
		if !ok {
			return false
		}
		next.Active = true
		v.Defer(p.sweep(ph, next))
		return true

	case pl.Code == TwoAwayLeft && hit.Kind != editor.HitText && hit.Kind != editor.HitGutter:
		p.log.Debug("click before atom", zap.Int("offset", off), zap.Stringer("hit", hit.Kind))
		return v.Dispatch(editor.NewTransaction().
			SetCursor(pl.After.Start).
			SetMeta(p.key, DefaultState()))

	default:
		p.reset(v)
		return false
	}
}

// repeatedClick reports a second click on the same ambiguous boundary: the
// caret already rests there, the previous click was not itself a repeat, and
// the boundary is an empty atom or sits between two atoms.
func repeatedClick(v *editor.View, pl Placement, st State, target int) bool {
	if st.SamePos {
		return false
	}
	off, ok := caret(v)
	if !ok || off != target {
		return false
	}
	emptyHere := pl.HasAfter && pl.After.Empty() && pl.After.Start == target
	return emptyHere || pl.Code == Between
}
