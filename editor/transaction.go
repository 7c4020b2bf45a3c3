package editor

import "github.com/iw2rmb/nodemark/buffer"

// Transaction is one editor update: document steps, an optional resulting
// selection, and metadata addressed to plugins.
//
// Offsets of each step refer to the document produced by the previous steps;
// the selection refers to the document after all steps.
type Transaction struct {
	steps []buffer.Step
	meta  map[PluginKey]any

	selSet       bool
	anchor, head int

	external   bool
	docChanged bool
}

// NewTransaction returns an empty transaction.
func NewTransaction() *Transaction { return &Transaction{} }

func (tx *Transaction) Replace(from, to int, text string) *Transaction {
	tx.steps = append(tx.steps, buffer.ReplaceStep(from, to, text))
	return tx
}

func (tx *Transaction) InsertText(at int, text string) *Transaction {
	return tx.Replace(at, at, text)
}

func (tx *Transaction) Delete(from, to int) *Transaction {
	return tx.Replace(from, to, "")
}

// InsertAtom inserts content at off and registers it as an atom of typ.
func (tx *Transaction) InsertAtom(at int, typ buffer.NodeType, content, label string) *Transaction {
	tx.steps = append(tx.steps, buffer.InsertAtomStep(at, typ, content, label))
	return tx
}

// DeleteAtom removes the atom and its content.
func (tx *Transaction) DeleteAtom(id uint64) *Transaction {
	tx.steps = append(tx.steps, buffer.RemoveAtomStep(id))
	return tx
}

// SetSelection selects [anchor, head) with the caret at head.
func (tx *Transaction) SetSelection(anchor, head int) *Transaction {
	tx.selSet = true
	tx.anchor, tx.head = anchor, head
	return tx
}

func (tx *Transaction) SetCursor(off int) *Transaction {
	return tx.SetSelection(off, off)
}

func (tx *Transaction) SetMeta(key PluginKey, v any) *Transaction {
	if tx.meta == nil {
		tx.meta = make(map[PluginKey]any)
	}
	tx.meta[key] = v
	return tx
}

// Meta returns the metadata attached for key.
func (tx *Transaction) Meta(key PluginKey) (any, bool) {
	v, ok := tx.meta[key]
	return v, ok
}

func (tx *Transaction) Steps() []buffer.Step {
	return append([]buffer.Step(nil), tx.steps...)
}

// Selection returns the selection the transaction sets, if any.
func (tx *Transaction) Selection() (anchor, head int, ok bool) {
	return tx.anchor, tx.head, tx.selSet
}

// DocChanged reports whether dispatching the transaction changed the
// document. It is meaningful once the transaction has been applied.
func (tx *Transaction) DocChanged() bool { return tx.docChanged }

// External reports whether the editor synthesized the transaction for a
// mutation that bypassed Dispatch (default key handling, host code). External
// transactions never carry metadata.
func (tx *Transaction) External() bool { return tx.external }
