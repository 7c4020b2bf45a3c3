package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/iw2rmb/nodemark/buffer"
	"github.com/iw2rmb/nodemark/editor"
)

// document describes what the demo opens.
type document struct {
	NodeType     string `toml:"node_type"`
	Text         string `toml:"text"`
	ShowLineNums bool   `toml:"show_line_nums"`
	ReadOnly     bool   `toml:"read_only"`
	Wrap         string `toml:"wrap"` // "", "none", "word" or "grapheme"
	Atoms        []atom `toml:"atoms"`
}

// atom is one [[atoms]] entry. Type defaults to the document node type.
type atom struct {
	Type  string `toml:"type"`
	Start int    `toml:"start"`
	Size  int    `toml:"size"`
	Label string `toml:"label"`
}

const defaultDocument = `
node_type = "mention"
show_line_nums = true
text = """Hi @ana, meet @bob.
Zero-size: [] here.
Ctrl+C quits."""

[[atoms]]
start = 3
size = 4

[[atoms]]
start = 14
size = 4

[[atoms]]
start = 32
label = "@team"
`

// loadDocument decodes path, or the built-in document when path is empty.
func loadDocument(path string) (document, error) {
	var (
		doc document
		md  toml.MetaData
		err error
	)
	if path == "" {
		md, err = toml.Decode(defaultDocument, &doc)
	} else {
		md, err = toml.DecodeFile(path, &doc)
	}
	if err != nil {
		return document{}, fmt.Errorf("decode document: %w", err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return document{}, fmt.Errorf("decode document: unknown keys %s", strings.Join(names, ", "))
	}
	if doc.NodeType == "" {
		doc.NodeType = "mention"
	}
	if _, err := doc.wrapMode(); err != nil {
		return document{}, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

func (d document) wrapMode() (editor.WrapMode, error) {
	switch d.Wrap {
	case "", "none":
		return editor.WrapNone, nil
	case "word":
		return editor.WrapWord, nil
	case "grapheme":
		return editor.WrapGrapheme, nil
	default:
		return editor.WrapNone, fmt.Errorf("unknown wrap mode %q", d.Wrap)
	}
}

func (d document) atomSpecs() []buffer.AtomSpec {
	specs := make([]buffer.AtomSpec, 0, len(d.Atoms))
	for _, a := range d.Atoms {
		typ := a.Type
		if typ == "" {
			typ = d.NodeType
		}
		specs = append(specs, buffer.AtomSpec{
			Type:  buffer.NodeType(typ),
			Start: a.Start,
			Size:  a.Size,
			Label: a.Label,
		})
	}
	return specs
}
