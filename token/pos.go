package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc is a lazily-built offset index over a document. The newline
// index is computed on first line/column query, so documents that
// parse cleanly never pay for it.
type PosDoc struct {
	d     []byte
	n     []int
	built bool
}

func NewPosDoc(d []byte) *PosDoc {
	return &PosDoc{d: d}
}

func (p *PosDoc) Bytes() []byte {
	return p.d
}

func (p *PosDoc) index() {
	if p.built {
		return
	}
	p.built = true
	for i, c := range p.d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
}

// LineCol maps a byte offset to a 1-based line and column.
func (p *PosDoc) LineCol(off int) (int, int) {
	p.index()
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 1, off + 1
	}
	return di + 1, off - p.n[di-1]
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: p,
	}
}

func (p *PosDoc) End() *Pos {
	return p.Pos(len(p.d))
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

// snippetRadius bounds the amount of document text quoted in error
// messages around a position.
const snippetRadius = 15

// Snippet returns the document text within snippetRadius bytes of the
// position.
func (p *Pos) Snippet() string {
	d := p.D.Bytes()
	return string(d[max(0, p.I-snippetRadius):min(p.I+snippetRadius, len(d))])
}

func (p Pos) String() string {
	if p.D == nil {
		return fmt.Sprintf("offset %d", p.I)
	}
	sample := p.Snippet()
	if sample == "" {
		sample = "?"
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
