package rsacompat

import (
	"github.com/rsacompat/rsacompat-go/internal/rsalib"
	"github.com/rsacompat/rsacompat-go/pkg/rsacompat/bn"
)

type fieldLayout struct{}

type fieldValue struct {
	field rsalib.Field
	name  string
	v     *bn.Int
}

func (fieldLayout) name() string { return "direct-field" }

func (fieldLayout) bits(key *Key) int {
	n := key.Field(rsalib.FieldN)
	assert(n != nil, "key has no modulus")
	return n.NumBits()
}

// importKey assigns the fields directly. Values the key held before are
// released so a reused key does not leak them. An assignment only fails
// when the system library cannot copy the value.
func (fieldLayout) importKey(key *Key, c Components) error {
	assign := []fieldValue{
		{rsalib.FieldN, "n", c.N},
		{rsalib.FieldE, "e", c.E},
	}
	if c.IsPrivate() {
		assign = append(assign,
			fieldValue{rsalib.FieldD, "d", c.D},
			fieldValue{rsalib.FieldP, "p", c.P},
			fieldValue{rsalib.FieldQ, "q", c.Q},
			fieldValue{rsalib.FieldDmp1, "dmp1", c.Dmp1},
			fieldValue{rsalib.FieldDmq1, "dmq1", c.Dmq1},
			fieldValue{rsalib.FieldIqmp, "iqmp", c.Iqmp},
		)
	}

	stages := make([]transferStage, len(assign))
	for i, a := range assign {
		a := a // per-iteration copy; the go directive predates Go 1.22 loop semantics
		stages[i] = transferStage{
			name:   "rsa->" + a.name,
			commit: func() error { return key.Assign(a.field, a.v) },
			release: func() {
				v := unlessHeld(a.v, key.Field(a.field))
				if a.field == rsalib.FieldN || a.field == rsalib.FieldE {
					v.Free()
				} else {
					v.ClearFree()
				}
			},
		}
	}
	return commitStages(stages)
}

func (fieldLayout) exportKey(key *Key, private bool) Components {
	c := Components{N: key.Field(rsalib.FieldN), E: key.Field(rsalib.FieldE)}
	if private {
		c.D = key.Field(rsalib.FieldD)
		c.P, c.Q = key.Field(rsalib.FieldP), key.Field(rsalib.FieldQ)
		c.Dmp1 = key.Field(rsalib.FieldDmp1)
		c.Dmq1 = key.Field(rsalib.FieldDmq1)
		c.Iqmp = key.Field(rsalib.FieldIqmp)
	}
	return c
}
