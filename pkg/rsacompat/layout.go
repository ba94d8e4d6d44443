package rsacompat

import (
	"fmt"

	"github.com/rsacompat/rsacompat-go/internal/rsalib"
	"github.com/rsacompat/rsacompat-go/pkg/rsacompat/bn"
)

// keyLayout moves components in and out of a key for one library
// generation.
type keyLayout interface {
	name() string
	bits(key *Key) int
	importKey(key *Key, c Components) error
	exportKey(key *Key, private bool) Components
}

var layout = selectLayout(rsalib.Layout)

// selectLayout picks the strategy for the generation the linked library
// declares.
func selectLayout(generation string) keyLayout {
	if generation == rsalib.LayoutFields {
		return fieldLayout{}
	}
	return accessorLayout{}
}

// transferStage is one ownership transfer into a key. commit hands values
// to the key; release frees them when the stage never committed.
type transferStage struct {
	name    string
	commit  func() error
	release func()
}

// commitStages runs the stages in order. When stage k fails, stages k and
// later are released and the stages before k stay committed.
func commitStages(stages []transferStage) error {
	for i, s := range stages {
		if err := s.commit(); err != nil {
			for _, pending := range stages[i:] {
				pending.release()
			}
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}

// unlessHeld returns v, or nil when held is v. Values a key already holds
// must never be handed to it again or released on its behalf.
func unlessHeld(v, held *bn.Int) *bn.Int {
	if v == held {
		return nil
	}
	return v
}
