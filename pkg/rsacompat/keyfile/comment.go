package keyfile

import (
	"errors"
	"sync"

	"github.com/rsacompat/rsacompat-go/pkg/rsacompat"
)

var (
	commentMu  sync.Mutex
	commentIdx = -1
)

// commentIndex returns the ex-data index comments are stored under. renew
// allocates a new one, which is needed after rsacompat.Free has released
// the old index.
func commentIndex(renew bool) int {
	commentMu.Lock()
	defer commentMu.Unlock()
	if commentIdx < 0 || renew {
		commentIdx = rsacompat.NewExDataIndex("keyfile comment")
	}
	return commentIdx
}

// SetComment attaches an SSH comment to key. It lives as long as key.
func SetComment(key *rsacompat.Key, comment string) error {
	err := rsacompat.SetExData(key, commentIndex(false), comment)
	if errors.Is(err, rsacompat.ErrExData) {
		err = rsacompat.SetExData(key, commentIndex(true), comment)
	}
	return err
}

// Comment returns the comment attached to key, or "".
func Comment(key *rsacompat.Key) string {
	s, _ := key.ExData(commentIndex(false)).(string)
	return s
}
