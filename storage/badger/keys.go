package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/answerit/core"
)

// Key prefixes for different data types
const (
	documentPrefix       = "docrec"
	documentNormPrefix   = "docnorm"
	documentKeywordPrefix = "dockw"
)

// makeDocumentKey generates a key for a document by ID.
func makeDocumentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", documentPrefix, id))
}

// makeNormTextKey generates a key for the normalized-text index.
// Format: prefix:text
func makeNormTextKey(text string) []byte {
	return []byte(documentNormPrefix + ":" + text)
}

// makeKeywordKey generates a composite key for the inverted keyword index.
// Format: prefix:word\x00:id. The NUL separator keeps word boundaries
// unambiguous since keyword phrases may contain spaces.
func makeKeywordKey(word string, id core.ID) []byte {
	prefix := []byte(documentKeywordPrefix + ":" + word + "\x00")
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	// BigEndian so lexicographic sort orders IDs numerically
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialKeywordKey generates the iteration prefix for one keyword word.
func makePartialKeywordKey(word string) []byte {
	return []byte(documentKeywordPrefix + ":" + word + "\x00")
}
