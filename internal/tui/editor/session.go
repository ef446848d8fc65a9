package editor

import (
	"crypto/sha256"
	"time"
)

// session tracks what the note looked like when it was loaded, so saves
// can notice the file changing underneath the editor.
type session struct {
	originalContent  string
	originalChecksum [32]byte
	originalModTime  time.Time
	allowOverwrite   bool
	pendingDiscard   bool
}

func (s *session) setOriginal(content string, modTime time.Time) {
	s.originalContent = content
	s.originalChecksum = sha256.Sum256([]byte(content))
	s.originalModTime = modTime
	s.allowOverwrite = false
	s.pendingDiscard = false
}

func (s *session) checksumMatches(content []byte) bool {
	sum := sha256.Sum256(content)
	return sum == s.originalChecksum
}
