package types

// Stream is a lazy, finite sequence of FileEntry values.
//
// Usage follows bufio.Scanner:
//
//	for s.Next() {
//		e := s.Entry()
//	}
//	if err := s.Err(); err != nil { ... }
//
// A consumer may stop pulling at any point; Close releases whatever the
// stream still holds and is safe to call more than once.
type Stream interface {
	Next() bool
	Entry() FileEntry
	Err() error
	Close() error
}
