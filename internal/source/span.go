package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) within one source file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover widens the span to include other. Spans from different files are
// left untouched.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Text returns the bytes the span covers within f.
func (s Span) Text(f *File) string {
	if f == nil || s.Start > s.End || int(s.End) > len(f.Content) {
		return ""
	}
	return string(f.Content[s.Start:s.End])
}
