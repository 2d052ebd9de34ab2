package source

// File is an immutable named source text. It is the unit a lexing pass
// runs over: create one per input, then obtain a [Cursor] with
// [File.Cursor].
type File struct {
	name  string
	runes []rune
}

// NewFile creates a File named name holding text.
func NewFile(name, text string) *File {
	return &File{name: name, runes: []rune(text)}
}

// Name returns the file's name.
func (f *File) Name() string { return f.name }

// Len returns the number of characters in the file.
func (f *File) Len() int { return len(f.runes) }

// Text returns the source text covered by sp. Locations outside the file
// are clamped.
func (f *File) Text(sp Span) string {
	start, end := int(sp.Start()), int(sp.End())+1
	if start < 0 {
		start = 0
	}
	if end > len(f.runes) {
		end = len(f.runes)
	}
	if start >= end {
		return ""
	}
	return string(f.runes[start:end])
}

// Position returns the 1-based line and column of loc, for diagnostics.
// Line breaks are LF, CR, LS and PS, with CRLF counting as one break.
// Locations at or past end of input report the position just after the
// last character.
func (f *File) Position(loc Loc) (line, col int) {
	line, col = 1, 1
	for i := 0; i < len(f.runes) && i < int(loc); i++ {
		switch f.runes[i] {
		case '\r':
			if i+1 < len(f.runes) && f.runes[i+1] == '\n' {
				continue // the LF half of CRLF breaks the line
			}
			line++
			col = 1
		case '\n', '\u2028', '\u2029':
			line++
			col = 1
		default:
			col++
		}
	}
	return line, col
}
