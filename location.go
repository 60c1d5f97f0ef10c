package atlas

// Location is the address-bar side of a History: the host updates it on
// programmatic navigation and moves through it on back/forward.
type Location interface {
	// Path returns the current location path.
	Path() string
	// Push adds a new entry and makes it current, dropping any forward entries.
	Push(path string)
	// Replace overwrites the current entry.
	Replace(path string)
}

// MemoryLocation is an in-memory Location with a back/forward stack.
// It stands in for a browser when there is none.
type MemoryLocation struct {
	entries []string
	index   int
}

// NewMemoryLocation creates a location whose only entry is path.
func NewMemoryLocation(path string) *MemoryLocation {
	return &MemoryLocation{entries: []string{path}}
}

func (l *MemoryLocation) Path() string {
	if len(l.entries) == 0 {
		return ""
	}
	return l.entries[l.index]
}

func (l *MemoryLocation) Push(path string) {
	if len(l.entries) == 0 {
		l.entries = []string{path}
		return
	}
	l.entries = append(l.entries[:l.index+1], path)
	l.index++
}

func (l *MemoryLocation) Replace(path string) {
	if len(l.entries) == 0 {
		l.entries = []string{path}
		return
	}
	l.entries[l.index] = path
}

// Back moves one entry back. It reports false when already at the first entry.
func (l *MemoryLocation) Back() bool {
	if l.index == 0 {
		return false
	}
	l.index--
	return true
}

// Forward moves one entry forward. It reports false when already at the last entry.
func (l *MemoryLocation) Forward() bool {
	if l.index >= len(l.entries)-1 {
		return false
	}
	l.index++
	return true
}

// Len is the number of entries in the stack.
func (l *MemoryLocation) Len() int {
	return len(l.entries)
}
