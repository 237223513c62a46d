package account

import "sync"

// UndoStack records deck additions so the latest can be taken back. It is
// owned by one login session. A nil stack records nothing and is always empty.
type UndoStack struct {
	mu    sync.Mutex
	names []string
}

// Push records an addition.
func (u *UndoStack) Push(name string) {
	if u == nil {
		return
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.names = append(u.names, name)
}

// Pop removes and returns the latest addition.
func (u *UndoStack) Pop() (string, bool) {
	if u == nil {
		return "", false
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if len(u.names) == 0 {
		return "", false
	}
	name := u.names[len(u.names)-1]
	u.names = u.names[:len(u.names)-1]
	return name, true
}

// Len reports the number of pending additions.
func (u *UndoStack) Len() int {
	if u == nil {
		return 0
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.names)
}
