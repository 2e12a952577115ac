package ports

// IconRef points at an icon resource: a file holding icons and an index.
type IconRef struct {
	Path  string
	Index int
}

// MenuItem is one entry inserted into a host menu.
type MenuItem struct {
	ID    int
	Label string
	Icon  IconRef
}

// MenuHost is the host's native context menu as seen by a session.
type MenuHost interface {
	// ItemCount returns the number of items currently in the menu.
	ItemCount() int

	// ItemText returns the label of the item at position i.
	ItemText(i int) string

	// InsertItem inserts item at position pos.
	InsertItem(pos int, item MenuItem) error
}
