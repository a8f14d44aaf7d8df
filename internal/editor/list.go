// Package editor implements the ordered-list mutation contract shared by the
// brief question editor and the technical-spec block editor: append with a
// generated id, merge-update by index, remove by index, and index-pure move.
// Out-of-range indices are silent no-ops.
package editor

func inRange[T any](items []T, index int) bool {
	return index >= 0 && index < len(items)
}

func removeAt[T any](items []T, index int) []T {
	if !inRange(items, index) {
		return items
	}
	return append(items[:index], items[index+1:]...)
}

func insertAt[T any](items []T, index int, item T) []T {
	if index < 0 {
		index = 0
	}
	if index > len(items) {
		index = len(items)
	}
	items = append(items, item)
	copy(items[index+1:], items[index:])
	items[index] = item
	return items
}

// moveItem relocates one element, preserving the relative order of all
// others. The target index is interpreted against the list with the moved
// element already removed, which makes move(from, to) / move(to, from) an
// exact inverse pair.
func moveItem[T any](items []T, from, to int) []T {
	if from == to || !inRange(items, from) {
		return items
	}
	if to < 0 || to >= len(items) {
		return items
	}
	item := items[from]
	items = removeAt(items, from)
	return insertAt(items, to, item)
}
