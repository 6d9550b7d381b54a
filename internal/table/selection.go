package table

// ToggleRow returns the selection with row removed if it is a member, or
// appended otherwise. Membership is pointer identity. The input slice is not
// modified and the remaining members keep their order.
func ToggleRow[T any](selection []*T, row *T) []*T {
	next := make([]*T, 0, len(selection)+1)
	found := false
	for _, r := range selection {
		if r == row {
			found = true
			continue
		}
		next = append(next, r)
	}
	if !found {
		next = append(next, row)
	}
	return next
}

// IsSelected reports whether row is a member of selection.
func IsSelected[T any](selection []*T, row *T) bool {
	for _, r := range selection {
		if r == row {
			return true
		}
	}
	return false
}
