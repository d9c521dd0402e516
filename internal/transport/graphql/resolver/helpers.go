package resolver

// refs converts a value slice into the pointer slice shape gqlgen expects
// for object lists. Pointers index into the original backing array.
func refs[T any](items []T) []*T {
	out := make([]*T, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}
