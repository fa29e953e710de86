package services

type identified interface {
	GetID() int64
}

// dedupe keeps the first record of every id, preserving order.
func dedupe[T identified](items []T) []T {
	seen := make(map[int64]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.GetID()]; ok {
			continue
		}
		seen[it.GetID()] = struct{}{}
		out = append(out, it)
	}
	return out
}

// upsert replaces the record with the same id in place, or appends it.
func upsert[T identified](items []T, item T) []T {
	for i := range items {
		if items[i].GetID() == item.GetID() {
			items[i] = item
			return items
		}
	}
	return append(items, item)
}

func removeByID[T identified](items []T, id int64) []T {
	out := items[:0]
	for _, it := range items {
		if it.GetID() != id {
			out = append(out, it)
		}
	}
	return out
}

func findByID[T identified](items []T, id int64) (T, bool) {
	for _, it := range items {
		if it.GetID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}
