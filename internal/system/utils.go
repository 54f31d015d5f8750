// internal/system/utils.go
package system

import (
	"sort"

	"horde-in-town/internal/types"
)

// sortedIDs возвращает ключи карты компонентов по возрастанию,
// чтобы обход был детерминированным при одинаковом сиде.
func sortedIDs[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// removeID удаляет id из среза с сохранением порядка.
func removeID(ids []types.EntityID, id types.EntityID) []types.EntityID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
