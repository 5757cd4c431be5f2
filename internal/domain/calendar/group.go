package calendar

import "time"

// KeyGroup holds the records sharing one grouping key within a single day.
type KeyGroup[T any] struct {
	Key   string
	Count int
	Items []T
}

// DayGroup is the derived aggregate for one calendar day. Keys preserves
// first-encounter order so grids render cells deterministically.
type DayGroup[T any] struct {
	Date   time.Time
	Keys   []string
	Groups map[string]*KeyGroup[T]
}

// GroupByDayAndKey joins flat records to a day sequence. For each day it
// selects the records whose calendar date (per dateFn) equals the day's date,
// then partitions them by keyFn. Days with no matching records still get an
// entry with an empty group map, so callers can render "no schedule" cells
// uniformly.
//
// Records are pre-bucketed by date once, so the whole join runs in
// O(days + records). keyFn output is not validated; collapsing semantically
// distinct records under one key is a caller error.
func GroupByDayAndKey[T any](days []Day, records []T, dateFn func(T) time.Time, keyFn func(T) string) map[string]*DayGroup[T] {
	byDate := make(map[string][]T, len(days))
	for _, rec := range records {
		k := DateKey(dateFn(rec))
		byDate[k] = append(byDate[k], rec)
	}

	result := make(map[string]*DayGroup[T], len(days))
	for _, day := range days {
		dk := DateKey(day.Date)
		group := &DayGroup[T]{
			Date:   day.Date,
			Groups: make(map[string]*KeyGroup[T]),
		}
		for _, rec := range byDate[dk] {
			key := keyFn(rec)
			kg, ok := group.Groups[key]
			if !ok {
				kg = &KeyGroup[T]{Key: key}
				group.Groups[key] = kg
				group.Keys = append(group.Keys, key)
			}
			kg.Count++
			kg.Items = append(kg.Items, rec)
		}
		result[dk] = group
	}

	return result
}
