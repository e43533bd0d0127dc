package queue

import (
	"slices"
	"sync"
	"testing"
)

type card struct {
	id   string
	code uint32
}

func TestQueue_FIFO(t *testing.T) {
	q := New[card]()
	if !q.Empty() || q.Len() != 0 {
		t.Fatalf("new queue not empty: len %d", q.Len())
	}
	if got := q.Pop(); got != (card{}) {
		t.Errorf("Pop on empty = %+v, want zero value", got)
	}
	if _, ok := q.Peek(); ok {
		t.Error("Peek on empty reported an item")
	}

	q.Push(card{"card_100_1", 100})
	q.Push(card{"card_100_2", 100}, card{"card_200_1", 200})

	if head, ok := q.Peek(); !ok || head.id != "card_100_1" {
		t.Errorf("Peek = %+v, %v", head, ok)
	}
	if q.Len() != 3 {
		t.Errorf("Peek changed length to %d", q.Len())
	}
	for _, want := range []string{"card_100_1", "card_100_2", "card_200_1"} {
		if got := q.Pop(); got.id != want {
			t.Errorf("Pop = %s, want %s", got.id, want)
		}
	}
	if !q.Empty() {
		t.Error("queue should be empty after popping everything")
	}
}

func TestQueue_Remove(t *testing.T) {
	q := New[card]()
	q.Push(card{"a", 1}, card{"b", 2}, card{"c", 2}, card{"d", 3})

	got, ok := q.Remove(func(c card) bool { return c.code == 2 })
	if !ok || got.id != "b" {
		t.Fatalf("Remove = %+v, %v; want first match b", got, ok)
	}
	if ids := idsOf(q.Items()); !slices.Equal(ids, []string{"a", "c", "d"}) {
		t.Errorf("remaining order = %v", ids)
	}

	if _, ok := q.Remove(func(c card) bool { return c.code == 9 }); ok {
		t.Error("Remove matched a missing code")
	}
	if q.Len() != 3 {
		t.Errorf("failed Remove changed length to %d", q.Len())
	}
}

func TestQueue_ItemsIsCopy(t *testing.T) {
	q := New[card]()
	q.Push(card{"a", 1})

	items := q.Items()
	items[0].id = "mutated"

	if head, _ := q.Peek(); head.id != "a" {
		t.Errorf("Items shares storage with the queue: head %q", head.id)
	}
}

func TestQueue_GetAndEmpty(t *testing.T) {
	q := New[card]()
	q.Push(card{"a", 1}, card{"b", 2})

	drained := q.GetAndEmpty()
	if ids := idsOf(drained); !slices.Equal(ids, []string{"a", "b"}) {
		t.Errorf("drained = %v", ids)
	}
	if !q.Empty() {
		t.Error("queue not empty after GetAndEmpty")
	}

	q.Push(card{"c", 3})
	if drained[0].id != "a" {
		t.Error("push after drain overwrote the drained slice")
	}
	if len(q.GetAndEmpty()) != 1 {
		t.Error("second drain should hold the new item only")
	}
}

func TestQueue_Concurrent(t *testing.T) {
	q := New[int]()
	const workers, perWorker = 8, 250

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perWorker {
				q.Push(w*perWorker + i)
			}
		}()
	}

	var drained []int
	var mu sync.Mutex
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range 50 {
			part := q.GetAndEmpty()
			mu.Lock()
			drained = append(drained, part...)
			mu.Unlock()
		}
	}()
	wg.Wait()
	drained = append(drained, q.GetAndEmpty()...)

	if len(drained) != workers*perWorker {
		t.Fatalf("got %d items, want %d", len(drained), workers*perWorker)
	}
	slices.Sort(drained)
	for i, v := range drained {
		if v != i {
			t.Fatalf("item %d = %d; items lost or duplicated", i, v)
		}
	}
}

func idsOf(cards []card) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.id
	}
	return ids
}
