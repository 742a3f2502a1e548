package queue

import (
	"fmt"
	"testing"

	. "github.com/ekw/ruleparse/internal/test"
)

func length(w *Worklist) int {
	return (w.tail + w.size + 1 - w.head) & w.size
}

func TestEmpty(t *testing.T) {
	w := New()
	ExpectInt(t, minSize+1, len(w.items))
	ExpectInt(t, 0, w.head)
	ExpectInt(t, 0, w.tail)
	ExpectBool(t, true, w.IsEmpty())

	i, f := w.Pop()
	ExpectInt(t, 0, i)
	ExpectBool(t, false, f)
}

func TestPrefilled(t *testing.T) {
	w := New(5, 6, 7)
	ExpectInt(t, 3, length(w))
	ExpectInt(t, minSize, w.size)

	w = New(1, 2, 3, 4)
	ExpectInt(t, 4, length(w))
	ExpectInt(t, (minSize<<1)+1, w.size)
	for i := 1; i <= 4; i++ {
		ExpectInt(t, i, w.items[i-1])
	}
}

func TestPushDedup(t *testing.T) {
	w := New()
	ExpectBool(t, true, w.Push(10))
	ExpectBool(t, false, w.Push(10))
	ExpectInt(t, 1, length(w))

	w.Pop()
	ExpectBool(t, false, w.Push(10))
	ExpectBool(t, true, w.seen.Contains(10))
	ExpectBool(t, false, w.seen.Contains(11))
	ExpectBool(t, true, w.IsEmpty())
}

func TestGrowWrapped(t *testing.T) {
	w := New(0, 1, 2)
	w.Pop()
	w.Pop()
	w.Push(3)
	w.Push(4)
	ExpectInt(t, 3, length(w))
	ExpectInt(t, minSize, w.size)

	w.Push(5)
	ExpectInt(t, (minSize<<1)+1, w.size)
	ExpectInt(t, 0, w.head)
	ExpectInt(t, 4, w.tail)

	for expected := 2; expected <= 5; expected++ {
		name := fmt.Sprintf("item %d", expected)
		t.Run(name, func(t *testing.T) {
			i, f := w.Pop()
			ExpectBool(t, true, f)
			ExpectInt(t, expected, i)
		})
	}
	ExpectBool(t, true, w.IsEmpty())
}

func TestFifoOrder(t *testing.T) {
	w := New()
	for i := 0; i < 100; i++ {
		w.Push(i)
		if i%3 == 2 {
			w.Pop()
		}
	}

	expected := 33
	for !w.IsEmpty() {
		i, _ := w.Pop()
		ExpectInt(t, expected, i)
		expected++
	}
	ExpectInt(t, 100, expected)
}
