package slices

import "testing"

func TestWindows(t *testing.T) {
	tests := []struct {
		in       []int
		expected []Window[int]
	}{
		{nil, nil},
		{[]int{1}, []Window[int]{{Prev: -1, Cur: 1, Next: -1}}},
		{[]int{1, 2, 3}, []Window[int]{
			{Prev: -1, Cur: 1, Next: 2, HasNext: true},
			{Prev: 1, Cur: 2, Next: 3, HasPrev: true, HasNext: true},
			{Prev: 2, Cur: 3, Next: -1, HasPrev: true},
		}},
	}

	for _, test := range tests {
		res := Windows(test.in, -1).Collect()
		if len(res) != len(test.expected) {
			t.Errorf("Windows(%v) yielded %d windows, expected %d", test.in, len(res), len(test.expected))
			continue
		}
		for i := range res {
			if res[i] != test.expected[i] {
				t.Errorf("Windows(%v)[%d] = %+v, expected %+v", test.in, i, res[i], test.expected[i])
			}
		}
	}
}

func TestWindowsReset(t *testing.T) {
	it := Windows([]string{"a", "b"}, "")
	first := it.Collect()
	if it.Next() {
		t.Fatal("Exhausted iterator advanced")
	}
	it.Reset()
	second := it.Collect()
	if len(first) != 2 || len(second) != 2 || first[1] != second[1] {
		t.Errorf("Reset did not restart iteration: %v vs %v", first, second)
	}
}

func TestRemove(t *testing.T) {
	l := []int{0, 1, 2, 3}
	l = Remove(l, 1)
	if len(l) != 3 || l[0] != 0 || l[1] != 2 || l[2] != 3 {
		t.Errorf("Remove(_, 1) = %v", l)
	}
	if i := Index(l, func(x int) bool { return x == 3 }); i != 2 {
		t.Errorf("Index of 3 = %d, expected 2", i)
	}
	if _, found := Find(l, func(x int) bool { return x == 1 }); found {
		t.Error("Removed element still found")
	}
}
