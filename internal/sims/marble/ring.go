package marble

// Ring is a circular sequence stored in a growable circular buffer. The
// back element is the "current" position; rotating moves elements between
// the two ends so every operation is index arithmetic with wraparound.
type Ring struct {
	buf  []int
	head int
	size int
}

// NewRing returns an empty ring with room for capacity elements.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{buf: make([]int, capacity)}
}

// Len returns the number of elements.
func (r *Ring) Len() int { return r.size }

func (r *Ring) slot(i int) int { return (r.head + i) % len(r.buf) }

func (r *Ring) grow() {
	buf := make([]int, 2*len(r.buf))
	for i := 0; i < r.size; i++ {
		buf[i] = r.buf[r.slot(i)]
	}
	r.buf, r.head = buf, 0
}

// PushBack appends v after the current element and makes it current.
func (r *Ring) PushBack(v int) {
	if r.size == len(r.buf) {
		r.grow()
	}
	r.buf[r.slot(r.size)] = v
	r.size++
}

// PushFront inserts v clockwise of the current element.
func (r *Ring) PushFront(v int) {
	if r.size == len(r.buf) {
		r.grow()
	}
	r.head = (r.head - 1 + len(r.buf)) % len(r.buf)
	r.buf[r.head] = v
	r.size++
}

// PopBack removes and returns the current element. The element
// counter-clockwise of it becomes current.
func (r *Ring) PopBack() int {
	if r.size == 0 {
		panic("marble: PopBack on empty ring")
	}
	r.size--
	return r.buf[r.slot(r.size)]
}

// PopFront removes and returns the element clockwise of the current one.
func (r *Ring) PopFront() int {
	if r.size == 0 {
		panic("marble: PopFront on empty ring")
	}
	v := r.buf[r.head]
	r.head = (r.head + 1) % len(r.buf)
	r.size--
	return v
}

// Back returns the current element.
func (r *Ring) Back() int {
	if r.size == 0 {
		panic("marble: Back on empty ring")
	}
	return r.buf[r.slot(r.size-1)]
}

// Rotate moves the current position k elements clockwise, or -k
// counter-clockwise for negative k.
func (r *Ring) Rotate(k int) {
	if r.size < 2 {
		return
	}
	for ; k > 0; k-- {
		r.PushBack(r.PopFront())
	}
	for ; k < 0; k++ {
		r.PushFront(r.PopBack())
	}
}

// Values returns the elements clockwise starting just after the current
// one and ending with it.
func (r *Ring) Values() []int {
	out := make([]int, r.size)
	for i := range out {
		out[i] = r.buf[r.slot(i)]
	}
	return out
}
