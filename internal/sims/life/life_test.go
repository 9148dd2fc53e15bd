package life

import (
	"testing"

	"cycle-ca/internal/cycle"
)

func TestBlinkerOscillation(t *testing.T) {
	life := New(5, 5).With([2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	w := life.Size().W

	life = Step(life)

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < w; x++ {
			alive := life.Alive(x, y)
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	life = Step(life)

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < w; x++ {
			alive := life.Alive(x, y)
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestBlinkerCycle(t *testing.T) {
	blinker := New(5, 5).With([2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	res, err := cycle.Project(blinker, Step, 1_000_000_001)
	if err != nil {
		t.Fatal(err)
	}
	if res.Cycle == nil {
		t.Fatal("expected the blinker to cycle")
	}
	if *res.Cycle != (cycle.Record{Offset: 0, Period: 2}) {
		t.Fatalf("cycle = %+v, expected offset 0 period 2", *res.Cycle)
	}
	if !res.State.Alive(1, 2) || res.State.Alive(2, 1) {
		t.Fatalf("odd target should land on the horizontal phase:\n%s", res.State)
	}
}

func TestBlockIsFixedPoint(t *testing.T) {
	block := New(4, 4).With([2]int{1, 1}, [2]int{2, 1}, [2]int{1, 2}, [2]int{2, 2})

	res, err := cycle.Project(block, Step, 1<<40)
	if err != nil {
		t.Fatal(err)
	}
	if res.Cycle == nil || res.Cycle.Offset != 0 || res.Cycle.Period != 1 {
		t.Fatalf("cycle = %+v, expected fixed point at 0", res.Cycle)
	}
	if res.Summary != 4 {
		t.Fatalf("summary = %d, expected 4", res.Summary)
	}
}

func TestGliderDiesAtEdge(t *testing.T) {
	// Without wraparound a glider crashes into the corner and settles.
	glider := New(6, 6).With([2]int{1, 0}, [2]int{2, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2})

	for _, n := range []int64{3, 12, 40, 1000} {
		naive, err := cycle.Simulate(glider, Step, n)
		if err != nil {
			t.Fatal(err)
		}
		res, err := cycle.Project(glider, Step, n)
		if err != nil {
			t.Fatal(err)
		}
		if naive.Summary != res.Summary || naive.State.String() != res.State.String() {
			t.Fatalf("target %d: projected\n%s\nsimulated\n%s", n, res.State, naive.State)
		}
	}
}

func TestRandomBoardsProjectLikeSimulation(t *testing.T) {
	for s := int64(1); s <= 3; s++ {
		b := Random(16, 16, 0.35, s)
		for _, n := range []int64{0, 7, 90, 333} {
			naive, err := cycle.Simulate(b, Step, n)
			if err != nil {
				t.Fatal(err)
			}
			res, err := cycle.Project(b, Step, n)
			if err != nil {
				t.Fatal(err)
			}
			if naive.Summary != res.Summary {
				t.Fatalf("seed %d target %d: projected %d, simulated %d", s, n, res.Summary, naive.Summary)
			}
		}
	}
}
