package assert

import (
	"math"
	"testing"
)

func Test_IntEqual_0(t *testing.T) {
	if !intEqual(3, uint64(3)) || !intEqual(uint8(7), int64(7)) || !intEqual(uint(5), 5) {
		t.Errorf("equal integers of different widths")
	}
}

func Test_IntEqual_1(t *testing.T) {
	if intEqual(uint(math.MaxUint64), int64(-1)) || intEqual(uint64(math.MaxUint64), -1) {
		t.Errorf("large unsigned value equal to negative value")
	}
	//
	if intEqual(int64(-1), uint(math.MaxUint64)) {
		t.Errorf("negative value equal to large unsigned value")
	}
}

func Test_IntEqual_2(t *testing.T) {
	if !intEqual(uint(math.MaxUint64), uint64(math.MaxUint64)) || !intEqual(uint64(1<<63), uint(1<<63)) {
		t.Errorf("equal large unsigned values")
	}
	//
	if intEqual(uint(math.MaxUint64), uint64(1<<63)) || intEqual("3", 3) {
		t.Errorf("unequal values")
	}
}
