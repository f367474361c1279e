package typeid

import (
	"sync"
	"testing"
)

type alpha struct{}
type beta struct{}

func TestID_StablePerType(t *testing.T) {
	first := ID[alpha]()
	if first == 0 {
		t.Fatal("Ids must start at 1")
	}

	for i := 0; i < 10; i++ {
		if got := ID[alpha](); got != first {
			t.Fatalf("ID changed between calls: %d then %d", first, got)
		}
	}
}

func TestID_DistinctTypes(t *testing.T) {
	if ID[alpha]() == ID[beta]() {
		t.Error("Distinct types must get distinct ids")
	}
	if ID[int]() == ID[int64]() {
		t.Error("int and int64 must get distinct ids")
	}
}

func TestID_Concurrent(t *testing.T) {
	type gamma struct{}

	var wg sync.WaitGroup
	got := make([]uint64, 16)
	for i := range got {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			got[slot] = ID[gamma]()
		}(i)
	}
	wg.Wait()

	for _, id := range got[1:] {
		if id != got[0] {
			t.Fatalf("Concurrent first use produced different ids: %v", got)
		}
	}
}

func TestName(t *testing.T) {
	if Name[alpha]() != "typeid.alpha" {
		t.Errorf("Name[alpha] = %q", Name[alpha]())
	}
	if Name[int]() != "int" {
		t.Errorf("Name[int] = %q", Name[int]())
	}
}
