package pool

import (
	"sync"
	"testing"
)

func TestGetPut_ExactLength(t *testing.T) {
	p := New[byte]()
	sizes := []int{0, 1, 256, 1024, 4096, 65536}
	for _, n := range sizes {
		b := p.Get(n)
		if len(b) != n {
			t.Errorf("Get(%d): len = %d, want %d", n, len(b), n)
		}
		p.Put(b)
	}
}

func TestReuse(t *testing.T) {
	p := New[int32]()

	b := p.Get(1024)
	b[0] = 42
	p.Put(b)

	b2 := p.Get(512)
	if len(b2) != 512 {
		t.Fatalf("Get(512): len = %d", len(b2))
	}
	// Whether or not the backing array was reused is not observable
	// correctness, but Get must never panic or under-allocate.
	p.Put(b2)
}

func TestGet_GrowsWhenPooledCapacityTooSmall(t *testing.T) {
	p := New[float32]()

	small := p.Get(4)
	p.Put(small)

	big := p.Get(4096)
	if len(big) != 4096 {
		t.Errorf("Get(4096): len = %d, want 4096", len(big))
	}
	p.Put(big)
}

func TestPut_NilSlice(t *testing.T) {
	p := New[byte]()
	p.Put(nil) // must not panic
	b := p.Get(16)
	if len(b) != 16 {
		t.Errorf("Get(16) after Put(nil): len = %d", len(b))
	}
}

func TestConcurrency(t *testing.T) {
	p := New[uint32]()
	const goroutines = 32
	const iterations = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				for _, n := range []int{4, 64, 1024, 8192} {
					b := p.Get(n)
					if len(b) != n {
						t.Errorf("concurrent Get(%d): len = %d", n, len(b))
						return
					}
					for j := range b {
						b[j] = uint32(j)
					}
					p.Put(b)
				}
			}
		}()
	}

	wg.Wait()
}

func BenchmarkGet(b *testing.B) {
	p := New[byte]()
	for i := 0; i < b.N; i++ {
		buf := p.Get(4096)
		p.Put(buf)
	}
}

func BenchmarkGetParallel(b *testing.B) {
	p := New[byte]()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			buf := p.Get(4096)
			p.Put(buf)
		}
	})
}
