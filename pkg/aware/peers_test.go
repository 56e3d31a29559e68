package aware

import (
	"testing"

	"github.com/awaremux/awaremux-go/pkg/hal"
)

func TestPeerIdentityMap(t *testing.T) {
	macA := hal.MAC{0x02, 0, 0, 0, 0, 0xA}
	macB := hal.MAC{0x02, 0, 0, 0, 0, 0xB}

	peers := NewPeerIdentityMap()
	if _, ok := peers.Resolve(1, 9); ok {
		t.Fatal("Resolve on empty map reported a peer")
	}

	peers.Observe(1, 9, macA)
	if got, ok := peers.Resolve(1, 9); !ok || got != macA {
		t.Fatalf("Resolve(1, 9) = %v, %v; want %v, true", got, ok, macA)
	}

	t.Run("rotation replaces address", func(t *testing.T) {
		peers.Observe(1, 9, macB)
		if got, _ := peers.Resolve(1, 9); got != macB {
			t.Errorf("Resolve(1, 9) = %v, want %v", got, macB)
		}
		if got := peers.Len(); got != 1 {
			t.Errorf("Len() = %d, want 1", got)
		}
	})

	t.Run("keyed by session and peer", func(t *testing.T) {
		peers.Observe(2, 9, macA)
		if got, _ := peers.Resolve(2, 9); got != macA {
			t.Errorf("Resolve(2, 9) = %v, want %v", got, macA)
		}
		if got, _ := peers.Resolve(1, 9); got != macB {
			t.Errorf("Resolve(1, 9) = %v, want %v", got, macB)
		}
		if _, ok := peers.Resolve(1, 10); ok {
			t.Error("Resolve(1, 10) reported an unseen peer")
		}
	})
}
