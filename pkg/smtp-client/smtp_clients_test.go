package smtp_client

import (
	"sync"
	"testing"

	"github.com/knadh/smtppool"
)

func TestNextPoolConcurrent(t *testing.T) {
	sc := &SmtpClients{
		servers: SmtpServerList{
			Servers: []SmtpServer{
				{Host: "smtp-a.example.com", Port: "587"},
				{Host: "smtp-b.example.com", Port: "587"},
				{Host: "smtp-c.example.com", Port: "587"},
			},
		},
		connectionPool: make([]*smtppool.Pool, 3),
	}

	const goroutines = 8
	const callsPerGoroutine = 50

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < callsPerGoroutine; i++ {
				index, _, err := sc.nextPool()
				if err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
				if index < 0 || index >= len(sc.connectionPool) {
					t.Errorf("index out of range: %d", index)
					return
				}
			}
		}()
	}
	wg.Wait()

	if sc.counter != goroutines*callsPerGoroutine {
		t.Errorf("lost counter increments: got %d, want %d", sc.counter, goroutines*callsPerGoroutine)
	}
}

func TestNextPoolRoundRobin(t *testing.T) {
	sc := &SmtpClients{
		connectionPool: make([]*smtppool.Pool, 2),
	}

	seen := map[int]int{}
	for i := 0; i < 6; i++ {
		index, _, err := sc.nextPool()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen[index]++
	}

	if seen[0] != 3 || seen[1] != 3 {
		t.Errorf("uneven distribution: %v", seen)
	}
}
