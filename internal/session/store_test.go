package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/akravets/dbrain-bot/internal/domain"
)

func TestCreateAndGet(t *testing.T) {
	s := NewStore()

	if _, ok := s.Get(1); ok {
		t.Fatal("expected no session before Create")
	}

	s.Create(1, domain.DomainBusiness)

	sess, ok := s.Get(1)
	if !ok {
		t.Fatal("expected session after Create")
	}
	if sess.UserID != 1 || sess.Domain != domain.DomainBusiness {
		t.Errorf("unexpected session: %+v", sess)
	}
	if sess.State != domain.StateActive {
		t.Errorf("new session state = %q, want %q", sess.State, domain.StateActive)
	}
	if len(sess.History) != 0 {
		t.Errorf("new session history has %d turns, want 0", len(sess.History))
	}
}

func TestCreateReplacesExistingSession(t *testing.T) {
	s := NewStore()
	s.Create(1, domain.DomainBusiness)
	s.AppendTurn(1, domain.Turn{Role: domain.RoleUser, Content: "old"})

	s.Create(1, domain.DomainPersonal)

	sess, _ := s.Get(1)
	if sess.Domain != domain.DomainPersonal {
		t.Errorf("domain = %q, want replaced session's %q", sess.Domain, domain.DomainPersonal)
	}
	if len(sess.History) != 0 {
		t.Errorf("replaced session kept %d turns of old history", len(sess.History))
	}
}

func TestAppendTurnPreservesOrder(t *testing.T) {
	s := NewStore()
	s.Create(1, domain.DomainBusiness)

	const n = 25
	for i := 0; i < n; i++ {
		role := domain.RoleUser
		if i%2 == 1 {
			role = domain.RoleAssistant
		}
		s.AppendTurn(1, domain.Turn{Role: role, Content: fmt.Sprintf("turn-%d", i)})
	}

	sess, _ := s.Get(1)
	if len(sess.History) != n {
		t.Fatalf("history has %d turns, want %d", len(sess.History), n)
	}
	for i, turn := range sess.History {
		if want := fmt.Sprintf("turn-%d", i); turn.Content != want {
			t.Errorf("history[%d] = %q, want %q", i, turn.Content, want)
		}
	}
}

func TestAppendTurnWithoutSessionIsNoOp(t *testing.T) {
	s := NewStore()

	if s.AppendTurn(7, domain.Turn{Role: domain.RoleUser, Content: "hello"}) {
		t.Error("AppendTurn reported success without a session")
	}
	if _, ok := s.Get(7); ok {
		t.Error("AppendTurn created a session as a side effect")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Create(1, domain.DomainBusiness)
	s.AppendTurn(1, domain.Turn{Role: domain.RoleUser, Content: "original"})

	sess, _ := s.Get(1)
	sess.History[0].Content = "mutated"
	sess.History = append(sess.History, domain.Turn{Role: domain.RoleUser, Content: "extra"})

	fresh, _ := s.Get(1)
	if len(fresh.History) != 1 || fresh.History[0].Content != "original" {
		t.Errorf("stored history was mutated through a Get copy: %+v", fresh.History)
	}
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.Create(1, domain.DomainBusiness)

	if !s.Clear(1) {
		t.Error("Clear returned false for an existing session")
	}
	if s.Clear(1) {
		t.Error("second Clear returned true, breaking idempotence")
	}
	if _, ok := s.Get(1); ok {
		t.Error("session still present after Clear")
	}
}

func TestClearCancelsInFlight(t *testing.T) {
	s := NewStore()
	s.Create(1, domain.DomainBusiness)

	ctx, cancel := context.WithCancel(context.Background())
	s.SetInFlight(1, cancel)

	s.Clear(1)

	select {
	case <-ctx.Done():
	default:
		t.Error("Clear did not cancel the in-flight context")
	}
}

func TestUserIsolation(t *testing.T) {
	s := NewStore()
	s.Create(1, domain.DomainBusiness)
	s.Create(2, domain.DomainPersonal)

	s.AppendTurn(1, domain.Turn{Role: domain.RoleUser, Content: "for one"})
	s.Clear(2)

	sess, ok := s.Get(1)
	if !ok || len(sess.History) != 1 {
		t.Errorf("user 1's session affected by user 2's operations: %+v", sess)
	}
	if _, ok := s.Get(2); ok {
		t.Error("user 2's session survived its own Clear")
	}
	if s.Count() != 1 {
		t.Errorf("Count() = %d, want 1", s.Count())
	}
}

func TestConcurrentAppends(t *testing.T) {
	s := NewStore()
	const users = 8
	const turns = 50

	var wg sync.WaitGroup
	for u := int64(0); u < users; u++ {
		s.Create(u, domain.DomainBusiness)
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			for i := 0; i < turns; i++ {
				release := s.Acquire(userID)
				s.AppendTurn(userID, domain.Turn{Role: domain.RoleUser, Content: fmt.Sprintf("%d", i)})
				release()
			}
		}(u)
	}
	wg.Wait()

	for u := int64(0); u < users; u++ {
		sess, _ := s.Get(u)
		if len(sess.History) != turns {
			t.Errorf("user %d history has %d turns, want %d", u, len(sess.History), turns)
		}
	}
}

func TestAcquireSerializesPerUser(t *testing.T) {
	s := NewStore()

	release := s.Acquire(1)

	started := make(chan struct{})
	acquired := make(chan struct{})
	go func() {
		close(started)
		r := s.Acquire(1)
		close(acquired)
		r()
	}()

	<-started
	time.Sleep(20 * time.Millisecond)
	select {
	case <-acquired:
		t.Fatal("second Acquire succeeded while lock was held")
	default:
	}

	release()

	select {
	case <-acquired:
	case <-time.After(2 * time.Second):
		t.Fatal("second Acquire did not proceed after release")
	}
}
