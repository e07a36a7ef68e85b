package core

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestRefreshCoordinator_SingleFlight(t *testing.T) {
	ctx := context.Background()
	coordinator := newRefreshCoordinator()

	var calls int32
	release := make(chan struct{})
	started := make(chan struct{})
	fn := func(context.Context) (Credential, error) {
		atomic.AddInt32(&calls, 1)
		close(started)
		<-release
		return Credential{AccessToken: "fresh", RefreshToken: "fresh-ref"}, nil
	}

	leaderDone := make(chan refreshOutcome, 1)
	go func() {
		out, leader := coordinator.awaitOrTrigger(ctx, fn)
		if !leader {
			t.Error("expected first caller to lead the refresh")
		}
		leaderDone <- out
	}()
	<-started

	var waiters sync.WaitGroup
	outcomes := make(chan refreshOutcome, 5)
	for i := 0; i < 5; i++ {
		waiters.Add(1)
		go func() {
			defer waiters.Done()
			out, leader := coordinator.awaitOrTrigger(ctx, fn)
			if leader {
				t.Error("expected queued caller to wait, not lead")
			}
			outcomes <- out
		}()
	}

	for {
		coordinator.mu.Lock()
		queued := len(coordinator.waiters)
		coordinator.mu.Unlock()
		if queued == 5 {
			break
		}
		time.Sleep(time.Millisecond)
	}

	close(release)
	waiters.Wait()
	close(outcomes)

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected a single refresh execution, got %d", got)
	}
	leaderOut := <-leaderDone
	if leaderOut.err != nil || leaderOut.credential.AccessToken != "fresh" {
		t.Fatalf("unexpected leader outcome: %+v", leaderOut)
	}
	for out := range outcomes {
		if out.err != nil || out.credential.AccessToken != "fresh" {
			t.Fatalf("expected every waiter to share the outcome, got %+v", out)
		}
	}
}

func TestRefreshCoordinator_NewWindowAfterSettle(t *testing.T) {
	ctx := context.Background()
	coordinator := newRefreshCoordinator()

	var calls int32
	fn := func(context.Context) (Credential, error) {
		atomic.AddInt32(&calls, 1)
		return Credential{AccessToken: "fresh", RefreshToken: "fresh-ref"}, nil
	}

	if _, leader := coordinator.awaitOrTrigger(ctx, fn); !leader {
		t.Fatal("expected first window to elect a leader")
	}
	if _, leader := coordinator.awaitOrTrigger(ctx, fn); !leader {
		t.Fatal("expected a settled coordinator to start a fresh window")
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("expected two independent refreshes, got %d", got)
	}
}

func TestRefreshCoordinator_WaiterHonorsContext(t *testing.T) {
	coordinator := newRefreshCoordinator()

	release := make(chan struct{})
	started := make(chan struct{})
	go coordinator.awaitOrTrigger(context.Background(), func(context.Context) (Credential, error) {
		close(started)
		<-release
		return Credential{}, nil
	})
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, leader := coordinator.awaitOrTrigger(ctx, func(context.Context) (Credential, error) {
		t.Error("cancelled waiter must not run the refresh")
		return Credential{}, nil
	})
	if leader {
		t.Fatal("expected cancelled caller to be a waiter")
	}
	if out.err == nil {
		t.Fatal("expected context error for cancelled waiter")
	}
	close(release)
}

func TestRefreshSession_RotatesTokensAndGuestSession(t *testing.T) {
	ctx := context.Background()
	adapter := &routedAdapter{}
	adapter.handler = func(req TransportRequest) (TransportResponse, error) {
		if strings.HasSuffix(req.URL, PathRefresh) {
			return TransportResponse{StatusCode: 200, Body: tokenEnvelopeBody("fresh", "fresh-ref")}, nil
		}
		return TransportResponse{StatusCode: 200, Body: envelopeBody(nil)}, nil
	}
	client := newTestClient(t, adapter)
	seedCredential(t, client, Credential{AccessToken: "stale", RefreshToken: "ref"})

	before, err := client.session.Ensure(ctx)
	if err != nil {
		t.Fatalf("ensure session: %v", err)
	}

	cred, err := client.RefreshSession(ctx)
	if err != nil {
		t.Fatalf("refresh session: %v", err)
	}
	if cred.AccessToken != "fresh" || cred.RefreshToken != "fresh-ref" {
		t.Fatalf("unexpected refreshed credential: %+v", cred)
	}

	after, err := client.session.Ensure(ctx)
	if err != nil {
		t.Fatalf("ensure session after refresh: %v", err)
	}
	if after == before {
		t.Fatal("expected guest session id to rotate after refresh")
	}

	refreshRequests := 0
	for _, req := range adapter.recorded() {
		if !strings.HasSuffix(req.URL, PathRefresh) {
			continue
		}
		refreshRequests++
		if bearerOf(req) != "" {
			t.Fatalf("refresh call must not carry a bearer token, got %q", bearerOf(req))
		}
		if !strings.Contains(string(req.Body), `"refresh_token":"ref"`) {
			t.Fatalf("unexpected refresh body: %s", req.Body)
		}
	}
	if refreshRequests != 1 {
		t.Fatalf("expected 1 refresh call, got %d", refreshRequests)
	}
}

func TestRefreshSession_WithoutRefreshTokenFails(t *testing.T) {
	ctx := context.Background()
	adapter := &routedAdapter{}
	redirector := &recordingRedirector{}
	client := newTestClient(t, adapter, WithLoginRedirector(redirector))

	if _, err := client.RefreshSession(ctx); err == nil {
		t.Fatal("expected refresh without a refresh token to fail")
	}
	if got := adapter.countPath(PathRefresh); got != 0 {
		t.Fatalf("expected no wire call, got %d", got)
	}
	if calls := redirector.calls(); len(calls) != 1 {
		t.Fatalf("expected forced logout, got %v", calls)
	}
}
