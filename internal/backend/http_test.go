package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/subitlab-buf/subboard-mng-gui/internal/domain"
	"github.com/subitlab-buf/subboard-mng-gui/internal/errors"
)

func TestBuildEndpoints(t *testing.T) {
	eps := BuildEndpoints("http://board.example.edu:8080", "/api/papers", "pending", "accept")
	if eps.PendingPapers != "http://board.example.edu:8080/api/papers/pending" {
		t.Errorf("PendingPapers = %q", eps.PendingPapers)
	}
	if eps.ProcessPaper != "http://board.example.edu:8080/api/papers/accept" {
		t.Errorf("ProcessPaper = %q", eps.ProcessPaper)
	}
}

func TestPendingPapersDecodesList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s", r.Method)
		}
		if r.URL.Path != "/api/papers/pending" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"pid": 1, "name": "a", "info": "first", "time": "2024-05-01T10:00:00Z", "color": "ff0000"},
			{"pid": 2, "name": "b", "info": "second", "time": "2024-05-01T11:00:00Z", "color": "00ff00", "processed": false}
		]`))
	}))
	defer srv.Close()

	client := NewHTTPClient(BuildEndpoints(srv.URL, "/api/papers", "pending", "accept"))
	papers, err := client.PendingPapers(context.Background())
	if err != nil {
		t.Fatalf("PendingPapers: %v", err)
	}
	if len(papers) != 2 {
		t.Fatalf("got %d papers", len(papers))
	}
	if papers[0].ID != 1 || papers[0].Decision != domain.DecisionPending {
		t.Errorf("paper 0 = %+v", papers[0])
	}
	if papers[1].Decision != domain.DecisionRejected {
		t.Errorf("paper 1 decision = %v", papers[1].Decision)
	}
}

func TestPendingPapersServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewHTTPClient(BuildEndpoints(srv.URL, "/api/papers", "pending", "accept"))
	if _, err := client.PendingPapers(context.Background()); !errors.IsCode(err, errors.CodeTransportFailed) {
		t.Fatalf("expected transport_failed, got %v", err)
	}
}

func TestPendingPapersDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "a list"}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(BuildEndpoints(srv.URL, "/api/papers", "pending", "accept"))
	if _, err := client.PendingPapers(context.Background()); !errors.IsCode(err, errors.CodeDecodeFailed) {
		t.Fatalf("expected decode_failed, got %v", err)
	}
}

func TestAcceptPaperSendsPidQuery(t *testing.T) {
	var gotMethod, gotPath, gotPid string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotPid = r.URL.Query().Get("pid")
	}))
	defer srv.Close()

	client := NewHTTPClient(BuildEndpoints(srv.URL, "/api/papers", "pending", "accept"))
	if err := client.AcceptPaper(context.Background(), 42); err != nil {
		t.Fatalf("AcceptPaper: %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("method = %s", gotMethod)
	}
	if gotPath != "/api/papers/accept" {
		t.Errorf("path = %s", gotPath)
	}
	if gotPid != "42" {
		t.Errorf("pid = %q", gotPid)
	}
}

func TestAcceptPaperServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewHTTPClient(BuildEndpoints(srv.URL, "/api/papers", "pending", "accept"))
	if err := client.AcceptPaper(context.Background(), 7); !errors.IsCode(err, errors.CodeAcceptFailed) {
		t.Fatalf("expected accept_failed, got %v", err)
	}
}

func TestRequestsHonorContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewHTTPClient(BuildEndpoints(srv.URL, "/api/papers", "pending", "accept"))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := client.PendingPapers(ctx); err == nil {
		t.Fatal("expected context deadline error")
	}
}
