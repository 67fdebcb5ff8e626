package similarity

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLocal_EmptyInputs(t *testing.T) {
	l := NewLocal()
	if got := l.Similarity("", "python developer"); got != 0 {
		t.Fatalf("similarity: expected 0 for empty input, got %v", got)
	}
	if got := l.Similarity("   ", "   "); got != 0 {
		t.Fatalf("similarity: expected 0 for blank inputs, got %v", got)
	}
}

func TestLocal_DisjointTextsScoreZero(t *testing.T) {
	l := NewLocal()
	got := l.Similarity("accounting payroll taxes", "kubernetes deployment cluster")
	if got != 0 {
		t.Fatalf("similarity: expected 0 for disjoint texts, got %v", got)
	}
}

func TestLocal_IdenticalTextsScoreHigh(t *testing.T) {
	l := NewLocal()
	text := "senior python developer building backend services with django postgresql and docker"
	got := l.Similarity(text, text)
	if got < 0.9 {
		t.Fatalf("similarity: expected near 1 for identical texts, got %v", got)
	}
	if got > 1 {
		t.Fatalf("similarity: expected clamp at 1, got %v", got)
	}
}

func TestLocal_ShortTextFloors(t *testing.T) {
	l := NewLocal()

	two := l.Similarity("python react", "python react angular vue docker kubernetes jenkins gitlab terraform ansible prometheus grafana elasticsearch")
	if two < 0.3 {
		t.Fatalf("similarity: expected floor 0.3 with 2 common words on short text, got %v", two)
	}

	three := l.Similarity("python react docker", "python react docker kubernetes jenkins gitlab terraform ansible prometheus grafana elasticsearch logstash")
	if three < 0.5 {
		t.Fatalf("similarity: expected floor 0.5 with 3 common words on short text, got %v", three)
	}
}

func TestLocal_IntersectionBonusBoundary(t *testing.T) {
	l := NewLocal()

	// Eleven words per span so the short-text floors stay out of the way.
	// Five common words: unigram 5/17, bigram 4/16, blended then boosted
	// by the intersection bonus.
	a5 := "alpha bravo charlie delta echo kilo lima mike november oscar papa"
	b5 := "alpha bravo charlie delta echo quebec romeo sierra tango uniform victor"
	got5 := l.Similarity(a5, b5)
	want5 := (0.7*(5.0/17.0) + 0.3*(4.0/16.0)) * 1.1
	if got5 < want5-0.001 || got5 > want5+0.001 {
		t.Fatalf("similarity: expected %.4f with the five-word bonus, got %v", want5, got5)
	}

	// Four common words: one below the bonus threshold, no boost.
	a4 := "alpha bravo charlie delta golf kilo lima mike november oscar papa"
	got4 := l.Similarity(a4, b5)
	want4 := 0.7*(4.0/18.0) + 0.3*(3.0/17.0)
	if got4 < want4-0.001 || got4 > want4+0.001 {
		t.Fatalf("similarity: expected %.4f without the bonus, got %v", want4, got4)
	}
}

func TestLocal_StopwordsIgnored(t *testing.T) {
	l := NewLocal()
	got := l.Similarity("the and with for", "the and with for")
	if got != 0 {
		t.Fatalf("similarity: expected 0 for stopword-only texts, got %v", got)
	}
}

func TestLocal_Range(t *testing.T) {
	l := NewLocal()
	pairs := [][2]string{
		{"python developer with react experience", "looking for react developer"},
		{"accountant ifrs audit", "python react node"},
		{"one", "one"},
	}
	for _, p := range pairs {
		got := l.Similarity(p[0], p[1])
		if got < 0 || got > 1 {
			t.Fatalf("similarity(%q, %q): out of range: %v", p[0], p[1], got)
		}
	}
}

func TestLocal_Deterministic(t *testing.T) {
	l := NewLocal()
	a := "fullstack developer react node docker aws"
	b := "senior react developer aws cloud experience"
	first := l.Similarity(a, b)
	for i := 0; i < 10; i++ {
		if got := l.Similarity(a, b); got != first {
			t.Fatalf("similarity: expected deterministic result %v, got %v", first, got)
		}
	}
}

func TestRemote_UsesEndpointScore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req remoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.Inputs.SourceSentence == "" || len(req.Inputs.Sentences) != 1 {
			t.Errorf("unexpected payload: %+v", req)
		}
		json.NewEncoder(w).Encode([]float64{0.83})
	}))
	defer srv.Close()

	r := NewRemote(srv.URL, "test-key")
	got := r.Similarity("python developer", "senior python engineer")
	if got != 0.83 {
		t.Fatalf("remote similarity: expected 0.83, got %v", got)
	}
}

func TestRemote_FallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := NewRemote(srv.URL, "")
	text := "python developer docker kubernetes"
	want := NewLocal().Similarity(text, text)
	if got := r.Similarity(text, text); got != want {
		t.Fatalf("remote similarity: expected local fallback %v, got %v", want, got)
	}
}

func TestRemote_FallsBackOnOutOfRangeScore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode([]float64{1.7})
	}))
	defer srv.Close()

	r := NewRemote(srv.URL, "")
	a := "python developer"
	b := "python developer"
	want := NewLocal().Similarity(a, b)
	if got := r.Similarity(a, b); got != want {
		t.Fatalf("remote similarity: expected local fallback %v, got %v", want, got)
	}
}

func TestNewRemote_EmptyEndpoint(t *testing.T) {
	if r := NewRemote("  ", "key"); r != nil {
		t.Fatalf("expected nil remote for empty endpoint, got %+v", r)
	}
}

func TestRemote_SendsBearerToken(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]float64{0.5})
	}))
	defer srv.Close()

	r := NewRemote(srv.URL, "secret")
	r.Similarity("a text here", "b text here")
	if !strings.HasPrefix(auth, "Bearer secret") {
		t.Fatalf("expected bearer token, got %q", auth)
	}
}
