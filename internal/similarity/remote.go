package similarity

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

const remoteTimeout = 5 * time.Second

// Remote scores text pairs through a sentence-similarity inference
// endpoint. Any transport error, non-2xx status, malformed payload or
// out-of-range score falls back silently to the local engine, so the
// pipeline never depends on the remote being reachable.
type Remote struct {
	endpoint string
	apiKey   string
	client   *http.Client
	fallback *Local
}

type remoteRequest struct {
	Inputs remoteInputs `json:"inputs"`
}

type remoteInputs struct {
	SourceSentence string   `json:"source_sentence"`
	Sentences      []string `json:"sentences"`
}

func NewRemote(endpoint, apiKey string) *Remote {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil
	}
	return &Remote{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   strings.TrimSpace(apiKey),
		client:   &http.Client{Timeout: remoteTimeout},
		fallback: NewLocal(),
	}
}

func (r *Remote) Similarity(a, b string) float64 {
	if r == nil || r.client == nil {
		return NewLocal().Similarity(a, b)
	}
	if score, ok := r.remoteSimilarity(a, b); ok {
		return score
	}
	return r.fallback.Similarity(a, b)
}

func (r *Remote) remoteSimilarity(a, b string) (float64, bool) {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return 0, false
	}

	body, err := json.Marshal(remoteRequest{Inputs: remoteInputs{
		SourceSentence: a,
		Sentences:      []string{b},
	}})
	if err != nil {
		return 0, false
	}

	ctx, cancel := context.WithTimeout(context.Background(), remoteTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, false
	}
	req.Header.Set("Content-Type", "application/json")
	if r.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.apiKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, false
	}

	var scores []float64
	if err := json.NewDecoder(resp.Body).Decode(&scores); err != nil {
		return 0, false
	}
	if len(scores) == 0 || scores[0] < 0 || scores[0] > 1 {
		return 0, false
	}
	return scores[0], true
}

var _ Engine = (*Remote)(nil)
var _ Engine = (*Local)(nil)
