package models

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"ContentCrewAI/app/utils/restclient"
)

func newTestClient(rc restclient.Interface) *LLMClient {
	return &LLMClient{restClient: rc, model: DefaultModel, embeddingsModel: "text-embedding-3-small"}
}

func TestGenerate(t *testing.T) {
	ok := []byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"generated text"}}]}`)

	cases := []struct {
		name    string
		body    []byte
		status  int
		err     error
		want    string
		wantErr bool
	}{
		{"ok", ok, 200, nil, "generated text", false},
		{"transport_error", []byte(nil), 0, errors.New("dial"), "", true},
		{"http_error", []byte(`{"error":{"message":"rate limit"}}`), 429, nil, "", true},
		{"bad_json", []byte(`{`), 200, nil, "", true},
		{"no_choices", []byte(`{"choices":[]}`), 200, nil, "", true},
	}

	for _, cse := range cases {
		t.Run(cse.name, func(t *testing.T) {
			rc := new(restclient.MockRestClient)
			rc.On("Post", mock.Anything, endpoint, mock.Anything, mock.Anything).
				Return(cse.body, cse.status, cse.err)

			mc := newTestClient(rc)
			got, err := mc.Generate(context.Background(), []Message{{Role: "user", Content: "hi"}}, 0.7, 800)
			if cse.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != cse.want {
				t.Fatalf("got %q, want %q", got, cse.want)
			}
		})
	}
}

func TestGenerateSendsRoleParameters(t *testing.T) {
	rc := new(restclient.MockRestClient)
	var sent requestPayload
	rc.On("Post", mock.Anything, endpoint, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(2).(requestPayload)
		}).
		Return([]byte(`{"choices":[{"message":{"role":"assistant","content":"x"}}]}`), 200, nil)

	mc := newTestClient(rc)
	msgs := []Message{
		{Role: "system", Content: "instructions"},
		{Role: "user", Content: "task"},
	}
	if _, err := mc.Generate(context.Background(), msgs, 0.3, 1500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sent.Model != DefaultModel || sent.Temperature != 0.3 || sent.MaxTokens != 1500 {
		t.Fatalf("unexpected payload: %+v", sent)
	}
	if len(sent.Messages) != 2 || sent.Messages[0].Role != "system" {
		t.Fatalf("messages not forwarded: %+v", sent.Messages)
	}
}

func TestGenerateCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	mc := newTestClient(new(restclient.MockRestClient))
	if _, err := mc.Generate(ctx, nil, 0, 0); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestEmbedText(t *testing.T) {
	rc := new(restclient.MockRestClient)
	rc.On("Post", mock.Anything, embeddingEndpoint, mock.Anything, mock.Anything).
		Return([]byte(`{"data":[{"embedding":[0.1,0.2],"index":0}]}`), 200, nil).Once()

	mc := newTestClient(rc)
	emb, err := mc.EmbedText(context.Background(), "hello")
	if err != nil || len(emb) != 2 {
		t.Fatalf("unexpected result: %v %v", emb, err)
	}

	// second call served from cache, no further HTTP traffic
	if _, err = mc.EmbedText(context.Background(), "hello"); err != nil {
		t.Fatalf("cached lookup failed: %v", err)
	}
	rc.AssertNumberOfCalls(t, "Post", 1)
}

func TestEmbedTextNoModel(t *testing.T) {
	mc := &LLMClient{restClient: new(restclient.MockRestClient), model: DefaultModel}
	if _, err := mc.EmbedText(context.Background(), "x"); err == nil {
		t.Fatal("expected error for missing embeddings model")
	}
}
