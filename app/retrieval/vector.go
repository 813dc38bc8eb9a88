package retrieval

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"ContentCrewAI/app/models"
)

const (
	chunkSize  = 500
	overlap    = 100
	vectorSize = 1536

	defaultCollection = "research_reports"
)

var (
	_ Source  = &Vector{}
	_ Indexer = &Vector{}
)

// Vector gathers material from a Qdrant collection of previously indexed
// report chunks, ranked by embedding similarity to the topic.
type Vector struct {
	client     *qdrant.Client
	embedder   models.Interface
	collection string
	topK       int
}

func NewVector(embedder models.Interface, collection string, topK int) (*Vector, error) {
	host := os.Getenv("QDRANT_URL")
	port, _ := strconv.Atoi(os.Getenv("QDRANT_PORT"))
	if host == "" {
		host = "localhost"
	}
	if port == 0 {
		port = 6334
	}
	if collection == "" {
		collection = defaultCollection
	}
	if topK <= 0 {
		topK = 4
	}
	client, err := qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port,
	})
	if err != nil {
		return nil, err
	}
	return &Vector{
		client:     client,
		embedder:   embedder,
		collection: collection,
		topK:       topK,
	}, nil
}

// Init creates the report collection if it does not exist yet.
func (v *Vector) Init(ctx context.Context) error {
	exists, err := v.client.CollectionExists(ctx, v.collection)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err = v.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: v.collection,
		VectorsConfig: &qdrant.VectorsConfig{
			Config: &qdrant.VectorsConfig_Params{
				Params: &qdrant.VectorParams{
					Size:     uint64(vectorSize),
					Distance: qdrant.Distance_Cosine,
				},
			},
		},
	}); err != nil {
		return fmt.Errorf("create collection: %w", err)
	}
	return nil
}

func (v *Vector) Gather(ctx context.Context, topic string) (string, error) {
	vec, err := v.embedder.EmbedText(ctx, topic)
	if err != nil {
		return "", fmt.Errorf("embed topic: %w", err)
	}

	limit := uint64(v.topK)
	resp, err := v.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: v.collection,
		Limit:          &limit,
		Query:          qdrant.NewQuery(vec...),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return "", fmt.Errorf("query collection %s: %w", v.collection, err)
	}
	if len(resp) == 0 {
		return "", fmt.Errorf("no indexed material for topic %q", topic)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Indexed material for: %s\n", topic))
	for i, r := range resp {
		text := ""
		if val, ok := r.Payload["text"]; ok {
			text = val.GetStringValue()
		}
		source := ""
		if val, ok := r.Payload["topic"]; ok {
			source = val.GetStringValue()
		}
		sb.WriteString(fmt.Sprintf("\nSource %d (from %q):\n%s\n", i+1, source, text))
	}
	return sb.String(), nil
}

// Index chunks a finished report and upserts the chunks so later sessions
// can gather from them.
func (v *Vector) Index(ctx context.Context, topic, report string) error {
	chunks := splitIntoChunks(report, chunkSize, overlap)
	pts := make([]*qdrant.PointStruct, 0, len(chunks))
	for _, chunk := range chunks {
		vec, err := v.embedder.EmbedText(ctx, chunk)
		if err != nil {
			return fmt.Errorf("embed chunk: %w", err)
		}
		pts = append(pts, &qdrant.PointStruct{
			Id:      qdrant.NewIDUUID(uuid.New().String()),
			Vectors: qdrant.NewVectors(vec...),
			Payload: qdrant.NewValueMap(map[string]any{
				"text":  chunk,
				"topic": topic,
			}),
		})
	}
	if len(pts) == 0 {
		return nil
	}
	_, err := v.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: v.collection,
		Points:         pts,
	})
	return err
}

func (v *Vector) Close() error {
	return v.client.Close()
}

func splitIntoChunks(text string, size, overlap int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	step := size - overlap
	if step <= 0 {
		step = size
	}
	var chunks []string
	for start := 0; start < len(words); start += step {
		end := start + size
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
		if end == len(words) {
			break
		}
	}
	return chunks
}
