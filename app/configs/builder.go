package configs

import (
	"context"
	"fmt"

	"ContentCrewAI/app/models"
	"ContentCrewAI/app/retrieval"
	"ContentCrewAI/app/storage"
)

func (c *Config) BuildModel() *models.LLMClient {
	return models.NewLLMClient(c.Model.APIKey, c.Model.Name, c.Model.EmbeddingsModel)
}

func (c *Config) BuildRetrievalSource(ctx context.Context, model models.Interface) (retrieval.Source, error) {
	rc := c.Research.Retrieval
	switch rc.Source {
	case "static":
		return retrieval.Static{}, nil
	case "web":
		return retrieval.NewWeb(rc.URLs), nil
	case "vector":
		src, err := retrieval.NewVector(model, rc.Collection, rc.TopK)
		if err != nil {
			return nil, fmt.Errorf("build vector source: %w", err)
		}
		if err = src.Init(ctx); err != nil {
			return nil, fmt.Errorf("init vector source: %w", err)
		}
		return src, nil
	default:
		return nil, fmt.Errorf("unknown retrieval source %q", rc.Source)
	}
}

func (c *Config) BuildArchive() (storage.Interface, error) {
	if !c.Archive.Enabled {
		return nil, nil
	}
	return storage.NewSQLiteStorage(c.Archive.Path)
}
