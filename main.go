package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"ContentCrewAI/app/agents"
	"ContentCrewAI/app/configs"
)

const configPath = "config.yaml"

func main() {
	ctx := context.Background()

	cfg := &configs.Config{}
	if _, err := os.Stat(configPath); err == nil {
		loaded, err := configs.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("❌ Error loading configs: %v", err)
		}
		cfg = loaded
	} else {
		cfg.ApplyDefaults()
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configs: %v", err)
	}

	archive, err := cfg.BuildArchive()
	if err != nil {
		log.Fatalf("❌ Error opening activity archive: %v", err)
	}

	model := cfg.BuildModel()
	source, err := cfg.BuildRetrievalSource(ctx, model)
	if err != nil {
		log.Fatalf("❌ Error building retrieval source: %v", err)
	}

	researcher := agents.NewResearcher(model, source, archive, cfg.Research.DeepDivePause())
	writer := agents.NewWriter(model, archive)
	reviewer := agents.NewReviewer(model, archive)

	topic := "The state of edge computing adoption"
	if len(os.Args) > 1 {
		topic = os.Args[1]
	}

	report, err := researcher.Research(ctx, topic, 5)
	if err != nil {
		log.Fatalf("❌ Research failed: %v", err)
	}
	fmt.Println(report)

	article, err := writer.Write(ctx, report, "", "Professional")
	if err != nil {
		log.Fatalf("❌ Writing failed: %v", err)
	}
	fmt.Println(article)

	review, err := reviewer.Review(ctx, article, "comprehensive", 7)
	if err != nil {
		log.Fatalf("❌ Review failed: %v", err)
	}
	fmt.Println(review)

	fmt.Println(researcher.Summary())
	fmt.Printf("Writing statistics: %+v\n", writer.Statistics())
	fmt.Printf("Review statistics: %+v\n", reviewer.Statistics())
}
