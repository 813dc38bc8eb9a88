package storage

import (
	"context"
	"time"
)

type Interface interface {
	SaveEntry(ctx context.Context, record Record) error
	RecentByAgent(ctx context.Context, agent string, limit int) ([]Record, error)
}

type Record struct {
	ID         int64     `json:"id" db:"id"`
	Agent      string    `json:"agent" db:"agent"`
	Operation  string    `json:"operation" db:"operation"`
	Parameters string    `json:"parameters" db:"parameters"`
	WordCount  int       `json:"word_count" db:"word_count"`
	Strictness int       `json:"strictness" db:"strictness"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
