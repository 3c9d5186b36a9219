// Package inference defines the transport-agnostic contract for the hosted
// completion service that generates word breakdowns.
package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client interface defines the methods for AI inference operations
type Client interface {
	GenerateWordDetails(ctx context.Context, params GenerateWordDetailsRequest) (GenerateWordDetailsResponse, error)
}

// GenerateWordDetailsRequest holds the target headword. The word is expected
// to be trimmed and lower-cased by the caller.
type GenerateWordDetailsRequest struct {
	Word string `json:"word"`
}

// GenerateWordDetailsResponse carries the raw JSON document produced by the
// model. Parsing and validation happen in the dictionary package.
type GenerateWordDetailsResponse struct {
	Content []byte
}

const (
	DefaultTemperature = 0.2
)
