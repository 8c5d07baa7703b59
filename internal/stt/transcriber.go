package stt

import (
	"context"
	"sync"
)

// Transcription is the best-effort output of a speech-to-text pass. An empty
// Transcript with a nil error is a valid-but-useless result; callers decide
// whether that is fatal for their endpoint.
type Transcription struct {
	Transcript string  `json:"transcript"`
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
	Duration   float64 `json:"duration"`
}

// Transcriber converts raw audio bytes into text. The language argument is a
// hint (e.g. "hi", "en"); implementations may ignore it.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename, language string) (*Transcription, error)
}

// Cached wraps a Transcriber constructor so the underlying handle is built at
// most once, on first use, and shared by all callers afterwards. The first
// caller pays the initialization cost; there is no invalidation or reload.
type Cached struct {
	build func() (Transcriber, error)
	once  sync.Once
	t     Transcriber
	err   error
}

func NewCached(build func() (Transcriber, error)) *Cached {
	return &Cached{build: build}
}

func (c *Cached) Transcribe(ctx context.Context, audio []byte, filename, language string) (*Transcription, error) {
	c.once.Do(func() {
		c.t, c.err = c.build()
	})
	if c.err != nil {
		return nil, c.err
	}
	return c.t.Transcribe(ctx, audio, filename, language)
}
