package holdem

import (
	"go.uber.org/zap"

	"github.com/weedbox/holdem/card"
)

type HandEngineOpt func(*handEngine)

type HandEngineOptions struct {
	MaxInvalidActions int // 同一座位連續不合法動作的上限，超過後套用預設動作
}

func NewHandEngineOptions() *HandEngineOptions {
	return &HandEngineOptions{
		MaxInvalidActions: DefaultMaxInvalidActions,
	}
}

// WithOptions replaces the engine options. A nil value keeps the defaults.
func WithOptions(options *HandEngineOptions) HandEngineOpt {
	return func(e *handEngine) {
		if options == nil {
			return
		}
		e.options = options
	}
}

func WithSink(sink StateSink) HandEngineOpt {
	return func(e *handEngine) {
		e.sink = sink
	}
}

func WithLogger(logger *zap.Logger) HandEngineOpt {
	return func(e *handEngine) {
		e.logger = logger
	}
}

func WithDeck(deck *card.Deck) HandEngineOpt {
	return func(e *handEngine) {
		e.deck = deck
	}
}
