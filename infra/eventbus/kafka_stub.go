//go:build !kafka

package eventbus

import (
	"errors"
	"log/slog"

	"github.com/bankdash/backend/pkg/eventbus"
)

// NewWithKafka is a stub for binaries built without the kafka tag.
func NewWithKafka(_, _ string, _ *slog.Logger) (eventbus.Bus, error) {
	return nil, errors.New("kafka event bus: built without kafka support")
}
