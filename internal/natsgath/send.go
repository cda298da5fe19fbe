package natsgath

import (
	"encoding/json"
	"log/slog"

	"github.com/klauspost/compress/zstd"
)

var encoder, _ = zstd.NewWriter(nil)

// send publishes the message zstd-compressed. Expected/actual dumps repeat
// heavily, subscribers decompress with a plain zstd reader.
func (s *natsGatherer) send(msg interface{}) {
	b, err := json.Marshal(msg)
	if err != nil {
		slog.Error("failed to marshal result message", "error", err)
		return
	}

	compressed := encoder.EncodeAll(b, nil)
	if err := s.nc.Publish(s.inbox, compressed); err != nil {
		slog.Error("failed to publish result message", "subject", s.inbox, "error", err)
	}
}
