package impl

import (
	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"

	"github.com/pkg/errors"
)

// ChunkMessages splits messages into consecutive chunks of at most maxChunkSize,
// preserving order. Only the last chunk may be shorter.
func ChunkMessages(messages []entity.OutboundMessage, maxChunkSize int) ([]entity.Chunk, error) {
	if maxChunkSize <= 0 {
		return nil, errors.WithStack(domainerrors.ErrInvalidChunkSize)
	}

	chunks := make([]entity.Chunk, 0, (len(messages)+maxChunkSize-1)/maxChunkSize)
	for idx := 0; idx < len(messages); idx += maxChunkSize {
		end := min(idx+maxChunkSize, len(messages))
		chunks = append(chunks, entity.Chunk(messages[idx:end:end]))
	}

	return chunks, nil
}
