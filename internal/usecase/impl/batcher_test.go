package impl

import (
	"fmt"
	"testing"

	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeMessages(n int) []entity.OutboundMessage {
	messages := make([]entity.OutboundMessage, n)
	for i := range messages {
		messages[i] = entity.OutboundMessage{To: entity.PushToken(fmt.Sprintf("ExponentPushToken[%d]", i))}
	}

	return messages
}

func TestChunkMessages_Sizes(t *testing.T) {
	tests := []struct {
		n, k      int
		wantSizes []int
	}{
		{n: 0, k: 100, wantSizes: []int{}},
		{n: 1, k: 100, wantSizes: []int{1}},
		{n: 100, k: 100, wantSizes: []int{100}},
		{n: 101, k: 100, wantSizes: []int{100, 1}},
		{n: 250, k: 100, wantSizes: []int{100, 100, 50}},
		{n: 7, k: 3, wantSizes: []int{3, 3, 1}},
		{n: 5, k: 1, wantSizes: []int{1, 1, 1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d,k=%d", tt.n, tt.k), func(t *testing.T) {
			chunks, err := ChunkMessages(makeMessages(tt.n), tt.k)
			require.NoError(t, err)

			sizes := make([]int, 0, len(chunks))
			for _, chunk := range chunks {
				sizes = append(sizes, len(chunk))
			}
			assert.Equal(t, tt.wantSizes, sizes)
		})
	}
}

func TestChunkMessages_ConcatenationPreservesOrder(t *testing.T) {
	for n := 0; n <= 30; n++ {
		for k := 1; k <= 12; k++ {
			messages := makeMessages(n)
			chunks, err := ChunkMessages(messages, k)
			require.NoError(t, err)

			assert.Len(t, chunks, (n+k-1)/k)

			flattened := make([]entity.OutboundMessage, 0, n)
			for i, chunk := range chunks {
				assert.LessOrEqual(t, len(chunk), k)
				if i < len(chunks)-1 {
					assert.Len(t, chunk, k, "only the last chunk may be short")
				}
				flattened = append(flattened, chunk...)
			}
			assert.Equal(t, messages, flattened)
		}
	}
}

func TestChunkMessages_ChunksDoNotAlias(t *testing.T) {
	chunks, err := ChunkMessages(makeMessages(4), 2)
	require.NoError(t, err)

	chunks[0] = append(chunks[0], entity.OutboundMessage{To: "extra"})

	assert.Equal(t, entity.PushToken("ExponentPushToken[2]"), chunks[1][0].To)
}

func TestChunkMessages_InvalidSize(t *testing.T) {
	for _, k := range []int{0, -1} {
		chunks, err := ChunkMessages(makeMessages(3), k)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidChunkSize)
		assert.Nil(t, chunks)
	}
}
