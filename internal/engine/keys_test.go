package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheKey(t *testing.T) {
	anonymous := cacheKey("i am so happy today!", "")
	scoped := cacheKey("i am so happy today!", "user-a")

	assert.True(t, strings.HasPrefix(anonymous, "emotion:cache:"))
	assert.True(t, strings.HasSuffix(scoped, ":user-a"))
	assert.NotEqual(t, anonymous, scoped)

	// Same normalized text, same key.
	assert.Equal(t, anonymous, cacheKey("i am so happy today!", ""))

	// Different text, different key.
	assert.NotEqual(t, anonymous, cacheKey("i feel so sad", ""))
}

func TestHistoryKey(t *testing.T) {
	ts := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	key := historyKey("user-a", ts, "entry-1")
	assert.Equal(t, "emotion:history:user-a:01749988800000000000:entry-1", key)

	anonymous := historyKey("", ts, "entry-1")
	assert.True(t, strings.HasPrefix(anonymous, "emotion:history:anonymous:"))
}

func TestHistoryPrefix(t *testing.T) {
	assert.Equal(t, "emotion:history:", historyPrefix(""))
	assert.Equal(t, "emotion:history:user-a:", historyPrefix("user-a"))
}

func TestSortHistoryKeysDesc(t *testing.T) {
	base := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	oldest := historyKey("user-a", base, "a")
	middle := historyKey("user-b", base.Add(time.Second), "b")
	newest := historyKey("user-a", base.Add(2*time.Second), "c")

	keys := []string{middle, oldest, newest}
	sortHistoryKeysDesc(keys)

	assert.Equal(t, []string{newest, middle, oldest}, keys)
}

func TestSortHistoryKeysDescMalformedLast(t *testing.T) {
	base := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	valid := historyKey("user-a", base, "a")
	malformed := "emotion:history:garbage"

	keys := []string{malformed, valid}
	sortHistoryKeysDesc(keys)

	assert.Equal(t, []string{valid, malformed}, keys)
}
