package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Key families in the store. Cache entries are keyed by the hash of the
// normalized text (plus user when present); history keys embed a zero-padded
// write timestamp so a prefix scan sorts entries by write time.
const (
	cacheKeyPrefix   = "emotion:cache:"
	historyKeyPrefix = "emotion:history:"
	anonymousUser    = "anonymous"

	historyKeySegments = 5
	timestampPadWidth  = 20
)

// cacheKey derives the deterministic cache key for one normalized text and
// optional user.
func cacheKey(processedText, userID string) string {
	sum := sha256.Sum256([]byte(processedText))
	key := cacheKeyPrefix + hex.EncodeToString(sum[:])

	if userID != "" {
		key += ":" + userID
	}

	return key
}

// historyKey builds the key for one history entry:
// emotion:history:<user>:<padded unix nanos>:<entry id>.
func historyKey(userID string, ts time.Time, entryID string) string {
	return fmt.Sprintf("%s%s:%0*d:%s", historyKeyPrefix, historyUser(userID), timestampPadWidth, ts.UnixNano(), entryID)
}

// historyPrefix is the scan prefix for one user, or for all users when
// userID is empty.
func historyPrefix(userID string) string {
	if userID == "" {
		return historyKeyPrefix
	}

	return historyKeyPrefix + historyUser(userID) + ":"
}

func historyUser(userID string) string {
	if userID == "" {
		return anonymousUser
	}

	return userID
}

// sortHistoryKeysDesc orders history keys newest first by the timestamp
// embedded in the key, so entries from different users interleave correctly.
func sortHistoryKeysDesc(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		return historyKeyNanos(keys[i]) > historyKeyNanos(keys[j])
	})
}

func historyKeyNanos(key string) int64 {
	parts := strings.Split(key, ":")
	if len(parts) != historyKeySegments {
		return 0
	}

	nanos, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return 0
	}

	return nanos
}
