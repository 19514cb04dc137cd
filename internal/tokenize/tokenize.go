// Package tokenize implements the text-to-shards partitioning used by
// job creation (spec.md §4.3 create_job steps 2–3).
package tokenize

import (
	"regexp"
	"strings"
)

// wordPattern extracts maximal runs of word characters, matching the
// Python source's re.findall(r"\b\w+\b", text.lower()) (spec.md §4.3
// step 2: "Unicode word class or equivalently [A-Za-z0-9_]+").
var wordPattern = regexp.MustCompile(`[A-Za-z0-9_]+`)

// Words lowercases text and returns its word tokens in order.
func Words(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// Shard is one contiguous slice of the token sequence (spec.md §3
// "Shard"): shard_id is its position in the partition, Text is the
// space-joined token run.
type Shard struct {
	ShardID int
	Text    string
}

// Shards partitions words into contiguous shards following spec.md §4.3
// step 3: shard_size = max(100, floor(W/4)), last shard may be shorter.
// An empty word list yields no shards (spec.md §4.3 step 3 / §7 "Input
// with zero words").
func Shards(words []string) []Shard {
	w := len(words)
	if w == 0 {
		return nil
	}
	shardSize := w / 4
	if shardSize < 100 {
		shardSize = 100
	}

	var shards []Shard
	for i := 0; i < w; i += shardSize {
		end := i + shardSize
		if end > w {
			end = w
		}
		shards = append(shards, Shard{
			ShardID: len(shards),
			Text:    strings.Join(words[i:end], " "),
		})
	}
	return shards
}
