package textproc

import (
	"bufio"
	"bytes"
	_ "embed"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// corpusURL points at a maintained plain-text English stopword list, one word
// per line. The fetch is best-effort; the embedded list below is the fallback.
const corpusURL = "https://raw.githubusercontent.com/stopwords-iso/stopwords-en/master/stopwords-en.txt"

//go:embed stopwords.txt
var embeddedCorpus []byte

var (
	corpusOnce sync.Once
	corpus     map[string]struct{}
)

// Stopwords returns the active English stopword set. The first call triggers
// EnsureCorpus; subsequent calls return the same read-only map, so concurrent
// use is safe.
func Stopwords() map[string]struct{} {
	corpusOnce.Do(initCorpus)
	return corpus
}

// EnsureCorpus makes a stopword corpus available locally, fetching one into
// the user cache directory if absent. It is idempotent and never fails:
// when both the cache and the fetch are unusable it falls back to the
// embedded corpus.
func EnsureCorpus() {
	corpusOnce.Do(initCorpus)
}

func initCorpus() {
	path, err := cachePath()
	if err == nil {
		if data, err := os.ReadFile(path); err == nil {
			corpus = parseCorpus(data)
			return
		}
		if data := fetchCorpus(); data != nil {
			if err := os.WriteFile(path, data, 0o644); err != nil {
				slog.Debug("stopwords: cache write failed", "path", path, "error", err)
			}
			corpus = parseCorpus(data)
			return
		}
	}
	corpus = parseCorpus(embeddedCorpus)
}

func cachePath() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, "resume-scorer")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "stopwords-en.txt"), nil
}

func fetchCorpus() []byte {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(corpusURL)
	if err != nil {
		slog.Debug("stopwords: fetch failed", "error", err)
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		slog.Debug("stopwords: fetch failed", "status", resp.StatusCode)
		return nil
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil || len(data) == 0 {
		return nil
	}
	return data
}

func parseCorpus(data []byte) map[string]struct{} {
	words := make(map[string]struct{})
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		w := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if w != "" {
			words[w] = struct{}{}
		}
	}
	return words
}
