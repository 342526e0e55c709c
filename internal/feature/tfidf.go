// Package feature implements the TF-IDF + SVD + cosine-similarity
// mini-pipeline that backs the weighted engine's similarity sub-signal.
package feature

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

const (
	maxNgram   = 3
	maxDocFreq = 0.85
	minDocFreq = 1
)

var featureTokenRe = regexp.MustCompile(`[a-z0-9]+`)

var errNoFeatures = errors.New("no terms survived document-frequency filtering")

// BuildTFIDF builds a joint term-weight matrix over all documents: n-grams of
// length 1-3, terms kept when their document frequency is at least minDocFreq
// and at most 85% of documents, term weights tf*idf with smoothed idf and
// L2-normalized rows. Term order is lexicographic so the output is
// deterministic.
func BuildTFIDF(docs []string) (*mat.Dense, []string, error) {
	if len(docs) == 0 {
		return nil, nil, errors.New("no documents")
	}

	counts := make([]map[string]int, len(docs))
	docFreq := make(map[string]int)
	for i, doc := range docs {
		counts[i] = ngramCounts(doc)
		for term := range counts[i] {
			docFreq[term]++
		}
	}

	n := float64(len(docs))
	var terms []string
	for term, df := range docFreq {
		if df < minDocFreq {
			continue
		}
		if float64(df)/n > maxDocFreq {
			continue
		}
		terms = append(terms, term)
	}
	if len(terms) == 0 {
		return nil, nil, errNoFeatures
	}
	sort.Strings(terms)

	m := mat.NewDense(len(docs), len(terms), nil)
	for i := range docs {
		var norm float64
		row := make([]float64, len(terms))
		for j, term := range terms {
			tf := float64(counts[i][term])
			if tf == 0 {
				continue
			}
			idf := math.Log((1+n)/(1+float64(docFreq[term]))) + 1
			row[j] = tf * idf
			norm += row[j] * row[j]
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := range row {
				row[j] /= norm
			}
		}
		m.SetRow(i, row)
	}
	return m, terms, nil
}

// ngramCounts tokenizes one document and counts its 1..3-grams.
func ngramCounts(doc string) map[string]int {
	tokens := featureTokenRe.FindAllString(strings.ToLower(doc), -1)
	counts := make(map[string]int)
	for size := 1; size <= maxNgram; size++ {
		for i := 0; i+size <= len(tokens); i++ {
			counts[strings.Join(tokens[i:i+size], " ")]++
		}
	}
	return counts
}
