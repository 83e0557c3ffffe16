// Package recommend implements the text-similarity core of the job
// recommendation engine: a small TF-IDF vectorizer with cosine similarity
// and a tech-skill keyword extractor.
package recommend

import (
	"math"
	"sort"
	"strings"
)

// Vector is a sparse TF-IDF weighted term vector.
type Vector map[string]float64

// Vectorizer converts documents into TF-IDF vectors. The zero value is not
// usable; construct with NewVectorizer.
type Vectorizer struct {
	// MaxFeatures caps the vocabulary to the most frequent terms.
	MaxFeatures int
	// NgramMax of 1 keeps unigrams only; 2 adds word bigrams.
	NgramMax int
}

// NewVectorizer returns a vectorizer with the engine's default settings:
// english stopwords, unigrams plus bigrams, vocabulary capped at 1000 terms.
func NewVectorizer() *Vectorizer {
	return &Vectorizer{MaxFeatures: 1000, NgramMax: 2}
}

// FitTransform builds a vocabulary over docs and returns one TF-IDF vector
// per document, L2-normalized so that Cosine reduces to a dot product.
func (v *Vectorizer) FitTransform(docs []string) []Vector {
	termsPerDoc := make([][]string, len(docs))
	totalFreq := map[string]int{}
	docFreq := map[string]int{}
	for i, doc := range docs {
		terms := v.terms(doc)
		termsPerDoc[i] = terms
		seen := map[string]bool{}
		for _, t := range terms {
			totalFreq[t]++
			if !seen[t] {
				seen[t] = true
				docFreq[t]++
			}
		}
	}

	vocab := selectVocabulary(totalFreq, v.MaxFeatures)

	n := float64(len(docs))
	vectors := make([]Vector, len(docs))
	for i, terms := range termsPerDoc {
		counts := map[string]int{}
		for _, t := range terms {
			if vocab[t] {
				counts[t]++
			}
		}
		vec := make(Vector, len(counts))
		for t, c := range counts {
			tf := float64(c) / math.Max(1, float64(len(terms)))
			// Smoothed IDF so terms present in every document still
			// contribute a small weight.
			idf := math.Log((1+n)/(1+float64(docFreq[t]))) + 1
			vec[t] = tf * idf
		}
		normalize(vec)
		vectors[i] = vec
	}
	return vectors
}

// Similarity vectorizes two texts against a shared vocabulary and returns
// their cosine similarity clamped to [0, 1].
func (v *Vectorizer) Similarity(a, b string) float64 {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return 0
	}
	vecs := v.FitTransform([]string{a, b})
	sim := Cosine(vecs[0], vecs[1])
	return math.Max(0, math.Min(1, sim))
}

// Cosine returns the cosine similarity of two vectors. Vectors produced by
// FitTransform are already L2-normalized, so this is a sparse dot product.
func Cosine(a, b Vector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for t, w := range a {
		dot += w * b[t]
	}
	return dot
}

// terms tokenizes a document into lowercase stopword-filtered unigrams and,
// when configured, bigrams.
func (v *Vectorizer) terms(doc string) []string {
	words := tokenize(doc)
	terms := make([]string, 0, len(words)*v.NgramMax)
	terms = append(terms, words...)
	if v.NgramMax >= 2 {
		for i := 0; i+1 < len(words); i++ {
			terms = append(terms, words[i]+" "+words[i+1])
		}
	}
	return terms
}

func tokenize(doc string) []string {
	var b strings.Builder
	b.Grow(len(doc))
	for _, r := range strings.ToLower(doc) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '+' || r == '#' {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	fields := strings.Fields(b.String())
	words := fields[:0]
	for _, w := range fields {
		if !stopwords[w] {
			words = append(words, w)
		}
	}
	return words
}

func selectVocabulary(totalFreq map[string]int, max int) map[string]bool {
	if max <= 0 || len(totalFreq) <= max {
		vocab := make(map[string]bool, len(totalFreq))
		for t := range totalFreq {
			vocab[t] = true
		}
		return vocab
	}
	type termCount struct {
		term  string
		count int
	}
	ranked := make([]termCount, 0, len(totalFreq))
	for t, c := range totalFreq {
		ranked = append(ranked, termCount{t, c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].term < ranked[j].term
	})
	vocab := make(map[string]bool, max)
	for _, tc := range ranked[:max] {
		vocab[tc.term] = true
	}
	return vocab
}

func normalize(vec Vector) {
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for t, w := range vec {
		vec[t] = w / norm
	}
}

// stopwords is a compact english stopword list; enough to keep boilerplate
// out of job descriptions without dragging in a full NLP dependency.
var stopwords = func() map[string]bool {
	list := []string{
		"a", "about", "above", "after", "again", "all", "am", "an", "and",
		"any", "are", "as", "at", "be", "because", "been", "before", "being",
		"below", "between", "both", "but", "by", "can", "did", "do", "does",
		"doing", "down", "during", "each", "few", "for", "from", "further",
		"had", "has", "have", "having", "he", "her", "here", "hers", "him",
		"his", "how", "i", "if", "in", "into", "is", "it", "its", "just",
		"me", "more", "most", "my", "no", "nor", "not", "now", "of", "off",
		"on", "once", "only", "or", "other", "our", "ours", "out", "over",
		"own", "same", "she", "should", "so", "some", "such", "than", "that",
		"the", "their", "theirs", "them", "then", "there", "these", "they",
		"this", "those", "through", "to", "too", "under", "until", "up",
		"very", "was", "we", "were", "what", "when", "where", "which",
		"while", "who", "whom", "why", "will", "with", "you", "your",
		"yours",
	}
	m := make(map[string]bool, len(list))
	for _, w := range list {
		m[w] = true
	}
	return m
}()
