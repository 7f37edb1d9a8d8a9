//go:build onnx

package onnx

import (
	"encoding/json"
	"os"
	"strings"
)

// BERT special token IDs used by all-MiniLM-L6-v2.
const (
	tokenUNK = 100
	tokenCLS = 101
	tokenSEP = 102
)

// wordPieceTokenizer implements BERT-style WordPiece tokenization from a
// HuggingFace tokenizer.json vocabulary.
type wordPieceTokenizer struct {
	vocab map[string]int
}

// loadTokenizer reads the vocabulary from a tokenizer.json file.
func loadTokenizer(path string) (*wordPieceTokenizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file struct {
		Model struct {
			Vocab map[string]int `json:"vocab"`
		} `json:"model"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	return &wordPieceTokenizer{vocab: file.Model.Vocab}, nil
}

// Encode tokenizes text into fixed-length input_ids and attention_mask
// arrays, wrapped in [CLS]...[SEP] and truncated to maxLen.
func (t *wordPieceTokenizer) Encode(text string, maxLen int) (inputIDs, attentionMask []int64) {
	tokens := t.tokenize(text)

	inputIDs = make([]int64, maxLen)
	attentionMask = make([]int64, maxLen)

	inputIDs[0] = tokenCLS
	attentionMask[0] = 1

	n := len(tokens)
	if n > maxLen-2 { // reserve [CLS] and [SEP]
		n = maxLen - 2
	}
	for i := 0; i < n; i++ {
		inputIDs[i+1] = tokens[i]
		attentionMask[i+1] = 1
	}

	inputIDs[n+1] = tokenSEP
	attentionMask[n+1] = 1
	return inputIDs, attentionMask
}

// tokenize converts text to token IDs. BERT vocabularies are lowercase.
func (t *wordPieceTokenizer) tokenize(text string) []int64 {
	var tokens []int64
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?;:\"'")
		if word == "" {
			continue
		}

		if id, ok := t.vocab[word]; ok {
			tokens = append(tokens, int64(id))
			continue
		}

		for _, piece := range t.wordPieces(word) {
			if id, ok := t.vocab[piece]; ok {
				tokens = append(tokens, int64(id))
			} else {
				tokens = append(tokens, tokenUNK)
			}
		}
	}
	return tokens
}

// wordPieces splits an out-of-vocabulary word into greedy longest-match
// subwords, using the "##" continuation prefix.
func (t *wordPieceTokenizer) wordPieces(word string) []string {
	var pieces []string
	start := 0

	for start < len(word) {
		end := len(word)
		found := false

		for end > start {
			piece := word[start:end]
			if start > 0 {
				piece = "##" + piece
			}
			if _, ok := t.vocab[piece]; ok {
				pieces = append(pieces, piece)
				start = end
				found = true
				break
			}
			end--
		}

		if !found {
			pieces = append(pieces, "[UNK]")
			start++
		}
	}
	return pieces
}
