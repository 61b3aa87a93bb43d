package vocab

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/agentstation/wordchipper"
)

// WriteSpanMap writes span in the persisted "tiktoken" format: one
// non-empty line per entry, "BASE64(span) SPACE token_id_decimal",
// ordered by ascending token id, terminated by '\n'. No header, no
// comments, no trailing blank line.
func WriteSpanMap[T wordchipper.TokenID](w io.Writer, span *SpanMapVocab[T]) error {
	tokens := span.Tokens()
	sort.Slice(tokens, func(i, j int) bool { return tokens[i] < tokens[j] })

	bw := bufio.NewWriter(w)
	for _, t := range tokens {
		bytes, _ := span.Span(t)
		encoded := base64.StdEncoding.EncodeToString(bytes)
		if _, err := fmt.Fprintf(bw, "%s %d\n", encoded, uint64(t)); err != nil {
			return &wordchipper.IoError{Op: "WriteSpanMap", Err: err}
		}
	}
	if err := bw.Flush(); err != nil {
		return &wordchipper.IoError{Op: "WriteSpanMap", Err: err}
	}
	return nil
}

// ReadSpanMap parses the persisted "tiktoken" format into a SpanMapVocab
// seeded on bytes. Empty lines are tolerated. A malformed base64 or integer
// field is a ParseError; a duplicate token id or span is a
// VocabConflictError.
func ReadSpanMap[T wordchipper.TokenID](r io.Reader, bytes *ByteMapVocab[T]) (*SpanMapVocab[T], error) {
	sm := NewSpanMapVocab(bytes)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, " ", 2)
		if len(fields) != 2 {
			return nil, &wordchipper.ParseError{
				Op:  "ReadSpanMap",
				Err: fmt.Errorf("line %d: expected \"<base64> <id>\"", lineNo),
			}
		}
		span, err := base64.StdEncoding.DecodeString(fields[0])
		if err != nil {
			return nil, &wordchipper.ParseError{Op: "ReadSpanMap", Err: fmt.Errorf("line %d: %w", lineNo, err)}
		}
		id, err := strconv.ParseUint(strings.TrimSpace(fields[1]), 10, 64)
		if err != nil {
			return nil, &wordchipper.ParseError{Op: "ReadSpanMap", Err: fmt.Errorf("line %d: %w", lineNo, err)}
		}
		if id > wordchipper.MaxTokenValue[T]() {
			return nil, &wordchipper.VocabSizeOverflowError{Size: id, Max: wordchipper.MaxTokenValue[T]()}
		}
		if err := sm.Insert(span, T(id)); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &wordchipper.IoError{Op: "ReadSpanMap", Err: err}
	}
	if err := ValidateSize[T](uint64(sm.Len())); err != nil {
		return nil, err
	}
	return sm, nil
}
