package importer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Note is one question/answer block of a deck file:
//
//	Q: question, possibly
//	spanning lines
//	A: answer
//	C: optional context
//	---
//
// A new Q: line or a --- line ends the previous note.
type Note struct {
	Question string
	Answer   string
	Context  string
	Line     int
}

type noteField int

const (
	fieldNone noteField = iota
	fieldQuestion
	fieldAnswer
	fieldContext
)

var fieldPrefixes = []struct {
	prefix string
	field  noteField
}{
	{"Q:", fieldQuestion},
	{"A:", fieldAnswer},
	{"C:", fieldContext},
}

type noteBuilder struct {
	notes   []Note
	current Note
	field   noteField
	parts   map[noteField][]string
}

func (b *noteBuilder) start(line int) {
	b.current = Note{Line: line}
	b.parts = make(map[noteField][]string)
}

func (b *noteBuilder) finish() {
	if b.parts == nil {
		return
	}
	join := func(f noteField) string {
		return strings.TrimSpace(strings.Join(b.parts[f], "\n"))
	}
	b.current.Question = join(fieldQuestion)
	b.current.Answer = join(fieldAnswer)
	b.current.Context = join(fieldContext)
	if b.current.Question != "" {
		b.notes = append(b.notes, b.current)
	}
	b.parts = nil
	b.field = fieldNone
}

// Parse reads every note in r. Notes without a question are dropped.
func Parse(r io.Reader) ([]Note, error) {
	var b noteBuilder
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimRight(scanner.Text(), "\r")

		if strings.TrimSpace(line) == "---" {
			b.finish()
			continue
		}

		matched := false
		for _, p := range fieldPrefixes {
			if !strings.HasPrefix(line, p.prefix) {
				continue
			}
			matched = true
			if p.field == fieldQuestion || b.parts == nil {
				b.finish()
				b.start(lineNumber)
			}
			b.field = p.field
			b.parts[p.field] = append(b.parts[p.field], strings.TrimPrefix(line[len(p.prefix):], " "))
			break
		}
		if !matched && b.field != fieldNone {
			b.parts[b.field] = append(b.parts[b.field], line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read notes: %w", err)
	}
	b.finish()
	return b.notes, nil
}
