package server

import (
	"strings"

	"github.com/studyforgeco/studyforge/pkg/guide"
)

// sectionTracker splits accumulating markdown into sections on "## " headings
// as content chunks arrive. Chunks may split a heading across two feeds, so
// the tracker only inspects complete lines and buffers the trailing partial
// line until more content arrives.
type sectionTracker struct {
	partial  string
	current  *guide.Section
	finished []guide.Section
}

func newSectionTracker() *sectionTracker {
	return &sectionTracker{}
}

// Feed consumes the next content chunk and returns any sections completed by
// it. A section completes when the next "## " heading line begins.
func (t *sectionTracker) Feed(chunk string) []guide.Section {
	t.partial += chunk

	var done []guide.Section
	for {
		idx := strings.Index(t.partial, "\n")
		if idx < 0 {
			break
		}

		line := t.partial[:idx]
		t.partial = t.partial[idx+1:]

		if heading, ok := sectionHeading(line); ok {
			if t.current != nil {
				t.current.Body = strings.TrimSpace(t.current.Body)
				done = append(done, *t.current)
				t.finished = append(t.finished, *t.current)
			}
			t.current = &guide.Section{Title: heading}
			continue
		}

		if t.current != nil {
			t.current.Body += line + "\n"
		}
	}

	return done
}

// Flush completes the in-progress section at end of stream. The trailing
// partial line belongs to it even without a terminating newline.
func (t *sectionTracker) Flush() *guide.Section {
	if t.current == nil {
		if heading, ok := sectionHeading(t.partial); ok {
			t.partial = ""
			last := &guide.Section{Title: heading}
			t.finished = append(t.finished, *last)
			return last
		}
		t.partial = ""
		return nil
	}

	if heading, ok := sectionHeading(t.partial); ok {
		// Stream ended right on a heading line with no body.
		t.current.Body = strings.TrimSpace(t.current.Body)
		t.finished = append(t.finished, *t.current)
		last := &guide.Section{Title: heading}
		t.finished = append(t.finished, *last)
		t.current = nil
		t.partial = ""
		return last
	}

	t.current.Body = strings.TrimSpace(t.current.Body + t.partial)
	t.partial = ""
	last := t.current
	t.current = nil
	t.finished = append(t.finished, *last)
	return last
}

// Sections returns all completed sections in order.
func (t *sectionTracker) Sections() []guide.Section {
	return t.finished
}

// sectionHeading reports whether line is a level-2 markdown heading and
// returns its trimmed title. Deeper headings stay inside the current section.
func sectionHeading(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "## ") {
		return "", false
	}
	if strings.HasPrefix(trimmed, "###") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(trimmed, "## ")), true
}
