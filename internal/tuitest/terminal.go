package tuitest

import (
	"bytes"
	"io"
)

// queryReply pairs a terminal query with the answer a dark xterm would send.
type queryReply struct {
	query  []byte
	answer []byte
}

// The help footer uses adaptive colors, so the renderer asks for the
// background color (OSC 11) and follows it with a cursor position report to
// detect terminals that stay silent.
var queryReplies = []queryReply{
	{query: []byte("\x1b]11;?\x1b\\"), answer: []byte("\x1b]11;rgb:0000/0000/0000\x1b\\")},
	{query: []byte("\x1b]11;?\x07"), answer: []byte("\x1b]11;rgb:0000/0000/0000\x07")},
	{query: []byte("\x1b[6n"), answer: []byte("\x1b[1;1R")},
}

var longestQuery = func() int {
	n := 0
	for _, r := range queryReplies {
		n = max(n, len(r.query))
	}
	return n
}()

// queryResponder answers queries in the order they appear in the output.
type queryResponder struct {
	w       io.Writer
	pending []byte
}

func newQueryResponder(w io.Writer) *queryResponder {
	return &queryResponder{w: w}
}

// Observe feeds program output to the responder.
func (q *queryResponder) Observe(chunk []byte) {
	q.pending = append(q.pending, chunk...)
	for {
		reply, end := q.next()
		if reply == nil {
			break
		}
		_, _ = q.w.Write(reply.answer)
		q.pending = q.pending[end:]
	}
	// Only a query split across reads needs to survive.
	if keep := longestQuery - 1; len(q.pending) > keep {
		q.pending = append(q.pending[:0], q.pending[len(q.pending)-keep:]...)
	}
}

// next finds the earliest complete query and the offset just past it.
func (q *queryResponder) next() (*queryReply, int) {
	var found *queryReply
	at, end := -1, 0
	for i := range queryReplies {
		idx := bytes.Index(q.pending, queryReplies[i].query)
		if idx < 0 || (at >= 0 && idx >= at) {
			continue
		}
		found, at, end = &queryReplies[i], idx, idx+len(queryReplies[i].query)
	}
	return found, end
}
