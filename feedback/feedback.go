// astron.nl/go/sip - LOFAR LTA Submission Information Packages in Go
// Copyright (C) 2026  ASTRON (Netherlands Institute for Radio Astronomy)
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package feedback reads LOFAR pseudo-feedback files and turns the data
// products listed there into SIP documents.
//
// Feedback is a list of "key=value" lines with dotted keys, such as
//
//	ObsSW.Observation.DataProducts.Output_Correlated_[0].size=1048576
//
// Parse builds a tree from the keys.  The projection onto SIPs is a best
// effort: entries which cannot be converted are logged and skipped.
package feedback

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"astron.nl/go/sip/internal/logging"
)

// Tree holds the parsed feedback.  Inner nodes are of type Tree, leaves are
// strings.
type Tree map[string]any

// Sub returns the subtree stored under key, or nil.
func (t Tree) Sub(key string) Tree {
	sub, _ := t[key].(Tree)
	return sub
}

// String returns the leaf at the dotted path, or the empty string if there
// is no such leaf.
func (t Tree) String(path string) string {
	keys := strings.Split(path, ".")
	node := t
	for _, key := range keys[:len(keys)-1] {
		node = node.Sub(key)
		if node == nil {
			return ""
		}
	}
	s, _ := node[keys[len(keys)-1]].(string)
	return s
}

// Feedback is a parsed feedback file.
type Feedback struct {
	tree   Tree
	logger *slog.Logger
}

// Parse reads feedback lines from r.  Malformed lines are logged and
// skipped.  A nil logger discards the warnings.
func Parse(r io.Reader, logger *slog.Logger) (*Feedback, error) {
	f := &Feedback{
		tree:   Tree{},
		logger: logging.NewComponentLogger(logger, "feedback"),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "=")
		if len(parts) != 2 {
			f.logger.Warn("skipping line", logging.Int("line", lineNo), logging.String("text", line))
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if value == "" {
			continue
		}
		value = strings.ReplaceAll(value, `"`, "")

		if err := f.tree.insert(key, value); err != nil {
			f.logger.Warn("skipping line", logging.Int("line", lineNo), logging.Error(err))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read feedback: %w", err)
	}

	f.logger.Debug("feedback parsed", logging.Int("lines", lineNo))
	return f, nil
}

func (t Tree) insert(key, value string) error {
	keys := strings.Split(key, ".")
	node := t
	for i, k := range keys[:len(keys)-1] {
		switch child := node[k].(type) {
		case nil:
			sub := Tree{}
			node[k] = sub
			node = sub
		case Tree:
			node = child
		default:
			return fmt.Errorf("%s: %q is a value", key, strings.Join(keys[:i+1], "."))
		}
	}

	last := keys[len(keys)-1]
	if _, isTree := node[last].(Tree); isTree {
		return fmt.Errorf("%s: key has children", key)
	}
	node[last] = value
	return nil
}

// Tree returns the complete feedback tree.
func (f *Feedback) Tree() Tree {
	return f.tree
}

// Get returns the subtree at the dotted prefix.  If a component of the
// prefix is missing, a warning is logged and the deepest subtree found so
// far is returned.
func (f *Feedback) Get(prefix string) Tree {
	node := f.tree
	if prefix == "" {
		return node
	}
	for _, key := range strings.Split(prefix, ".") {
		sub := node.Sub(key)
		if sub == nil {
			f.logger.Warn("prefix component not found",
				logging.String("prefix", prefix), logging.String("component", key))
			continue
		}
		node = sub
	}
	return node
}
