package gridreader

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/glyphlab/trigram"
)

// New lays every message of messages out in rows of opts.RowWidth trigrams.
// The input is copied; later changes to messages do not affect the Reader.
// Returns ErrRowWidth or ErrMessageCount on a shape mismatch.
func New(messages trigram.Corpus, opts Options) (*Reader, error) {
	if err := validate(len(messages), opts); err != nil {
		return nil, err
	}
	w := opts.RowWidth
	grids := make([][]trigram.Sequence, len(messages))
	for i, msg := range messages {
		rows := make([]trigram.Sequence, 0, (len(msg)+w-1)/w)
		for start := 0; start < len(msg); start += w {
			end := min(start+w, len(msg))
			rows = append(rows, msg[start:end].Clone())
		}
		grids[i] = rows
	}

	return &Reader{width: w, grids: grids}, nil
}

// FromRows builds a Reader from explicit rows per message.
// Every row must be non-empty and at most RowWidth wide; only the last row of
// a message may be shorter than RowWidth. The rows are deep-copied.
func FromRows(grids [][]trigram.Sequence, opts Options) (*Reader, error) {
	if err := validate(len(grids), opts); err != nil {
		return nil, err
	}
	w := opts.RowWidth
	out := make([][]trigram.Sequence, len(grids))
	for i, rows := range grids {
		out[i] = make([]trigram.Sequence, len(rows))
		for j, row := range rows {
			last := j == len(rows)-1
			if len(row) == 0 || len(row) > w || (!last && len(row) != w) {
				return nil, fmt.Errorf("message %d row %d has %d trigrams (width %d): %w",
					i, j, len(row), w, ErrLineShape)
			}
			out[i][j] = row.Clone()
		}
	}

	return &Reader{width: w, grids: out}, nil
}

func validate(messages int, opts Options) error {
	if opts.RowWidth < 1 {
		return ErrRowWidth
	}
	if opts.MessageCount > 0 && messages != opts.MessageCount {
		return fmt.Errorf("expected %d messages, got %d: %w", opts.MessageCount, messages, ErrMessageCount)
	}

	return nil
}

// Messages returns the number of messages.
func (r *Reader) Messages() int { return len(r.grids) }

// Width returns the row width.
func (r *Reader) Width() int { return r.width }

// Rows returns the number of rows of message msg, or 0 if msg is out of range.
func (r *Reader) Rows(msg int) int {
	if msg < 0 || msg >= len(r.grids) {
		return 0
	}

	return len(r.grids[msg])
}

// At returns the trigram at (msg, row, col) and whether that cell exists.
func (r *Reader) At(msg, row, col int) (trigram.Trigram, bool) {
	if msg < 0 || msg >= len(r.grids) || row < 0 || row >= len(r.grids[msg]) {
		return trigram.Trigram{}, false
	}
	line := r.grids[msg][row]
	if col < 0 || col >= len(line) {
		return trigram.Trigram{}, false
	}

	return line[col], true
}

// RowMajor reads every message row by row, left to right.
func (r *Reader) RowMajor() trigram.Corpus {
	out := make(trigram.Corpus, len(r.grids))
	for i := range r.grids {
		out[i] = r.forward(i)
	}

	return out
}

// RowMajorReversed is RowMajor with every message fully reversed.
func (r *Reader) RowMajorReversed() trigram.Corpus {
	out := make(trigram.Corpus, len(r.grids))
	for i := range r.grids {
		line := r.forward(i)
		slices.Reverse(line)
		out[i] = line
	}

	return out
}

// ColumnMajor reads every message column by column. leftToRight picks the
// horizontal direction; columns 0, 2, 4, ... are read downwards when
// oddColumnDown is set, the others when evenColumnDown is set.
func (r *Reader) ColumnMajor(leftToRight, oddColumnDown, evenColumnDown bool) trigram.Corpus {
	out := make(trigram.Corpus, len(r.grids))
	for i := range r.grids {
		line := make(trigram.Sequence, 0, r.size(i))
		for k := 0; k < r.width; k++ {
			col := k
			if !leftToRight {
				col = r.width - 1 - k
			}
			down := evenColumnDown
			if col%2 == 0 {
				down = oddColumnDown
			}
			line = append(line, r.column(i, col, down)...)
		}
		out[i] = line
	}

	return out
}

func (r *Reader) forward(msg int) trigram.Sequence {
	line := make(trigram.Sequence, 0, r.size(msg))
	for _, row := range r.grids[msg] {
		line = append(line, row...)
	}

	return line
}

// column collects column col of message msg, skipping rows too short to reach it.
func (r *Reader) column(msg, col int, down bool) trigram.Sequence {
	rows := r.grids[msg]
	out := make(trigram.Sequence, 0, len(rows))
	for _, row := range rows {
		if col < len(row) {
			out = append(out, row[col])
		}
	}
	if !down {
		slices.Reverse(out)
	}

	return out
}

func (r *Reader) size(msg int) int {
	var n int
	for _, row := range r.grids[msg] {
		n += len(row)
	}

	return n
}
