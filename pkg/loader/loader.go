// Package loader builds bipartite graphs from edge-list files.
//
// Each line holds one edge as "<left> <right>": two non-negative ids, the
// first naming a partition-A vertex and the second a partition-B vertex.
// Left id l becomes label l and right id r becomes label -(r+1). Blank lines
// and comment lines are skipped; columns after the second are ignored.
package loader

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gilchrisn/bipartite-matching-graph/pkg/bipartite"
)

const (
	maxLineBytes  = 1024 * 1024
	ctxCheckEvery = 1024
)

// Result is a built graph plus what the load saw.
type Result struct {
	Graph     *bipartite.Graph `json:"-"`
	LoadID    string           `json:"load_id"`
	Lines     int              `json:"lines"`
	Edges     int              `json:"edges"`
	VerticesA int              `json:"vertices_a"`
	VerticesB int              `json:"vertices_b"`
	CapacityA int              `json:"capacity_a"`
	CapacityB int              `json:"capacity_b"`
	Duration  time.Duration    `json:"duration"`
}

// LoadFile opens path and loads it.
func LoadFile(ctx context.Context, path string, config *Config, logger zerolog.Logger) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open edge list: %w", err)
	}
	defer file.Close()

	return Load(ctx, file, config, logger.With().Str("file", path).Logger())
}

// Load builds a graph from an edge list. Capacities left at 0 in config are
// inferred from the largest ids, which costs a first pass over r. Inference
// sizes the tables by the largest id, not by the number of vertices, so a
// single huge id would allocate a huge table; inferred capacities above
// graph.max_inferred_capacity are rejected with bipartite.ErrCapacityExceeded.
// Negative configured capacities are rejected the same way.
func Load(ctx context.Context, r io.ReadSeeker, config *Config, logger zerolog.Logger) (*Result, error) {
	start := time.Now()
	res := &Result{
		LoadID:    uuid.New().String(),
		CapacityA: config.CapacityA(),
		CapacityB: config.CapacityB(),
	}
	logger = logger.With().Str("load_id", res.LoadID).Logger()

	if res.CapacityA < 0 || res.CapacityB < 0 {
		return nil, fmt.Errorf("configured capacity (a=%d, b=%d) is negative: %w", res.CapacityA, res.CapacityB, bipartite.ErrCapacityExceeded)
	}

	if res.CapacityA == 0 || res.CapacityB == 0 {
		maxA, maxB, err := scanMaxIDs(ctx, r, config)
		if err != nil {
			return nil, err
		}
		limit := config.MaxInferredCapacity()
		if res.CapacityA == 0 {
			if res.CapacityA, err = inferCapacity("a", maxA, limit); err != nil {
				return nil, err
			}
		}
		if res.CapacityB == 0 {
			if res.CapacityB, err = inferCapacity("b", maxB, limit); err != nil {
				return nil, err
			}
		}
		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("rewind edge list: %w", err)
		}
		logger.Debug().
			Int("capacity_a", res.CapacityA).
			Int("capacity_b", res.CapacityB).
			Msg("Inferred capacities")
	}

	g, err := bipartite.New(res.CapacityA, res.CapacityB)
	if err != nil {
		return nil, err
	}
	res.Graph = g

	progressEvery := config.ProgressEvery()
	lines, err := scanEdges(ctx, r, config.CommentPrefix(), func(lineNo int, left, right int32) error {
		target := bipartite.LabelB(int(right))

		added, err := g.AddVertex(left)
		if err != nil {
			return err
		}
		if added {
			res.VerticesA++
		}
		if added, err = g.AddVertex(target); err != nil {
			return err
		}
		if added {
			res.VerticesB++
		}
		if _, err := g.AddEdge(left, target); err != nil {
			return err
		}
		res.Edges++

		if progressEvery > 0 && res.Edges%progressEvery == 0 {
			logger.Info().
				Int("line", lineNo).
				Int("edges", res.Edges).
				Msg("Loading edges")
		}
		return nil
	})
	res.Lines = lines
	if err != nil {
		return nil, err
	}

	if config.Compact() {
		g.Compact()
	}
	res.Duration = time.Since(start)

	logger.Info().
		Int("edges", res.Edges).
		Int("vertices_a", res.VerticesA).
		Int("vertices_b", res.VerticesB).
		Dur("duration", res.Duration).
		Msg("Edge list loaded")

	return res, nil
}

// inferCapacity sizes a partition to hold maxID. A limit <= 0 disables the
// bound.
func inferCapacity(partition string, maxID, limit int) (int, error) {
	capacity := maxID + 1
	if limit > 0 && capacity > limit {
		return 0, fmt.Errorf("inferred capacity %s=%d exceeds graph.max_inferred_capacity %d; set graph.capacity_%s explicitly: %w",
			partition, capacity, limit, partition, bipartite.ErrCapacityExceeded)
	}
	return capacity, nil
}

// scanMaxIDs returns the largest left and right ids in the edge list, or -1
// for a side with no edges.
func scanMaxIDs(ctx context.Context, r io.Reader, config *Config) (int, int, error) {
	maxA, maxB := -1, -1
	_, err := scanEdges(ctx, r, config.CommentPrefix(), func(_ int, left, right int32) error {
		maxA = max(maxA, int(left))
		maxB = max(maxB, int(right))
		return nil
	})
	return maxA, maxB, err
}

// scanEdges parses every edge line of r and hands it to fn. It returns the
// number of lines read.
func scanEdges(ctx context.Context, r io.Reader, commentPrefix string, fn func(lineNo int, left, right int32) error) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return lineNo, err
			}
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || (commentPrefix != "" && strings.HasPrefix(line, commentPrefix)) {
			continue
		}

		left, right, err := parseEdge(line)
		if err != nil {
			return lineNo, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := fn(lineNo, left, right); err != nil {
			return lineNo, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return lineNo, fmt.Errorf("read edge list: %w", err)
	}
	return lineNo, ctx.Err()
}

func parseEdge(line string) (int32, int32, error) {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("expected \"<left> <right>\", got %q", line)
	}
	left, err := parseID(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("left id: %w", err)
	}
	right, err := parseID(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("right id: %w", err)
	}
	return left, right, nil
}

func parseID(s string) (int32, error) {
	id, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	if id < 0 {
		return 0, fmt.Errorf("negative id %d", id)
	}
	return int32(id), nil
}
