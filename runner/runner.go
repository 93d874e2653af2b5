// Package runner wires the tokenizer, entity store, text-alignment,
// segment graph, cost model and alignment engine into the single
// Score entry point the CLI drives (spec §7).
package runner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/nescoring/nescore/align"
	"github.com/nescoring/nescore/config"
	"github.com/nescoring/nescore/costmodel"
	"github.com/nescoring/nescore/entity"
	"github.com/nescoring/nescore/internal/logger"
	"github.com/nescoring/nescore/refine"
	"github.com/nescoring/nescore/result"
	"github.com/nescoring/nescore/score"
	"github.com/nescoring/nescore/segment"
	"github.com/nescoring/nescore/tag"
	"github.com/nescoring/nescore/textalign"
	"github.com/nescoring/nescore/tokenizer"
)

// Config describes one scoring run, mirroring the original CLI's
// positional and flag arguments.
type Config struct {
	RefPath, HypPath, DescrPath string
	RefIsAref                   bool
}

// IOError wraps a failure reading an input file, distinguishing it
// from a usage or input-format error for the CLI's exit code (spec §7:
// 1 for usage/format errors, 2 for I/O errors).
type IOError struct {
	Err error
}

func (e *IOError) Error() string { return e.Err.Error() }
func (e *IOError) Unwrap() error { return e.Err }

// Result is everything the CLI's report layer needs to render output.
type Result struct {
	Store     *entity.Store
	Tags      *tag.Table
	ErrTypes  *tag.Table
	Data      []byte
	Alignment result.Result
	Counts    score.Counts
	CountRef  int
	CountHyp  int
}

// Score runs the full pipeline for cfg and returns the assembled
// alignment plus tallied counts, ready for report rendering.
func Score(cfg Config) (*Result, error) {
	refData, err := os.ReadFile(cfg.RefPath)
	if err != nil {
		return nil, &IOError{fmt.Errorf("runner: read reference: %w", err)}
	}
	hypData, err := os.ReadFile(cfg.HypPath)
	if err != nil {
		return nil, &IOError{fmt.Errorf("runner: read hypothesis: %w", err)}
	}

	var tags tag.Table
	var errs tag.Table
	store := entity.NewStore()

	stageStart := time.Now()
	refText, err := extractSides(cfg, refData, hypData, &tags, store)
	if err != nil {
		return nil, err
	}
	logger.Debug("tokenized", "entities", store.Len(), "elapsed", time.Since(stageStart))

	stageStart = time.Now()
	if err := refine.Entities(store, refText); err != nil {
		return nil, fmt.Errorf("runner: refine entities: %w", err)
	}
	logger.Debug("refined entity boundaries", "elapsed", time.Since(stageStart))

	table, err := config.Load(cfg.DescrPath)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, &IOError{err}
		}
		return nil, err
	}
	model := config.BuildModel(tags.Names(), table)

	stageStart = time.Now()
	if err := costmodel.PopulateMissCosts(model, store, &tags, &errs, refText); err != nil {
		return nil, err
	}
	logger.Debug("computed miss costs", "elapsed", time.Since(stageStart))

	segments := segment.Build(store)
	logger.Debug("built segment graph", "segments", len(segments))

	stageStart = time.Now()
	if err := costmodel.PopulateSubstitutionCosts(model, store, segments, &tags, &errs, refText); err != nil {
		return nil, err
	}
	logger.Debug("computed substitution costs", "elapsed", time.Since(stageStart))

	stageStart = time.Now()
	deltas, frontiers, err := align.Run(store, segments)
	if err != nil {
		return nil, fmt.Errorf("runner: align: %w", err)
	}
	logger.Debug("aligned", "elapsed", time.Since(stageStart))

	assembled := result.Assemble(deltas, frontiers)
	counts := score.Compute(assembled, store, tags.Len())

	return &Result{
		Store:     store,
		Tags:      &tags,
		ErrTypes:  &errs,
		Data:      refText,
		Alignment: assembled,
		Counts:    counts,
		CountRef:  len(store.BySide(entity.Reference)),
		CountHyp:  len(store.BySide(entity.Hypothesis)),
	}, nil
}

// extractSides tokenizes reference and hypothesis text per cfg, builds
// both sides' entities into store, and repositions hypothesis tag
// offsets onto the reference text (spec §7, grounded on
// align_and_reposition — the hypothesis side always needs repositioning
// onto the reference text, even when both sides share the same tokenizer
// format, since ref_data and hyp_data are independently whitespace-
// normalized copies of the same document).
func extractSides(cfg Config, refData, hypData []byte, tags *tag.Table, store *entity.Store) ([]byte, error) {
	var refText []byte
	var refEvents []entity.OpenTag
	var refMarkers []entity.ArefMarker
	var err error

	if cfg.RefIsAref {
		refText, refMarkers, err = tokenizer.ExtractArefMarkers(refData, tags)
	} else {
		refText, refEvents, err = tokenizer.ExtractXMLTags(refData, tags)
	}
	if err != nil {
		return nil, fmt.Errorf("runner: tokenize reference: %w", err)
	}

	hypText, hypEvents, err := tokenizer.ExtractXMLTags(hypData, tags)
	if err != nil {
		return nil, fmt.Errorf("runner: tokenize hypothesis: %w", err)
	}

	hypPos := make([]int, len(hypEvents))
	for i, ev := range hypEvents {
		hypPos[i] = ev.Pos
	}
	newPos, err := textalign.Reposition(refText, hypText, hypPos)
	if err != nil {
		return nil, err
	}
	for i := range hypEvents {
		hypEvents[i].Pos = newPos[i]
	}

	if cfg.RefIsAref {
		if err := store.BuildFromAref(refMarkers, entity.Reference); err != nil {
			return nil, fmt.Errorf("runner: build reference entities: %w", err)
		}
	} else {
		if err := store.BuildFromEvents(refEvents, entity.Reference); err != nil {
			return nil, fmt.Errorf("runner: build reference entities: %w", err)
		}
	}
	if err := store.BuildFromEvents(hypEvents, entity.Hypothesis); err != nil {
		return nil, fmt.Errorf("runner: build hypothesis entities: %w", err)
	}

	return refText, nil
}
