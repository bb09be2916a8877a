package engine

import (
	"context"
	"fmt"
)

type WallResult struct {
	Bricks   int
	Walls    int
	Total    int
	Changed  bool
	Finished bool
}

// SetBricks stores n clamped to [0, BrickCapacity].
func (s *Service) SetBricks(ctx context.Context, n int) WallResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.state.Wall.BricksInCurrent
	s.state.Wall.BricksInCurrent = clamp(n, 0, BrickCapacity)
	s.commitLocked(ctx, "wall.set", s.todayLocked())
	return s.wallResultLocked(before != s.state.Wall.BricksInCurrent, false)
}

// AddBrick places one brick; a full wall is left as is.
func (s *Service) AddBrick(ctx context.Context) WallResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Wall.BricksInCurrent >= BrickCapacity {
		return s.wallResultLocked(false, false)
	}
	s.state.Wall.BricksInCurrent++
	s.commitLocked(ctx, "wall.add", s.todayLocked())
	return s.wallResultLocked(true, false)
}

// CompleteWall closes a full wall: walls completed goes up by one and the
// current wall starts empty. A wall that is not full is rejected unchanged.
func (s *Service) CompleteWall(ctx context.Context) (WallResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Wall.BricksInCurrent < BrickCapacity {
		return s.wallResultLocked(false, false), RejectionError{
			Action: "complete wall",
			Reason: fmt.Sprintf("%d of %d bricks placed", s.state.Wall.BricksInCurrent, BrickCapacity),
		}
	}
	s.state.Wall.WallsCompleted++
	s.state.Wall.BricksInCurrent = 0
	s.commitLocked(ctx, "wall.complete", s.todayLocked())
	return s.wallResultLocked(true, true), nil
}

// ResetWall empties the current wall. Completed walls are kept.
func (s *Service) ResetWall(ctx context.Context) WallResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := s.state.Wall.BricksInCurrent != 0
	s.state.Wall.BricksInCurrent = 0
	s.commitLocked(ctx, "wall.reset", s.todayLocked())
	return s.wallResultLocked(changed, false)
}

func (s *Service) SetBrickNotes(ctx context.Context, notes string) {
	s.setNotes(ctx, "wall.notes", func(d *DayRecord) { d.BrickNotes = normalizeNotes(notes) })
}

func (s *Service) wallResultLocked(changed bool, finished bool) WallResult {
	w := s.state.Wall
	return WallResult{
		Bricks:   w.BricksInCurrent,
		Walls:    w.WallsCompleted,
		Total:    TotalBricks(w),
		Changed:  changed,
		Finished: finished,
	}
}

type WallView struct {
	Bricks   int
	Capacity int
	Walls    int
	Total    int
	Full     bool
	Notes    string
}

func (s *Service) Wall() WallView {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.state.Wall
	return WallView{
		Bricks:   w.BricksInCurrent,
		Capacity: BrickCapacity,
		Walls:    w.WallsCompleted,
		Total:    TotalBricks(w),
		Full:     w.BricksInCurrent >= BrickCapacity,
		Notes:    s.state.day(s.todayLocked()).BrickNotes,
	}
}
