package searcher

import "conquest/game"

// raid simulates every legal raid from origin for the acting side and returns the
// best value for that side, the direction that first reached it and whether any
// raid was legal at all. The board is restored after each simulated raid.
func (s *search) raid(origin, depth int, maximizing bool, w *window) (int, game.Direction, bool) {
	actor := s.actor(maximizing)
	value := worst(maximizing)
	best := game.Left
	legal := false

	for _, dir := range game.Directions {
		dest, ok := s.board.Neighbor(origin, dir)
		if !ok || s.board.Owner(dest) != game.Empty {
			continue
		}
		s.metrics.AddRaid()

		// Every-max records made below a raid are undone with it.
		snapshot, saved := s.board.Snapshot(), s.global
		s.board.Occupy(dest, actor)
		s.board.Capture(dest, actor)
		v := s.child(depth, maximizing, w)
		s.board.Restore(snapshot)
		s.global = saved

		if better(maximizing, v, value) {
			value, best = v, dir
		}
		legal = true

		if maximizing {
			s.recordRaidDirection(dir, value)
		}
	}
	return value, best, legal
}
