package janggi

type CheckResult int8

const (
	NoCheck       CheckResult = iota
	DeliversCheck             // the side that just moved attacks the opposing General
	SelfExposed               // the side that just moved left its own General attacked
)

func (r CheckResult) String() string {
	switch r {
	case DeliversCheck:
		return "delivers_check"
	case SelfExposed:
		return "self_exposed"
	}
	return "no_check"
}

// Classify inspects the position after mover has moved. Squares are scanned in
// row-major order and every piece is asked whether it can reach the opposing
// General. Self-exposure stops the scan; a delivered check does not, so an
// exposing piece later in the scan still invalidates the move.
func (b *Board) Classify(mover Team) CheckResult {
	if mover != Red && mover != Blue {
		return NoCheck
	}
	own := b.Generals[mover]
	enemy := b.Generals[mover.Opponent()]
	result := NoCheck
	for idx, pc := range b.Squares {
		if pc == 0 {
			continue
		}
		from := squareAt(idx)
		if pc.Team() == mover {
			if result == NoCheck && b.validate(pc, from, enemy) == nil {
				result = DeliversCheck
			}
			continue
		}
		if b.validate(pc, from, own) == nil {
			return SelfExposed
		}
	}
	return result
}

// Attacked reports whether any piece of team's opponent can reach team's General.
func (b *Board) Attacked(team Team) bool {
	if team != Red && team != Blue {
		return false
	}
	target := b.Generals[team]
	for idx, pc := range b.Squares {
		if pc == 0 || pc.Team() == team {
			continue
		}
		if b.validate(pc, squareAt(idx), target) == nil {
			return true
		}
	}
	return false
}
