package janggi

// pieceRule is the static movement description of one piece type.
type pieceRule struct {
	template   []Delta
	blockers   map[Delta][]Delta // interposed squares, relative to the start square
	palaceOnly bool
}

var pass = Delta{0, 0}

var kingSteps = []Delta{
	pass,
	{1, 0}, {1, 1}, {1, -1},
	{-1, 0}, {-1, 1}, {-1, -1},
	{0, 1}, {0, -1},
}

// Elephant: one straight step, then two diagonal steps. Both interposed squares must be empty.
var elephantBlockers = map[Delta][]Delta{
	{2, 3}:   {{0, 1}, {1, 2}},
	{2, -3}:  {{0, -1}, {1, -2}},
	{-2, 3}:  {{0, 1}, {-1, 2}},
	{-2, -3}: {{0, -1}, {-1, -2}},
	{3, 2}:   {{1, 0}, {2, 1}},
	{3, -2}:  {{1, 0}, {2, -1}},
	{-3, 2}:  {{-1, 0}, {-2, 1}},
	{-3, -2}: {{-1, 0}, {-2, -1}},
}

// Horse: one straight step, then one diagonal step.
var horseBlockers = map[Delta][]Delta{
	{1, 2}:   {{0, 1}},
	{1, -2}:  {{0, -1}},
	{-1, 2}:  {{0, 1}},
	{-1, -2}: {{0, -1}},
	{2, 1}:   {{1, 0}},
	{2, -1}:  {{1, 0}},
	{-2, 1}:  {{-1, 0}},
	{-2, -1}: {{-1, 0}},
}

var (
	catalog          [PieceSoldier + 1]pieceRule
	soldierTemplates [2][]Delta
	templateSets     [PieceSoldier + 1]map[Delta]bool
	soldierSets      [2]map[Delta]bool
)

func init() {
	catalog[PieceGeneral] = pieceRule{template: kingSteps, palaceOnly: true}
	catalog[PieceGuard] = pieceRule{template: kingSteps, palaceOnly: true}
	// No pass vector: a Chariot cannot forfeit a turn.
	catalog[PieceChariot] = pieceRule{template: straightLines(1, false)}
	catalog[PieceElephant] = pieceRule{template: leaps(elephantBlockers), blockers: elephantBlockers}
	catalog[PieceHorse] = pieceRule{template: leaps(horseBlockers), blockers: horseBlockers}
	catalog[PieceCannon] = pieceRule{template: straightLines(2, true)}

	soldierTemplates[Red] = []Delta{pass, {1, 0}, {0, -1}, {0, 1}}
	soldierTemplates[Blue] = []Delta{pass, {-1, 0}, {0, -1}, {0, 1}}

	for pt := PieceGeneral; pt <= PieceCannon; pt++ {
		templateSets[pt] = toSet(catalog[pt].template)
	}
	soldierSets[Red] = toSet(soldierTemplates[Red])
	soldierSets[Blue] = toSet(soldierTemplates[Blue])
}

// straightLines lists every horizontal and vertical displacement of at least minLen.
func straightLines(minLen int, withPass bool) []Delta {
	var out []Delta
	if withPass {
		out = append(out, pass)
	}
	for n := minLen; n < Rows; n++ {
		out = append(out, Delta{n, 0}, Delta{-n, 0})
		if n < Cols {
			out = append(out, Delta{0, n}, Delta{0, -n})
		}
	}
	return out
}

func leaps(blockers map[Delta][]Delta) []Delta {
	out := []Delta{pass}
	// fixed order so enumeration is deterministic
	for _, d := range []Delta{
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2}, {2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{2, 3}, {2, -3}, {-2, 3}, {-2, -3}, {3, 2}, {3, -2}, {-3, 2}, {-3, -2},
	} {
		if _, ok := blockers[d]; ok {
			out = append(out, d)
		}
	}
	return out
}

func toSet(ds []Delta) map[Delta]bool {
	m := make(map[Delta]bool, len(ds))
	for _, d := range ds {
		m[d] = true
	}
	return m
}

// Template returns the displacement vectors a piece of the given type may use.
// Only the Soldier depends on the team. The returned slice must not be modified.
func Template(pt PieceType, team Team) []Delta {
	if pt == PieceSoldier {
		if team != Red && team != Blue {
			return nil
		}
		return soldierTemplates[team]
	}
	if pt <= PieceNone || pt > PieceSoldier {
		return nil
	}
	return catalog[pt].template
}

func inTemplate(pt PieceType, team Team, d Delta) bool {
	if pt == PieceSoldier {
		if team != Red && team != Blue {
			return false
		}
		return soldierSets[team][d]
	}
	if pt <= PieceNone || pt > PieceSoldier {
		return false
	}
	return templateSets[pt][d]
}

func blockers(pt PieceType, d Delta) []Delta {
	if pt <= PieceNone || pt > PieceSoldier {
		return nil
	}
	return catalog[pt].blockers[d]
}

// PalaceOnly reports whether the piece type must stay on palace squares.
func PalaceOnly(pt PieceType) bool {
	if pt <= PieceNone || pt > PieceSoldier {
		return false
	}
	return catalog[pt].palaceOnly
}
