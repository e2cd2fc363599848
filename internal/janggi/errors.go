package janggi

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrGameFinished = errors.New("game already finished")
	ErrNoPiece      = errors.New("no piece on start square")
	ErrWrongTurn    = errors.New("piece does not belong to the side to move")
	ErrOffBoard     = errors.New("square off board")

	ErrNotInTemplate  = errors.New("displacement not allowed for piece")
	ErrOutsidePalace  = errors.New("piece must stay inside the palace")
	ErrBlocked        = errors.New("path blocked")
	ErrSelfCapture    = errors.New("cannot capture own piece")
	ErrChariotBlocked = errors.New("chariot path not clear")
	ErrCannonCapture  = errors.New("cannon cannot capture a cannon")
	ErrCannonScreen   = errors.New("cannon must jump exactly one non-cannon piece")

	ErrSelfExposure = errors.New("move leaves own general in check")
)

type RejectionKind int8

const (
	StructuralRejection RejectionKind = iota + 1
	GeometryRejection
	SelfExposureRejection
)

func (k RejectionKind) String() string {
	switch k {
	case StructuralRejection:
		return "structural"
	case GeometryRejection:
		return "geometry"
	case SelfExposureRejection:
		return "self_exposure"
	}
	return "unknown"
}

// MoveError is returned by SubmitMove for every rejected move.
type MoveError struct {
	Kind     RejectionKind
	From, To Square
	Err      error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move (%d,%d)->(%d,%d) rejected: %v", e.From.Row, e.From.Col, e.To.Row, e.To.Col, e.Err)
}

func (e *MoveError) Unwrap() error { return e.Err }

func reject(kind RejectionKind, from, to Square, err error) error {
	return &MoveError{Kind: kind, From: from, To: to, Err: err}
}

// KindOf returns the rejection kind carried by err, or 0 if err is not a move rejection.
func KindOf(err error) RejectionKind {
	var me *MoveError
	if errors.As(err, &me) {
		return me.Kind
	}
	return 0
}
