package serializers

// Either holds exactly one of two alternatives. The zero value holds neither.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
	present bool
}

// Left returns an Either holding the left alternative
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v, present: true}
}

// Right returns an Either holding the right alternative
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true, present: true}
}

// IsPresent reports whether either side has been set
func (e Either[L, R]) IsPresent() bool {
	return e.present
}

func (e Either[L, R]) IsLeft() bool {
	return e.present && !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.present && e.isRight
}

// Left returns the left value and true when the left side is held
func (e Either[L, R]) Left() (L, bool) {
	return e.left, e.IsLeft()
}

// Right returns the right value and true when the right side is held
func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.IsRight()
}
