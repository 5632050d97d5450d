package serializers

import "testing"

func TestEither(t *testing.T) {
	var absent Either[string, int]
	if absent.IsPresent() || absent.IsLeft() || absent.IsRight() {
		t.Fatal(`zero value must hold neither side`)
	}

	l := Left[string, int](`config`)
	if v, ok := l.Left(); !ok || v != `config` {
		t.Errorf(`need config, have %v`, v)
	}

	if _, ok := l.Right(); ok || l.IsRight() {
		t.Error(`left must not expose a right value`)
	}

	r := Right[string, int](10)
	if v, ok := r.Right(); !ok || v != 10 {
		t.Errorf(`need 10, have %v`, v)
	}

	if _, ok := r.Left(); ok || r.IsLeft() {
		t.Error(`right must not expose a left value`)
	}
}
