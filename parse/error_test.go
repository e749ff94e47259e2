package parse

import "testing"

func TestErrorPushIsCopyOnWrite(t *testing.T) {
	loc := NewLocation("input")
	base := NewError(loc, "inner")

	left := base.Push(loc, "left context")
	right := base.Push(loc, "right context")

	if n := len(base.Frames()); n != 1 {
		t.Fatalf("base grew to %d frames", n)
	}
	if got := left.Frames()[1].Message; got != "left context" {
		t.Errorf("left outer frame = %q", got)
	}
	if got := right.Frames()[1].Message; got != "right context" {
		t.Errorf("right outer frame = %q", got)
	}
}

func TestErrorFrameOrder(t *testing.T) {
	loc := NewLocation("input")
	err := NewError(loc, "inner").Push(loc, "middle").Push(loc, "outer")

	want := []string{"inner", "middle", "outer"}
	frames := err.Frames()
	if len(frames) != len(want) {
		t.Fatalf("got %d frames, want %d", len(frames), len(want))
	}
	for i, msg := range want {
		if frames[i].Message != msg {
			t.Errorf("frame %d = %q, want %q", i, frames[i].Message, msg)
		}
	}
	if err.Deepest().Message != "inner" {
		t.Errorf("Deepest() = %q", err.Deepest().Message)
	}
}

func TestErrorRendering(t *testing.T) {
	input := "{\n  \"a\":\n}"
	at := NewLocation(input).Advance(9) // the closing brace
	start := NewLocation(input)

	err := NewError(at, "expected ':'").
		Push(start, `value for key "a"`).
		Push(start, "object")

	want := `expected ':' at line 3, column 1 (while parsing value for key "a", in object)`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorRenderingSingleFrame(t *testing.T) {
	err := NewError(NewLocation("x"), "expected 'y'")
	want := "expected 'y' at line 1, column 1"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestFurthestPrefersDeeperAnchor(t *testing.T) {
	loc := NewLocation("abcdef")
	shallow := NewError(loc.Advance(1), "shallow")
	deep := NewError(loc.Advance(4), "deep")

	if got := furthest(shallow, deep); got != deep {
		t.Error("furthest did not pick the deeper error")
	}
	if got := furthest(deep, shallow); got != deep {
		t.Error("furthest did not keep the deeper error")
	}
}

func TestFurthestTieKeepsFirst(t *testing.T) {
	loc := NewLocation("abc").Advance(1)
	first := NewError(loc, "first")
	second := NewError(loc, "second")
	if got := furthest(first, second); got != first {
		t.Error("tie did not keep the first error")
	}
}

func TestCommitPreservedByPush(t *testing.T) {
	loc := NewLocation("x")
	err := NewError(loc, "inner").commit().Push(loc, "outer")
	if !err.Committed() {
		t.Error("Push dropped the committed bit")
	}
}
