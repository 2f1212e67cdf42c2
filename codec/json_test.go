package codec_test

import (
	"testing"

	cssel "github.com/cssel/cssel"
	"github.com/cssel/cssel/codec"
)

func TestSerialize_FieldOrderFollowsDeclaration(t *testing.T) {
	got, err := codec.Serialize(cssel.NewRect(10, 20))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != `{"width":10,"height":20}` {
		t.Fatalf("got %q", got)
	}
}

func TestSerialize_UnsupportedValue(t *testing.T) {
	_, err := codec.Serialize(make(chan int))
	if err == nil {
		t.Fatalf("expected error for channel value")
	}
	iss, ok := cssel.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != cssel.CodeSerialize {
		t.Fatalf("expected serialize_error, got: %v", err)
	}
	if iss[0].Cause == nil {
		t.Fatalf("expected underlying cause to be attached")
	}
}

// TestRoundTrip_RectKeepsBehavior checks that serialize-then-deserialize into
// the concrete type yields the original field values with the type's methods
// callable on the result.
func TestRoundTrip_RectKeepsBehavior(t *testing.T) {
	wire, err := codec.Serialize(cssel.NewRect(3, 4))
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	r, err := codec.Deserialize[cssel.Rect](wire)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	if r.Width != 3 || r.Height != 4 {
		t.Fatalf("field values lost: %+v", r)
	}
	if r.Area() != 12 {
		t.Fatalf("behavior not attached: area=%v", r.Area())
	}
}

func TestDeserialize_MalformedInput(t *testing.T) {
	_, err := codec.Deserialize[cssel.Rect](`{"width": 10,`)
	if !cssel.IsParseError(err) {
		t.Fatalf("expected parse_error, got: %v", err)
	}
	iss, _ := cssel.AsIssues(err)
	if len(iss) == 0 || iss[0].Cause == nil {
		t.Fatalf("expected underlying cause to be attached, got: %v", err)
	}
}

func TestDeserialize_IntoMap(t *testing.T) {
	m, err := codec.Deserialize[map[string]any](`{"a":1,"b":"x"}`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(m) != 2 || m["b"] != "x" {
		t.Fatalf("got %v", m)
	}
}
