package pylit

import (
	"testing"
)

// ============================================================
// Marshal / Unmarshal Tests
// ============================================================

// fixture is a hand-written binding exercising the struct protocol end
// to end, unknown-field skipping included.
type fixture struct {
	ID    int64
	Name  string
	Tags  []string
	Score *int64 // optional
}

func (f *fixture) EncodeLiteral(e *Encoder) error {
	if err := e.BeginStruct(); err != nil {
		return err
	}
	if err := e.Str("id"); err != nil {
		return err
	}
	if err := e.Int(f.ID); err != nil {
		return err
	}
	if err := e.Str("name"); err != nil {
		return err
	}
	if err := e.Str(f.Name); err != nil {
		return err
	}
	if err := e.Str("tags"); err != nil {
		return err
	}
	if err := e.BeginList(); err != nil {
		return err
	}
	for _, tag := range f.Tags {
		if err := e.Str(tag); err != nil {
			return err
		}
	}
	if err := e.EndList(); err != nil {
		return err
	}
	if err := e.Str("score"); err != nil {
		return err
	}
	if f.Score == nil {
		if err := e.None(); err != nil {
			return err
		}
	} else if err := e.Int(*f.Score); err != nil {
		return err
	}
	return e.EndStruct()
}

func (f *fixture) DecodeLiteral(d *Decoder) error {
	if err := d.BeginStruct(); err != nil {
		return err
	}
	for {
		more, err := d.More()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		name, err := d.Str()
		if err != nil {
			return err
		}
		if err := d.Colon(); err != nil {
			return err
		}
		switch name {
		case "id":
			f.ID, err = d.Int64()
		case "name":
			f.Name, err = d.Str()
		case "tags":
			err = d.BeginList()
			for err == nil {
				var more bool
				if more, err = d.More(); err != nil || !more {
					break
				}
				var tag string
				if tag, err = d.Str(); err == nil {
					f.Tags = append(f.Tags, tag)
				}
			}
		case "score":
			var none bool
			if none, err = d.None(); err == nil && !none {
				var v int64
				if v, err = d.Int64(); err == nil {
					f.Score = &v
				}
			}
		default:
			err = d.Skip()
		}
		if err != nil {
			return err
		}
	}
}

func TestMarshalStruct(t *testing.T) {
	score := int64(90)
	f := &fixture{ID: 7, Name: "ada", Tags: []string{"x", "y"}, Score: &score}
	got, err := MarshalString(f)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	want := `{"id":7,"name":"ada","tags":["x","y"],"score":90}`
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestMarshalStructNoneField(t *testing.T) {
	f := &fixture{ID: 1, Name: "n"}
	got, err := MarshalString(f)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	want := `{"id":1,"name":"n","tags":[],"score":None}`
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestUnmarshalStruct(t *testing.T) {
	var f fixture
	err := UnmarshalString(`{"id":7,"name":"ada","tags":["x","y"],"score":90}`, &f)
	if err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if f.ID != 7 || f.Name != "ada" || len(f.Tags) != 2 || f.Score == nil || *f.Score != 90 {
		t.Fatalf("got %+v", f)
	}
}

func TestUnmarshalTolerance(t *testing.T) {
	// Unknown fields, comments, shuffled order, trailing commas, and a
	// null score all pass through the same binding.
	in := `{
	  "name": 'ada',   # display name
	  "future": {"nested": [1, 2, (3,)]},
	  "id": 7,
	  "score": null,
	  "tags": [],
	}`
	var f fixture
	if err := UnmarshalString(in, &f); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if f.ID != 7 || f.Name != "ada" || f.Score != nil || len(f.Tags) != 0 {
		t.Fatalf("got %+v", f)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	score := int64(-5)
	in := &fixture{ID: 99, Name: "grace 'g'", Tags: []string{"a", `"b"`}, Score: &score}
	text, err := MarshalString(in)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var out fixture
	if err := UnmarshalString(text, &out); err != nil {
		t.Fatalf("Unmarshal of %s: %v", text, err)
	}
	if out.ID != in.ID || out.Name != in.Name || *out.Score != *in.Score {
		t.Fatalf("round trip of %s gave %+v", text, out)
	}
	if len(out.Tags) != 2 || out.Tags[1] != `"b"` {
		t.Fatalf("tags = %q", out.Tags)
	}
}

func TestValueAsDecodable(t *testing.T) {
	var v Value
	if err := UnmarshalString("[1, None]", &v); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !v.Equal(List(Int(1), None())) {
		t.Fatalf("got %s", v.String())
	}
}
