package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestStringListDecodesLegacyStringValue(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"images": "https://example.com/a.jpg"})
	if err != nil {
		t.Fatal(err)
	}

	var b Business
	if err := bson.Unmarshal(raw, &b); err != nil {
		t.Fatalf("legacy string value must decode: %v", err)
	}
	if len(b.Images) != 1 || b.Images[0] != "https://example.com/a.jpg" {
		t.Fatalf("images = %v", b.Images)
	}
}

func TestStringListRoundTripsArray(t *testing.T) {
	in := Business{ID: "1", Images: StringList{"a", "b"}}

	raw, err := bson.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}

	var out Business
	if err := bson.Unmarshal(raw, &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Images) != 2 || out.Images[0] != "a" || out.Images[1] != "b" {
		t.Fatalf("images = %v", out.Images)
	}
}

func TestStringListIgnoresBlankLegacyValue(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"images": "   "})
	if err != nil {
		t.Fatal(err)
	}

	var b Business
	if err := bson.Unmarshal(raw, &b); err != nil {
		t.Fatal(err)
	}
	if len(b.Images) != 0 {
		t.Fatalf("blank legacy value should decode empty, got %v", b.Images)
	}
}
