package ucdparse

import (
	"strings"
	"testing"
)

func TestParseRangeLine(t *testing.T) {
	input := strings.NewReader("000E..001F    ; Cc # <control-000E>..<control-001F>")
	sc, err := New(input)
	if err != nil {
		t.Fatal(err)
	}
	if !sc.Next() {
		t.Fatal(sc.Err())
	}
	t.Logf("token = %v", sc.Token())
	if sc.Token().Field(0) != "Cc" {
		t.Errorf("expected field #0 to be 'Cc', is %q", sc.Token().Field(0))
	}
	from, to := sc.Token().Range()
	if from != 0x0e || to != 0x1f {
		t.Errorf("expected range to be 0E..1F, is %02X..%02X", from, to)
	}
	if sc.Next() {
		t.Errorf("expected no further token")
	}
	if sc.Err() != nil {
		t.Errorf("expected clean end of input, have %v", sc.Err())
	}
}

func TestParseSingleAndComments(t *testing.T) {
	input := strings.NewReader(`# DerivedGeneralCategory excerpt

0041..005A    ; Lu
00AA          ; Lo # FEMININE ORDINAL INDICATOR
`)
	var tokens []*Token
	err := Parse(input, func(token *Token) {
		tokens = append(tokens, token)
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, have %d", len(tokens))
	}
	if from, to := tokens[1].Range(); from != 0xAA || to != 0xAA {
		t.Errorf("expected single code point 00AA, is %02X..%02X", from, to)
	}
	if tokens[1].Comment != "FEMININE ORDINAL INDICATOR" {
		t.Errorf("unexpected comment %q", tokens[1].Comment)
	}
}

func TestParseBadHex(t *testing.T) {
	input := strings.NewReader("XYZ ; Lu")
	sc, _ := New(input)
	if sc.Next() {
		t.Errorf("expected scanning to fail")
	}
	if sc.Err() == nil {
		t.Errorf("expected a decoding error")
	}
}
