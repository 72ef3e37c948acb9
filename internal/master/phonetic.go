package master

import (
	"strings"
	"unicode"
)

// Kana rows used to bucket Japanese phonetic readings, in gojuon order.
var kanaRows = []struct {
	Label string
	Chars string
}{
	{"あ", "あいうえお"},
	{"か", "かきくけこがぎぐげご"},
	{"さ", "さしすせそざじずぜぞ"},
	{"た", "たちつてとだぢづでど"},
	{"な", "なにぬねの"},
	{"は", "はひふへほばびぶべぼぱぴぷぺぽ"},
	{"ま", "まみむめも"},
	{"や", "やゆよ"},
	{"ら", "らりるれろ"},
	{"わ", "わをん"},
}

// PhoneticGroup buckets a phonetic reading for the person-pick index: kana
// readings land in their gojuon row, Latin readings in their first letter,
// everything else in "#".
func PhoneticGroup(reading string) string {
	s := strings.TrimSpace(reading)
	if s == "" {
		return "#"
	}
	r := []rune(s)[0]
	if h := toHiragana(r); h != 0 {
		for _, row := range kanaRows {
			if strings.ContainsRune(row.Chars, h) {
				return row.Label
			}
		}
		return "#"
	}
	if unicode.IsLetter(r) && r < 128 {
		return strings.ToUpper(string(r))
	}
	return "#"
}

// PhoneticGroups returns the index-bar labels in display order: the kana
// rows, then A-Z, then the catch-all bucket.
func PhoneticGroups() []string {
	out := make([]string, 0, len(kanaRows)+27)
	for _, row := range kanaRows {
		out = append(out, row.Label)
	}
	for r := 'A'; r <= 'Z'; r++ {
		out = append(out, string(r))
	}
	return append(out, "#")
}

// toHiragana maps a katakana rune to its hiragana counterpart and returns
// hiragana unchanged; 0 means the rune is not kana.
func toHiragana(r rune) rune {
	if r >= 0x30a1 && r <= 0x30f6 {
		return r - 0x60
	}
	if r >= 0x3041 && r <= 0x3096 {
		return r
	}
	return 0
}
