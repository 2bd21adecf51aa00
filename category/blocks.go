package category

import "github.com/npillmayer/uniset"

// blockRanges lists the named Unicode blocks of the Basic Multilingual
// Plane in their textual range notation, as used by XML Schema's
// \p{IsName} escapes. The notation is a character class body and is
// parsed with ranges unexpanded.
var blockRanges = map[string]string{
	"IsBasicLatin":                         "\u0000-\u007F",
	"IsLatin-1Supplement":                  "-ÿ",
	"IsLatinExtended-A":                    "Ā-ſ",
	"IsLatinExtended-B":                    "ƀ-ɏ",
	"IsIPAExtensions":                      "ɐ-ʯ",
	"IsSpacingModifierLetters":             "ʰ-˿",
	"IsCombiningDiacriticalMarks":          "̀-ͯ",
	"IsGreek":                              "Ͱ-Ͽ",
	"IsCyrillic":                           "Ѐ-ӿ",
	"IsArmenian":                           "԰-֏",
	"IsHebrew":                             "֐-׿",
	"IsArabic":                             "؀-ۿ",
	"IsSyriac":                             "܀-ݏ",
	"IsThaana":                             "ހ-޿",
	"IsDevanagari":                         "ऀ-ॿ",
	"IsBengali":                            "ঀ-৿",
	"IsGurmukhi":                           "਀-੿",
	"IsGujarati":                           "઀-૿",
	"IsOriya":                              "଀-୿",
	"IsTamil":                              "஀-௿",
	"IsTelugu":                             "ఀ-౿",
	"IsKannada":                            "ಀ-೿",
	"IsMalayalam":                          "ഀ-ൿ",
	"IsSinhala":                            "඀-෿",
	"IsThai":                               "฀-๿",
	"IsLao":                                "຀-໿",
	"IsTibetan":                            "ༀ-࿿",
	"IsMyanmar":                            "က-႟",
	"IsGeorgian":                           "Ⴀ-ჿ",
	"IsHangulJamo":                         "ᄀ-ᇿ",
	"IsEthiopic":                           "ሀ-፿",
	"IsCherokee":                           "Ꭰ-᏿",
	"IsUnifiedCanadianAboriginalSyllabics": "᐀-ᙿ",
	"IsOgham":                              " -᚟",
	"IsRunic":                              "ᚠ-᛿",
	"IsKhmer":                              "ក-៿",
	"IsMongolian":                          "᠀-᢯",
	"IsLatinExtendedAdditional":            "Ḁ-ỿ",
	"IsGreekExtended":                      "ἀ-῿",
	"IsGeneralPunctuation":                 " -⁯",
	"IsSuperscriptsandSubscripts":          "⁰-₟",
	"IsCurrencySymbols":                    "₠-⃏",
	"IsCombiningMarksforSymbols":           "⃐-⃿",
	"IsLetterlikeSymbols":                  "℀-⅏",
	"IsNumberForms":                        "⅐-↏",
	"IsArrows":                             "←-⇿",
	"IsMathematicalOperators":              "∀-⋿",
	"IsMiscellaneousTechnical":             "⌀-⏿",
	"IsControlPictures":                    "␀-␿",
	"IsOpticalCharacterRecognition":        "⑀-⑟",
	"IsEnclosedAlphanumerics":              "①-⓿",
	"IsBoxDrawing":                         "─-╿",
	"IsBlockElements":                      "▀-▟",
	"IsGeometricShapes":                    "■-◿",
	"IsMiscellaneousSymbols":               "☀-⛿",
	"IsDingbats":                           "✀-➿",
	"IsBraillePatterns":                    "⠀-⣿",
	"IsCJKRadicalsSupplement":              "⺀-⻿",
	"IsKangxiRadicals":                     "⼀-⿟",
	"IsIdeographicDescriptionCharacters":   "⿰-⿿",
	"IsCJKSymbolsandPunctuation":           "　-〿",
	"IsHiragana":                           "぀-ゟ",
	"IsKatakana":                           "゠-ヿ",
	"IsBopomofo":                           "㄀-ㄯ",
	"IsHangulCompatibilityJamo":            "㄰-㆏",
	"IsKanbun":                             "㆐-㆟",
	"IsBopomofoExtended":                   "ㆠ-ㆿ",
	"IsEnclosedCJKLettersandMonths":        "㈀-㋿",
	"IsCJKCompatibility":                   "㌀-㏿",
	"IsCJKUnifiedIdeographsExtensionA":     "㐀-䶵",
	"IsCJKUnifiedIdeographs":               "一-鿿",
	"IsYiSyllables":                        "ꀀ-꒏",
	"IsYiRadicals":                         "꒐-꓏",
	"IsHangulSyllables":                    "가-힣",
	"IsPrivateUse":                         "-",
	"IsCJKCompatibilityIdeographs":         "豈-﫿",
	"IsAlphabeticPresentationForms":        "ﬀ-ﭏ",
	"IsArabicPresentationForms-A":          "ﭐ-﷿",
	"IsCombiningHalfMarks":                 "︠-︯",
	"IsCJKCompatibilityForms":              "︰-﹏",
	"IsSmallFormVariants":                  "﹐-﹯",
	"IsArabicPresentationForms-B":          "ﹰ-﻾",
	"IsSpecials":                           "\uFEFF\uFFF0-\uFFFD",
	"IsHalfwidthandFullwidthForms":         "＀-￯",
}

// The surrogate blocks cannot be spelled as UTF-8 class bodies, so
// they are constructed from atoms directly.
var surrogateBlocks = map[string]uniset.Atom{
	"IsHighSurrogates":           uniset.Range(0xD800, 0xDB7F),
	"IsHighPrivateUseSurrogates": uniset.Range(0xDB80, 0xDBFF),
	"IsLowSurrogates":            uniset.Range(0xDC00, 0xDFFF),
}

// astralBlockRanges lists the blocks of the supplementary planes.
// They are only registered when the build covers the full code point
// range.
var astralBlockRanges = map[string]string{
	"IsOldItalic":                            "\U00010300-\U0001032F",
	"IsGothic":                               "\U00010330-\U0001034F",
	"IsDeseret":                              "\U00010400-\U0001044F",
	"IsByzantineMusicalSymbols":              "\U0001D000-\U0001D0FF",
	"IsMusicalSymbols":                       "\U0001D100-\U0001D1FF",
	"IsMathematicalAlphanumericSymbols":      "\U0001D400-\U0001D7FF",
	"IsCJKUnifiedIdeographsExtensionB":       "\U00020000-\U0002A6D6",
	"IsCJKCompatibilityIdeographsSupplement": "\U0002F800-\U0002FA1F",
	"IsTags":                                 "\U000E0000-\U000E007F",
}

// buildBlocks constructs the block registry. The supplementary plane
// entries, and the private use area beyond the BMP, only exist when
// the build covers the full code point range.
func buildBlocks(ceiling rune) *Table {
	sets := make(map[string]*uniset.IntervalSet,
		len(blockRanges)+len(surrogateBlocks)+len(astralBlockRanges))
	for name, body := range blockRanges {
		sets[name] = uniset.MustFromString(body)
	}
	for name, atom := range surrogateBlocks {
		s := uniset.New()
		if err := s.Add(atom); err != nil {
			panic(err)
		}
		sets[name] = s
	}
	if ceiling >= uniset.MaxCodePoint {
		if err := sets["IsPrivateUse"].UpdateString("\U000F0000-\U0010FFFD"); err != nil {
			panic(err)
		}
		for name, body := range astralBlockRanges {
			sets[name] = uniset.MustFromString(body)
		}
	}
	return &Table{sets: sets}
}

// BuildBlocks constructs a block registry for a capped code point
// range. Most clients should use Blocks instead.
func BuildBlocks(opts ...Option) *Table {
	cfg := &config{ceiling: uniset.MaxCodePoint}
	for _, opt := range opts {
		opt(cfg)
	}
	return buildBlocks(cfg.ceiling)
}
