// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scheme

// Built-in glyph tables. Every glyph sits in the 3-byte UTF-8 range
// (U+0800-U+FFFF). Roman borrows the full-width zero because Unicode has no
// Roman-numeral zero glyph, so fullwidth and roman overlap at that one
// codepoint; the other tables are pairwise disjoint.
var builtinTables = []struct {
	name   string
	glyphs [10]rune
}{
	{"fullwidth", [10]rune{'０', '１', '２', '３', '４', '５', '６', '７', '８', '９'}},
	{"circle", [10]rune{'⓪', '①', '②', '③', '④', '⑤', '⑥', '⑦', '⑧', '⑨'}},
	{"roman", [10]rune{'０', 'Ⅰ', 'Ⅱ', 'Ⅲ', 'Ⅳ', 'Ⅴ', 'Ⅵ', 'Ⅶ', 'Ⅷ', 'Ⅸ'}},
	{"chinese", [10]rune{'〇', '一', '二', '三', '四', '五', '六', '七', '八', '九'}},
	{"thai", [10]rune{'๐', '๑', '๒', '๓', '๔', '๕', '๖', '๗', '๘', '๙'}},
}

// Builtins returns a Registry populated with the five built-in schemes, in
// canonical order: fullwidth, circle, roman, chinese, thai. The tables are
// process-lifetime constants, so construction cannot fail.
func Builtins() *Registry {
	r := NewRegistry()
	for _, t := range builtinTables {
		s, err := New(t.name, t.glyphs)
		if err != nil {
			panic("scheme: invalid built-in table: " + err.Error())
		}
		if err := r.Register(s); err != nil {
			panic("scheme: duplicate built-in name: " + err.Error())
		}
	}
	return r
}
